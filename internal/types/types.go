// =============================================================================
// Ventas POS - Shared Types
// =============================================================================
//
// This package contains the data model shared by the catalog, cart, ticket,
// storage and presentation packages. Keeping it in one leaf package avoids
// import cycles between them.
//
// JSON TAGS:
//   The JSON field names are the legacy ones used by the persisted state and
//   by the catalog export header row (codigo, articulo, presentacion, ...).
//   Changing them breaks previously saved state files.
//
// =============================================================================

package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SPREADSHEET ROWS
// =============================================================================

// Row is one spreadsheet row: an ordered sequence of cell values as text.
// Missing trailing cells are simply absent.
type Row []string

// Cell returns the cell at index i, or "" when the row is shorter or i < 0.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// =============================================================================
// CATALOG
// =============================================================================

// Product is a single catalog entry produced by an import.
type Product struct {
	// Code is the product code (SKU). Expected unique within one import.
	Code string `json:"codigo"`

	// Name is the article name or description.
	Name string `json:"articulo"`

	// Presentation is the packaging/format (box, unit, 500g, ...).
	Presentation string `json:"presentacion"`

	// UnitPrice is the sale price. Not validated; negative values survive.
	UnitPrice decimal.Decimal `json:"precio"`

	// StockQty is the quantity on hand. Not validated either.
	StockQty decimal.Decimal `json:"stock"`
}

// Key returns the identity key of the product: its code, or its name when
// the code is empty.
func (p Product) Key() string {
	if p.Code != "" {
		return p.Code
	}
	return p.Name
}

// =============================================================================
// CART
// =============================================================================

// CartLine is one aggregated product entry of an in-progress sale.
// It is a snapshot copy of the product, not a reference into the catalog.
type CartLine struct {
	Code         string          `json:"codigo"`
	Name         string          `json:"articulo"`
	Presentation string          `json:"presentacion"`
	UnitPrice    decimal.Decimal `json:"precio"`

	// Quantity is always >= 1 while the line exists.
	Quantity int `json:"cantidad"`
}

// Key returns the identity key of the line, following Product.Key.
func (l CartLine) Key() string {
	if l.Code != "" {
		return l.Code
	}
	return l.Name
}

// Subtotal returns UnitPrice * Quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// =============================================================================
// TICKET
// =============================================================================

// DefaultCustomer is the customer name used when none was entered.
const DefaultCustomer = "Consumidor Final"

// TicketInfo holds the metadata of the sale being built.
type TicketInfo struct {
	// Number is the ticket number. Empty means "not generated yet".
	Number string `json:"numero"`

	// Customer is the customer name printed on the ticket.
	Customer string `json:"cliente"`

	// Notes are free-form observations.
	Notes string `json:"observaciones"`
}

// DefaultTicketInfo returns the ticket info used when nothing was persisted.
func DefaultTicketInfo() TicketInfo {
	return TicketInfo{Customer: DefaultCustomer}
}

// Sale is the record of one confirmed sale. It is derived at confirmation
// time and only lives long enough to be exported and reported.
type Sale struct {
	// ID identifies the sale in logs.
	ID string `json:"id"`

	TicketNumber string          `json:"numero"`
	Timestamp    time.Time       `json:"fecha"`
	Customer     string          `json:"cliente"`
	Notes        string          `json:"observaciones"`
	Lines        []CartLine      `json:"items"`
	Total        decimal.Decimal `json:"total"`
}
