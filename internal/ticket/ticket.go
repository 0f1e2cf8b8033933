// =============================================================================
// Ventas POS - Ticket Builder
// =============================================================================
//
// This module turns the cart and the ticket info into a Sale and lays the
// sale out as rows of the exported receipt workbook.
//
// RECEIPT LAYOUT (no header row):
//   | Row | Content                                                      |
//   |-----|--------------------------------------------------------------|
//   | 1   | ticket number, ISO-8601 timestamp, customer, total           |
//   | 2   | blank                                                        |
//   | 3   | Código, Artículo, Presentación, Cantidad, Precio, Subtotal   |
//   | 4+  | one row per cart line, subtotal = price * quantity           |
//
// TICKET NUMBERS:
//   T-YYYYMMDD-HHMMSS, local time, generated when the ticket info has no
//   number yet. A confirmed sale resets the number so the next sale gets a
//   fresh one.
//
// =============================================================================

package ticket

import (
	"fmt"
	"time"

	"github.com/ginjaninja78/ventas-pos/internal/cart"
	"github.com/ginjaninja78/ventas-pos/internal/types"
	"github.com/google/uuid"
)

// SheetName is the sheet name of the receipt workbook.
const SheetName = "Comprobante"

// LineLabels are the column labels of the line rows of the receipt.
var LineLabels = []string{"Código", "Artículo", "Presentación", "Cantidad", "Precio", "Subtotal"}

// =============================================================================
// TICKET NUMBERS
// =============================================================================

// NumberAt formats the ticket number for t.
//
// EXAMPLE:
//   2024-03-07 09:05:03 -> "T-20240307-090503"
func NumberAt(t time.Time) string {
	return fmt.Sprintf("T-%04d%02d%02d-%02d%02d%02d",
		t.Year(), int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second(),
	)
}

// EnsureNumber fills info.Number from now when it is empty.
//
// RETURNS:
//   - true if a number was generated.
func EnsureNumber(info *types.TicketInfo, now time.Time) bool {
	if info.Number != "" {
		return false
	}
	info.Number = NumberAt(now)
	return true
}

// =============================================================================
// CONFIRMATION
// =============================================================================

// Confirm builds the Sale for the current cart.
//
// PARAMETERS:
//   - c: The cart. It is not modified; clearing it is the caller's job once
//     the sale has been exported.
//   - info: The ticket info. A missing number is generated from now.
//   - now: The confirmation time.
//
// RETURNS:
//   - The sale, and true. For an empty cart: nil and false, and nothing
//     else happens.
func Confirm(c *cart.Cart, info *types.TicketInfo, now time.Time) (*types.Sale, bool) {
	if c.Empty() {
		return nil, false
	}

	EnsureNumber(info, now)

	return &types.Sale{
		ID:           uuid.NewString(),
		TicketNumber: info.Number,
		Timestamp:    now,
		Customer:     info.Customer,
		Notes:        info.Notes,
		Lines:        c.Lines(),
		Total:        c.Total(),
	}, true
}

// =============================================================================
// RECEIPT LAYOUT
// =============================================================================

// FormatTimestamp renders t as an ISO-8601 UTC timestamp with milliseconds.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}

// SheetRows lays the sale out as receipt rows (see the layout above).
// Amounts are written as numbers so the spreadsheet can sum them.
func SheetRows(sale *types.Sale) [][]any {
	rows := make([][]any, 0, len(sale.Lines)+3)

	rows = append(rows,
		[]any{sale.TicketNumber, FormatTimestamp(sale.Timestamp), sale.Customer, sale.Total.InexactFloat64()},
		[]any{},
	)

	labels := make([]any, len(LineLabels))
	for i, l := range LineLabels {
		labels[i] = l
	}
	rows = append(rows, labels)

	for _, l := range sale.Lines {
		rows = append(rows, []any{
			l.Code,
			l.Name,
			l.Presentation,
			l.Quantity,
			l.UnitPrice.InexactFloat64(),
			l.Subtotal().InexactFloat64(),
		})
	}

	return rows
}
