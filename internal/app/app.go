// =============================================================================
// Ventas POS - Application State
// =============================================================================
//
// This module is the composition root of the point of sale. It owns the
// catalog, the cart and the ticket info, and persists each of them to the
// key-value store after every operation that changes it.
//
// STATE LIFECYCLE:
//   1. Open reads the three persisted keys once; anything missing or
//      corrupt falls back to its empty/default value
//   2. Every mutating operation changes the in-memory state, then writes the
//      affected key (last write wins)
//   3. A failed write is logged and never rolls back the in-memory change
//
// CONCURRENCY:
//   Operations are serialized by a single mutex, so the HTTP surface can
//   call the App from concurrent handlers.
//
// =============================================================================

package app

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ginjaninja78/ventas-pos/internal/cart"
	"github.com/ginjaninja78/ventas-pos/internal/catalog"
	"github.com/ginjaninja78/ventas-pos/internal/config"
	"github.com/ginjaninja78/ventas-pos/internal/storage"
	"github.com/ginjaninja78/ventas-pos/internal/ticket"
	"github.com/ginjaninja78/ventas-pos/internal/types"
	"github.com/ginjaninja78/ventas-pos/internal/xlsxwriter"
	"github.com/ginjaninja78/ventas-pos/pkg/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Logger is the logging interface the App needs.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
}

// Options wires the collaborators of the App.
type Options struct {
	// Store persists the state. Required.
	Store storage.KV

	// Files resolves export paths. Required for exports.
	Files *utils.FileManager

	// Reader reads import files. Defaults to a comma-separated CSV reader.
	Reader *catalog.Reader

	// Logger defaults to a no-op logger.
	Logger Logger

	// Now defaults to time.Now.
	Now func() time.Time

	// DefaultCustomer seeds the ticket info when none was persisted.
	DefaultCustomer string
}

var defaultCSV = config.CSVSettings{Delimiter: ","}

// App is the application state.
type App struct {
	mu sync.Mutex

	catalog *catalog.Store
	cart    *cart.Cart
	ticket  types.TicketInfo

	store  storage.KV
	files  *utils.FileManager
	reader *catalog.Reader
	log    Logger
	now    func() time.Time
}

// BillingView is what the billing screen shows.
type BillingView struct {
	Lines  []types.CartLine `json:"items"`
	Total  decimal.Decimal  `json:"total"`
	Ticket types.TicketInfo `json:"ticket"`
}

// =============================================================================
// CONSTRUCTOR
// =============================================================================

// Open loads the persisted state and returns the App.
func Open(opts Options) *App {
	a := &App{
		store:  opts.Store,
		files:  opts.Files,
		reader: opts.Reader,
		log:    opts.Logger,
		now:    opts.Now,
	}
	if a.reader == nil {
		a.reader = catalog.NewReader(defaultCSV)
	}
	if a.log == nil {
		a.log = nopLogger{}
	}
	if a.now == nil {
		a.now = time.Now
	}

	products, ok := storage.LoadJSON[[]types.Product](a.store, storage.KeyProducts, nil)
	if !ok {
		a.log.Debug("no usable persisted catalog, starting empty")
	}
	a.catalog = catalog.NewStore(products)

	lines, _ := storage.LoadJSON[[]types.CartLine](a.store, storage.KeyCart, nil)
	a.cart = cart.New(lines)

	defaultTicket := types.DefaultTicketInfo()
	if opts.DefaultCustomer != "" {
		defaultTicket.Customer = opts.DefaultCustomer
	}
	a.ticket, _ = storage.LoadJSON(a.store, storage.KeyTicketInfo, defaultTicket)

	a.log.Debug("state loaded",
		zap.Int("products", a.catalog.Len()),
		zap.Int("cart_lines", a.cart.Len()),
		zap.String("ticket", a.ticket.Number),
	)

	return a
}

// =============================================================================
// STOCK VIEW
// =============================================================================

// Products returns the catalog filtered by query (all products when blank).
func (a *App) Products(query string) []types.Product {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.catalog.Search(query)
}

// ImportRows replaces the catalog with the products of rows.
//
// RETURNS:
//   - The import result, and false when the sheet had no header row (the
//     catalog is then left unchanged).
func (a *App) ImportRows(rows []types.Row) (*catalog.Result, bool) {
	result, ok := catalog.Import(rows)
	if !ok {
		a.log.Info("import skipped: sheet has no header row")
		return nil, false
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.catalog.Replace(result.Products)
	a.persist(storage.KeyProducts, a.catalog.All())

	a.log.Info("catalog imported",
		zap.Int("rows", result.RowsRead),
		zap.Int("products", len(result.Products)),
		zap.Int("dropped", result.RowsDropped),
	)
	return result, true
}

// ImportFile reads the spreadsheet at path and imports it.
func (a *App) ImportFile(path string) (*catalog.Result, bool, error) {
	rows, err := a.reader.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	result, ok := a.ImportRows(rows)
	return result, ok, nil
}

// ImportReader reads an uploaded spreadsheet and imports it. name selects
// the format by extension.
func (a *App) ImportReader(name string, src io.Reader) (*catalog.Result, bool, error) {
	rows, err := a.reader.Read(name, src)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", name, err)
	}
	result, ok := a.ImportRows(rows)
	return result, ok, nil
}

// ExportStock writes the catalog to the export directory.
//
// RETURNS:
//   - The path of the written workbook.
func (a *App) ExportStock() (string, error) {
	a.mu.Lock()
	rows := catalog.ExportRows(a.catalog.All())
	path := a.files.StockExportPath(a.now())
	a.mu.Unlock()

	if err := xlsxwriter.WriteFile(path, catalog.SheetName, rows); err != nil {
		return "", fmt.Errorf("failed to export stock: %w", err)
	}
	a.log.Info("stock exported", zap.String("file", path), zap.Int("products", len(rows)-1))
	return path, nil
}

// StockExportName returns the file name of today's stock export.
func (a *App) StockExportName() string {
	return utils.StockExportFileName(a.now())
}

// WriteStock streams the stock workbook to w.
func (a *App) WriteStock(w io.Writer) error {
	a.mu.Lock()
	rows := catalog.ExportRows(a.catalog.All())
	a.mu.Unlock()

	if err := xlsxwriter.Write(w, catalog.SheetName, rows); err != nil {
		return fmt.Errorf("failed to export stock: %w", err)
	}
	return nil
}

// =============================================================================
// BILLING VIEW
// =============================================================================

// Billing returns the cart and ticket as shown on the billing screen.
// Showing the billing screen generates the ticket number if there is none.
func (a *App) Billing() BillingView {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.ensureTicketNumber()

	return BillingView{
		Lines:  a.cart.Lines(),
		Total:  a.cart.Total(),
		Ticket: a.ticket,
	}
}

// AddToCart adds one unit of the catalog product with the given key.
//
// RETURNS:
//   - false if no product has that key.
func (a *App) AddToCart(key string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, ok := a.catalog.Find(key)
	if !ok {
		return false
	}

	a.ensureTicketNumber()
	a.cart.Add(p)
	a.persist(storage.KeyCart, a.cart.Lines())
	return true
}

// ChangeQuantity adds delta to the quantity of a cart line. Unknown keys
// are ignored.
func (a *App) ChangeQuantity(key string, delta int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.cart.ChangeQuantity(key, delta)
	a.persist(storage.KeyCart, a.cart.Lines())
}

// RemoveFromCart drops a cart line. Unknown keys are ignored.
func (a *App) RemoveFromCart(key string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.cart.Remove(key)
	a.persist(storage.KeyCart, a.cart.Lines())
}

// Ticket returns the current ticket info without generating a number.
func (a *App) Ticket() types.TicketInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ticket
}

// SetTicket replaces the ticket info (number, customer, notes).
func (a *App) SetTicket(info types.TicketInfo) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.ticket = info
	a.persist(storage.KeyTicketInfo, a.ticket)
}

// ConfirmSale exports the current cart as a sale receipt, then clears the
// cart and resets the ticket number.
//
// RETURNS:
//   - The sale and the path of its receipt. For an empty cart the sale is
//     nil and nothing happens.
//   - An error if the receipt cannot be written. Cart and ticket are then
//     left as they were.
func (a *App) ConfirmSale() (*types.Sale, string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	info := a.ticket
	sale, ok := ticket.Confirm(a.cart, &info, a.now())
	if !ok {
		return nil, "", nil
	}

	path := a.files.SaleExportPath(sale.TicketNumber)
	if utils.FileExists(path) {
		a.log.Warn("overwriting existing receipt",
			zap.String("ticket", sale.TicketNumber),
			zap.String("file", path),
		)
	}
	if err := xlsxwriter.WriteFile(path, ticket.SheetName, ticket.SheetRows(sale)); err != nil {
		return nil, "", fmt.Errorf("failed to export sale %s: %w", sale.TicketNumber, err)
	}

	a.cart.Clear()
	info.Number = ""
	a.ticket = info
	a.persist(storage.KeyCart, a.cart.Lines())
	a.persist(storage.KeyTicketInfo, a.ticket)

	a.log.Info("sale confirmed",
		zap.String("sale_id", sale.ID),
		zap.String("ticket", sale.TicketNumber),
		zap.Int("lines", len(sale.Lines)),
		zap.String("total", sale.Total.String()),
		zap.String("file", path),
	)
	return sale, path, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// ensureTicketNumber generates and persists a ticket number if missing.
// Callers hold the mutex.
func (a *App) ensureTicketNumber() {
	if ticket.EnsureNumber(&a.ticket, a.now()) {
		a.persist(storage.KeyTicketInfo, a.ticket)
	}
}

// persist writes v under key. Failures are logged, not returned: the
// in-memory state stays authoritative.
func (a *App) persist(key string, v any) {
	if err := storage.SaveJSON(a.store, key, v); err != nil {
		a.log.Warn("failed to persist state", zap.String("key", key), zap.Error(err))
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...zap.Field) {}
func (nopLogger) Info(string, ...zap.Field)  {}
func (nopLogger) Warn(string, ...zap.Field)  {}
