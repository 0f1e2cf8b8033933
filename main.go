// =============================================================================
// Ventas POS - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Ventas POS CLI application. It
// delegates command execution to the cmd package.
//
// USAGE:
//   pos import <file>   - Replace the catalog from an xlsx/csv spreadsheet
//   pos stock ...       - List, search and export the stock
//   pos cart ...        - Build the cart of the current sale
//   pos ticket ...      - Show or edit the ticket info
//   pos sale confirm    - Export the sale receipt and clear the cart
//   pos serve           - Serve the stock and billing views over HTTP
//   pos version         - Display the application version
//
// ARCHITECTURE:
//   - cmd/        : CLI command definitions (Cobra)
//   - internal/   : catalog, cart, ticket, storage and the HTTP surface
//   - pkg/        : export file naming shared by the CLI and the server
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/ventas-pos/cmd"
)

func main() {
	cmd.Execute()
}
