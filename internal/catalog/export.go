package catalog

import (
	"github.com/ginjaninja78/ventas-pos/internal/types"
)

// SheetName is the sheet name of the stock export workbook.
const SheetName = "Stock"

// ExportRows lays out products as a sheet: a header row with the field
// names, then one row per product. The headers resolve back through the
// synonym table, so the export can be imported again as is.
func ExportRows(products []types.Product) [][]any {
	rows := make([][]any, 0, len(products)+1)

	header := make([]any, len(Fields))
	for i, f := range Fields {
		header[i] = f.String()
	}
	rows = append(rows, header)

	for _, p := range products {
		rows = append(rows, []any{
			p.Code,
			p.Name,
			p.Presentation,
			p.UnitPrice.InexactFloat64(),
			p.StockQty.InexactFloat64(),
		})
	}
	return rows
}
