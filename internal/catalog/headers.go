package catalog

import (
	"strings"
)

// =============================================================================
// HEADER SYNONYMS
// =============================================================================

// Field identifies one of the semantic product columns.
type Field int

const (
	FieldCode Field = iota
	FieldName
	FieldPresentation
	FieldUnitPrice
	FieldStockQty
)

// Fields lists every semantic field in column-map order.
var Fields = []Field{FieldCode, FieldName, FieldPresentation, FieldUnitPrice, FieldStockQty}

// String returns the legacy field name, which is also the header used by the
// catalog export.
func (f Field) String() string {
	switch f {
	case FieldCode:
		return "codigo"
	case FieldName:
		return "articulo"
	case FieldPresentation:
		return "presentacion"
	case FieldUnitPrice:
		return "precio"
	case FieldStockQty:
		return "stock"
	default:
		return "unknown"
	}
}

// Synonyms maps each field to the header names that can supply it, in
// priority order. Matching is case-insensitive and the first match wins.
var Synonyms = map[Field][]string{
	FieldCode:         {"Codigo", "Código", "SKU", "Cod"},
	FieldName:         {"Articulo", "Artículo", "Nombre", "Producto", "Descripcion", "Descripción"},
	FieldPresentation: {"Presentacion", "Presentación", "Formato"},
	FieldUnitPrice:    {"Precio", "PrecioUnitario", "PU", "Precio Unitario"},
	FieldStockQty:     {"Stock", "Cantidad", "Existencia"},
}

// =============================================================================
// RESOLUTION
// =============================================================================

// Resolve returns the raw header that should supply the field described by
// synonyms. Each synonym is tried in order against the normalized headers.
//
// When nothing matches, the first header is returned so that a sheet with
// unrecognized headers still maps to some column. An empty header list
// resolves to "".
func Resolve(headers []string, synonyms []string) string {
	return resolveNormalized(headers, normalizeAll(headers), synonyms)
}

func resolveNormalized(headers, normalized, synonyms []string) string {
	for _, candidate := range synonyms {
		want := normalize(candidate)
		for i, h := range normalized {
			if h == want {
				return headers[i]
			}
		}
	}
	if len(headers) == 0 {
		return ""
	}
	return headers[0]
}

// ColumnMap is the resolved field -> column index mapping of one sheet.
// An index of -1 means the field has no column and always reads as "".
type ColumnMap map[Field]int

// Column returns the column index for f, or -1.
func (m ColumnMap) Column(f Field) int {
	if i, ok := m[f]; ok {
		return i
	}
	return -1
}

// ResolveColumns resolves every field once for the given header row.
//
// The column of a resolved header is the last column whose raw text equals
// it exactly, so duplicated headers read from the rightmost copy.
func ResolveColumns(headers []string) ColumnMap {
	normalized := normalizeAll(headers)

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[h] = i
	}

	columns := make(ColumnMap, len(Fields))
	for _, f := range Fields {
		if len(headers) == 0 {
			columns[f] = -1
			continue
		}
		raw := resolveNormalized(headers, normalized, Synonyms[f])
		columns[f] = index[raw]
	}
	return columns
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeAll(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = normalize(h)
	}
	return out
}
