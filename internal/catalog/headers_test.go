package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		synonyms []string
		want     string
	}{
		{
			name:     "exact match",
			headers:  []string{"Codigo", "Articulo"},
			synonyms: Synonyms[FieldName],
			want:     "Articulo",
		},
		{
			name:     "case and whitespace are ignored",
			headers:  []string{"  sku ", "NOMBRE"},
			synonyms: Synonyms[FieldCode],
			want:     "  sku ",
		},
		{
			name:     "synonym order wins over column order",
			headers:  []string{"Producto", "Nombre"},
			synonyms: Synonyms[FieldName],
			want:     "Nombre",
		},
		{
			name:     "accented synonym",
			headers:  []string{"Código", "Descripción"},
			synonyms: Synonyms[FieldName],
			want:     "Descripción",
		},
		{
			name:     "no match falls back to first header",
			headers:  []string{"Foo", "Bar"},
			synonyms: Synonyms[FieldUnitPrice],
			want:     "Foo",
		},
		{
			name:     "no headers",
			headers:  nil,
			synonyms: Synonyms[FieldCode],
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.headers, tt.synonyms))
		})
	}
}

func TestResolveColumns(t *testing.T) {
	columns := ResolveColumns([]string{"SKU", "Producto", "Formato", "PU", "Existencia"})

	assert.Equal(t, 0, columns.Column(FieldCode))
	assert.Equal(t, 1, columns.Column(FieldName))
	assert.Equal(t, 2, columns.Column(FieldPresentation))
	assert.Equal(t, 3, columns.Column(FieldUnitPrice))
	assert.Equal(t, 4, columns.Column(FieldStockQty))
}

func TestResolveColumnsFallback(t *testing.T) {
	// Only the name is recognizable; the rest reads from column 0.
	columns := ResolveColumns([]string{"Id", "Nombre"})

	assert.Equal(t, 0, columns.Column(FieldCode))
	assert.Equal(t, 1, columns.Column(FieldName))
	assert.Equal(t, 0, columns.Column(FieldPresentation))
	assert.Equal(t, 0, columns.Column(FieldUnitPrice))
	assert.Equal(t, 0, columns.Column(FieldStockQty))
}

func TestResolveColumnsDuplicateHeader(t *testing.T) {
	columns := ResolveColumns([]string{"Precio", "Codigo", "Precio"})

	assert.Equal(t, 2, columns.Column(FieldUnitPrice))
	assert.Equal(t, 1, columns.Column(FieldCode))
}

func TestResolveColumnsEmpty(t *testing.T) {
	columns := ResolveColumns(nil)

	for _, f := range Fields {
		assert.Equal(t, -1, columns.Column(f), f.String())
	}
}

func TestFieldString(t *testing.T) {
	names := make([]string, len(Fields))
	for i, f := range Fields {
		names[i] = f.String()
	}
	assert.Equal(t, []string{"codigo", "articulo", "presentacion", "precio", "stock"}, names)
	assert.Equal(t, "unknown", Field(99).String())
}
