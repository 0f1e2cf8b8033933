package csvparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ginjaninja78/ventas-pos/internal/config"
	"github.com/ginjaninja78/ventas-pos/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	data := "\ufeffCodigo,Articulo,Precio\nA1, Widget,\"1,5\"\nA2,Gadget\n"

	rows, err := Read(strings.NewReader(data), config.CSVSettings{Delimiter: ","})
	require.NoError(t, err)

	assert.Equal(t, []types.Row{
		{"Codigo", "Articulo", "Precio"},
		{"A1", "Widget", "1,5"},
		{"A2", "Gadget"},
	}, rows)
}

func TestReadEmpty(t *testing.T) {
	rows, err := Read(strings.NewReader(""), config.CSVSettings{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "productos.csv")
	require.NoError(t, os.WriteFile(path, []byte("SKU\tNombre\nB1\tYerba\n"), 0644))

	rows, err := ReadFile(path, config.CSVSettings{Delimiter: "tab"})
	require.NoError(t, err)
	assert.Equal(t, []types.Row{{"SKU", "Nombre"}, {"B1", "Yerba"}}, rows)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.csv"), config.CSVSettings{})
	assert.Error(t, err)
}

func TestDelimiter(t *testing.T) {
	tests := map[string]rune{
		"":          ',',
		",":         ',',
		"comma":     ',',
		";":         ';',
		"semicolon": ';',
		"\\t":       '\t',
		"tab":       '\t',
		"|":         '|',
		"pipe":      '|',
		"#":         '#',
	}

	for in, want := range tests {
		assert.Equal(t, want, Delimiter(in), "delimiter %q", in)
	}
}
