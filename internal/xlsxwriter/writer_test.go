package xlsxwriter

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venta.xlsx")

	err := WriteFile(path, "Comprobante", [][]any{
		{"T-1", "2024-03-07T12:05:03.000Z", "Ana", 3002.5},
		{},
		{"Código", "Cantidad"},
		{"A1", 2},
	})
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Comprobante"}, f.GetSheetList())

	rows, err := f.GetRows("Comprobante")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"T-1", "2024-03-07T12:05:03.000Z", "Ana", "3002.5"}, rows[0])
	assert.Empty(t, rows[1])
	assert.Equal(t, []string{"A1", "2"}, rows[3])

	// Numbers stay numeric.
	cellType, err := f.GetCellType("Comprobante", "D1")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, cellType)
	assert.NotEqual(t, excelize.CellTypeInlineString, cellType)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "Stock", [][]any{{"codigo"}, {"A1"}}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Stock")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"codigo"}, {"A1"}}, rows)
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "x.xlsx"), "Stock", [][]any{{"a"}})
	assert.Error(t, err)
}
