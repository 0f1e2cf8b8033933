package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSaleWorkflow(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("POS_STATE_DIR", filepath.Join(dir, "state"))
	t.Setenv("POS_EXPORT_DIR", filepath.Join(dir, "exports"))
	t.Setenv("POS_LOG_LEVEL", "error")

	csvPath := filepath.Join(dir, "productos.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(
		"Codigo,Articulo,Presentacion,Precio,Stock\nA1,Widget,Box,1500,3\nA2,Gadget,Each,\"2,50\",10\n",
	), 0644))

	common := []string{"--config", filepath.Join(dir, "config.yaml"), "--env-file", filepath.Join(dir, ".env")}

	out, err := run(t, append([]string{"import", csvPath}, common...)...)
	require.NoError(t, err)
	assert.Regexp(t, `Products:\s+2\n`, out)

	out, err = run(t, append([]string{"stock", "list", "--query", "gadg"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Gadget")
	assert.NotContains(t, out, "Widget")

	_, err = run(t, append([]string{"cart", "add", "ZZ"}, common...)...)
	assert.Error(t, err)

	out, err = run(t, append([]string{"cart", "add", "A1"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 1500.00")

	_, err = run(t, append([]string{"ticket", "set", "--customer", "Ana"}, common...)...)
	require.NoError(t, err)

	out, err = run(t, append([]string{"cart", "show"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "Widget")

	out, err = run(t, append([]string{"sale", "confirm"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Venta confirmada.")

	matches, err := filepath.Glob(filepath.Join(dir, "exports", "venta_T-*.xlsx"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	out, err = run(t, append([]string{"sale", "confirm"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "No hay productos en el carrito.")

	out, err = run(t, append([]string{"stock", "export"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "stock_actual_")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Ventas POS")
	assert.Contains(t, out, Version)
}
