package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"stock-terminal/feature/terminal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
		RootCmd.SetArgs(nil)
	})
	err := RootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const testCatalog = `{
	"mods": [{"id": "thermal", "name": "Thermal Series"}],
	"items": [
		{"item": "iron_ingot", "name": "Iron Ingot"},
		{"item": "gold_ingot", "name": "Gold Ingot"},
		{"item": "copper_ingot", "name": "Copper Ingot", "mod": "thermal"}
	]
}`

const testStock = `[
	{"item": "iron_ingot", "amount": 5},
	{"item": "gold_ingot", "amount": 2},
	{"item": "copper_ingot", "amount": 9}
]`

func TestQueryCommand(t *testing.T) {
	out, err := runRoot(t, "query", "iron -nugget | @thermal")
	require.NoError(t, err)
	assert.Contains(t, out, "Group 1:")
	assert.Contains(t, out, "Group 2:")
	assert.Contains(t, out, "(negated)")
	assert.Contains(t, out, `"thermal"`)

	out, err = runRoot(t, "query", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Matches everything")
}

func TestViewCommand(t *testing.T) {
	catalogPath := writeFile(t, "catalog.json", testCatalog)
	stockPath := writeFile(t, "stock.json", testStock)

	out, err := runRoot(t, "view", stockPath, "--catalog", catalogPath, "--json", "--search", "ingot")
	require.NoError(t, err)

	var resp models.ViewResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Entries, 3)
	assert.Equal(t, "Copper Ingot", resp.Entries[0].Name)
	assert.Equal(t, "Gold Ingot", resp.Entries[1].Name)
	assert.Equal(t, "Iron Ingot", resp.Entries[2].Name)

	out, err = runRoot(t, "view", stockPath, "--catalog", catalogPath, "--json", "--search", "@thermal")
	require.NoError(t, err)
	resp = models.ViewResponse{}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, int64(9), resp.Entries[0].Quantity)
}

func TestViewCommand_BadStockFile(t *testing.T) {
	catalogPath := writeFile(t, "catalog.json", testCatalog)
	stockPath := writeFile(t, "stock.json", `{not json`)

	_, err := runRoot(t, "view", stockPath, "--catalog", catalogPath)
	assert.ErrorContains(t, err, "failed to parse stock file")
}

func TestCatalogDiffCommand(t *testing.T) {
	left := writeFile(t, "left.json", testCatalog)
	right := writeFile(t, "right.json", `{"items": [{"item": "iron_ingot", "name": "Iron Bar"}]}`)

	out, err := runRoot(t, "catalog", "diff", left, left)
	require.NoError(t, err)
	assert.Contains(t, out, "Catalogs match (3 items)")

	out, err = runRoot(t, "catalog", "diff", left, right)
	assert.ErrorContains(t, err, "catalog differences")
	assert.Contains(t, out, `name: left="Iron Ingot" right="Iron Bar"`)
	assert.Contains(t, out, "gold_ingot")
}
