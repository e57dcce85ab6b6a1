package terminal

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"stock-terminal/feature/terminal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, *Service) {
	t.Helper()
	app := fiber.New()
	svc := newTestService(t, Options{})
	NewHandler(svc).RegisterRoutes(app)
	return app, svc
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var out bytes.Buffer
	_, _ = out.ReadFrom(resp.Body)
	return resp.StatusCode, out.Bytes()
}

func TestHandleUpsert(t *testing.T) {
	app, svc := setupTestApp(t)

	status, body := doJSON(t, app, "POST", "/terminal/stock", []models.StockDelta{
		{Item: "create:cogwheel", Amount: 8},
		{Item: iron.Item, Amount: 1},
	})
	assert.Equal(t, 200, status)

	var resp models.UpsertResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, 2, resp.Applied)
	assert.Equal(t, 4, resp.Entries)
	assert.Equal(t, int64(1), svc.Quantity(iron))

	status, body = doJSON(t, app, "POST", "/terminal/stock", []models.StockDelta{{Item: "", Amount: 1}})
	assert.Equal(t, 400, status)
	assert.Contains(t, string(body), "error")

	status, _ = doJSON(t, app, "POST", "/terminal/stock", map[string]string{"not": "a list"})
	assert.Equal(t, 400, status)
}

func TestHandleResetAndQuantity(t *testing.T) {
	app, _ := setupTestApp(t)

	status, body := doJSON(t, app, "GET", "/terminal/stock/quantity?item=minecraft:iron_ingot", nil)
	assert.Equal(t, 200, status)
	var q models.QuantityResponse
	require.NoError(t, json.Unmarshal(body, &q))
	assert.Equal(t, int64(64), q.Quantity)

	status, _ = doJSON(t, app, "GET", "/terminal/stock/quantity", nil)
	assert.Equal(t, 400, status)

	status, _ = doJSON(t, app, "DELETE", "/terminal/stock", nil)
	assert.Equal(t, 204, status)

	_, body = doJSON(t, app, "GET", "/terminal/stock/quantity?item=minecraft:iron_ingot", nil)
	require.NoError(t, json.Unmarshal(body, &q))
	assert.Zero(t, q.Quantity)
}

func TestHandleView(t *testing.T) {
	app, _ := setupTestApp(t)

	status, body := doJSON(t, app, "PUT", "/terminal/settings", models.SettingsRequest{
		Search:  ptr("ingot"),
		SortBy:  ptr("amount"),
		SortDir: ptr("asc"),
	})
	assert.Equal(t, 200, status)
	var settings models.Settings
	require.NoError(t, json.Unmarshal(body, &settings))
	assert.Equal(t, "amount", settings.SortBy)
	assert.Equal(t, "ascending", settings.SortDir)

	status, body = doJSON(t, app, "GET", "/terminal/view?rows=1", nil)
	assert.Equal(t, 200, status)

	var view models.ViewResponse
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, 3, view.Size)
	assert.Equal(t, 9, view.RowWidth)
	require.Len(t, view.Entries, 3)
	assert.Equal(t, "Iron Ingot", view.Entries[0].Name)
	assert.Equal(t, int64(64), view.Entries[0].Quantity)

	status, _ = doJSON(t, app, "GET", "/terminal/view?rows=-1", nil)
	assert.Equal(t, 400, status)
}

func TestHandleUpdateSettings_Invalid(t *testing.T) {
	app, _ := setupTestApp(t)

	status, body := doJSON(t, app, "PUT", "/terminal/settings", models.SettingsRequest{ViewMode: ptr("hidden")})
	assert.Equal(t, 400, status)
	assert.Contains(t, string(body), "unknown view mode")

	status, body = doJSON(t, app, "GET", "/terminal/settings", nil)
	assert.Equal(t, 200, status)
	var settings models.Settings
	require.NoError(t, json.Unmarshal(body, &settings))
	assert.Equal(t, "all", settings.ViewMode)
}

func TestHandleAllowListAndPower(t *testing.T) {
	app, _ := setupTestApp(t)

	status, _ := doJSON(t, app, "PUT", "/terminal/allowlist", models.AllowListRequest{
		Entries: []models.Identity{{Item: copper.Item}},
	})
	assert.Equal(t, 204, status)

	status, _ = doJSON(t, app, "PUT", "/terminal/power", models.PowerRequest{Powered: true})
	assert.Equal(t, 204, status)

	_, body := doJSON(t, app, "GET", "/terminal/view", nil)
	var view models.ViewResponse
	require.NoError(t, json.Unmarshal(body, &view))
	assert.True(t, view.Powered)
	require.Len(t, view.Entries, 1)
	assert.Equal(t, copper.Item, view.Entries[0].Item)

	status, _ = doJSON(t, app, "PUT", "/terminal/allowlist", models.AllowListRequest{
		Entries: []models.Identity{{Variant: "orphan"}},
	})
	assert.Equal(t, 400, status)
}

func TestHandleClose(t *testing.T) {
	app, svc := setupTestApp(t)

	doJSON(t, app, "PUT", "/terminal/settings", models.SettingsRequest{Search: ptr("gold")})
	status, _ := doJSON(t, app, "POST", "/terminal/close", nil)
	assert.Equal(t, 204, status)
	assert.Empty(t, svc.Settings().Search)
}

func TestHandleCatalogRefresh(t *testing.T) {
	app, _ := setupTestApp(t)

	// Static catalogs have no cache to reload
	status, body := doJSON(t, app, "POST", "/terminal/catalog/refresh", nil)
	assert.Equal(t, 200, status)

	var resp models.CatalogResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, 3, resp.Items)
}
