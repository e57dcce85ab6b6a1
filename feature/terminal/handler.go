package terminal

import (
	"stock-terminal/core/logger"
	"stock-terminal/core/stock"
	"stock-terminal/feature/terminal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the terminal.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the terminal routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/terminal")
	group.Post("/stock", h.HandleUpsert)
	group.Delete("/stock", h.HandleReset)
	group.Get("/stock/quantity", h.HandleQuantity)
	group.Put("/allowlist", h.HandleAllowList)
	group.Get("/settings", h.HandleGetSettings)
	group.Put("/settings", h.HandleUpdateSettings)
	group.Put("/power", h.HandlePower)
	group.Post("/close", h.HandleClose)
	group.Get("/view", h.HandleView)
	group.Post("/catalog/refresh", h.HandleCatalogRefresh)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// HandleUpsert applies stock deltas.
// @Summary Update Stock
// @Description Applies a batch of stock deltas. Each delta replaces the stored state of its identity. The batch is rejected as a whole if any identity is invalid.
// @Tags terminal
// @Accept json
// @Produce json
// @Param deltas body []models.StockDelta true "Stock deltas"
// @Success 200 {object} models.UpsertResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /terminal/stock [post]
func (h *Handler) HandleUpsert(c *fiber.Ctx) error {
	var body []models.StockDelta
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	deltas := make([]stock.Delta, len(body))
	for i, d := range body {
		deltas[i] = stock.Delta{
			Identity:  stock.Identity{Item: d.Item, Variant: d.Variant},
			Amount:    d.Amount,
			Craftable: d.Craftable,
		}
	}

	applied, err := h.service.ApplyDeltas(deltas)
	if err != nil {
		return badRequest(c, err.Error())
	}

	logger.WithRayID(h.service.logger, c).Debug("Stock updated", zap.Int("deltas", applied))
	return c.JSON(models.UpsertResponse{Applied: applied, Entries: h.service.Entries()})
}

// HandleReset clears all stock.
// @Summary Clear Stock
// @Description Removes every entry from the ledger.
// @Tags terminal
// @Success 204
// @Router /terminal/stock [delete]
func (h *Handler) HandleReset(c *fiber.Ctx) error {
	h.service.Reset()
	logger.WithRayID(h.service.logger, c).Info("Stock cleared")
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleQuantity returns the stored quantity of one identity.
// @Summary Get Quantity
// @Description Returns the stored quantity of an identity, 0 when absent.
// @Tags terminal
// @Produce json
// @Param item query string true "Item id"
// @Param variant query string false "Variant"
// @Success 200 {object} models.QuantityResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /terminal/stock/quantity [get]
func (h *Handler) HandleQuantity(c *fiber.Ctx) error {
	id := stock.Identity{Item: c.Query("item"), Variant: c.Query("variant")}
	if err := id.Validate(); err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(models.QuantityResponse{
		Item:     id.Item,
		Variant:  id.Variant,
		Quantity: h.service.Quantity(id),
	})
}

// HandleAllowList replaces the allow list.
// @Summary Set Allow List
// @Description Restricts the view to the listed identities. An empty list removes the restriction.
// @Tags terminal
// @Accept json
// @Param request body models.AllowListRequest true "Allow list"
// @Success 204
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /terminal/allowlist [put]
func (h *Handler) HandleAllowList(c *fiber.Ctx) error {
	var req models.AllowListRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ids := make([]stock.Identity, 0, len(req.Entries))
	for _, e := range req.Entries {
		id := stock.Identity{Item: e.Item, Variant: e.Variant}
		if err := id.Validate(); err != nil {
			return badRequest(c, err.Error())
		}
		ids = append(ids, id)
	}

	h.service.SetAllowList(ids, req.Fuzzy)
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetSettings returns the current settings.
// @Summary Get Settings
// @Tags terminal
// @Produce json
// @Success 200 {object} models.Settings
// @Router /terminal/settings [get]
func (h *Handler) HandleGetSettings(c *fiber.Ctx) error {
	return c.JSON(h.service.Settings())
}

// HandleUpdateSettings updates any subset of the settings.
// @Summary Update Settings
// @Description Updates search text, sort key and direction, view mode, search mode, tooltip search, scroll and row width. Invalid values reject the whole request.
// @Tags terminal
// @Accept json
// @Produce json
// @Param request body models.SettingsRequest true "Settings"
// @Success 200 {object} models.Settings
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /terminal/settings [put]
func (h *Handler) HandleUpdateSettings(c *fiber.Ctx) error {
	var req models.SettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.service.UpdateSettings(req); err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(h.service.Settings())
}

// HandlePower sets the network power state.
// @Summary Set Power
// @Tags terminal
// @Accept json
// @Param request body models.PowerRequest true "Power state"
// @Success 204
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /terminal/power [put]
func (h *Handler) HandlePower(c *fiber.Ctx) error {
	var req models.PowerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	h.service.SetPower(req.Powered)
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleClose ends the terminal session.
// @Summary Close Terminal
// @Description Clears the search text unless the search mode keeps it.
// @Tags terminal
// @Success 204
// @Router /terminal/close [post]
func (h *Handler) HandleClose(c *fiber.Ctx) error {
	h.service.Close()
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleView refreshes and returns the visible rows.
// @Summary Get View
// @Description Refreshes the view if anything changed and returns the given number of rows from the current scroll position.
// @Tags terminal
// @Produce json
// @Param rows query int false "Number of rows (all when omitted)"
// @Success 200 {object} models.ViewResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /terminal/view [get]
func (h *Handler) HandleView(c *fiber.Ctx) error {
	rows := c.QueryInt("rows", 0)
	if rows < 0 {
		return badRequest(c, "rows must not be negative")
	}
	return c.JSON(h.service.View(rows))
}

// HandleCatalogRefresh reloads item metadata.
// @Summary Refresh Catalog
// @Description Drops the cached catalog, reloads it from its sources and rebuilds the view.
// @Tags terminal
// @Produce json
// @Success 200 {object} models.CatalogResponse
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /terminal/catalog/refresh [post]
func (h *Handler) HandleCatalogRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	n, err := h.service.RefreshCatalog(c.Context())
	if err != nil {
		l.Error("Catalog refresh failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(models.CatalogResponse{Items: n})
}
