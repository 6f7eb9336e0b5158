package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/subguard-api/internal/application/analytics"
)

// DashboardHandler indicadores, proyección y alertas de renovación.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del dashboard
// @Description  Indicadores, proyección a 12 meses, gasto por departamento, top proveedores,
// @Description  alertas de renovación y solicitudes pendientes en una sola respuesta.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetProjection godoc
// @Summary      Proyección de gasto a 12 meses
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  finance.MonthProjection
// @Router       /api/dashboard/projection [get]
func (h *DashboardHandler) GetProjection(c *fiber.Ctx) error {
	out, err := h.uc.Projection(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetAlerts godoc
// @Summary      Renovaciones dentro de los próximos 30 días
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Asset
// @Router       /api/dashboard/alerts [get]
func (h *DashboardHandler) GetAlerts(c *fiber.Ctx) error {
	out, err := h.uc.Alerts(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetStats godoc
// @Summary      Indicadores del registro
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  finance.Stats
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
