package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/subguard-api/internal/application/audit"
	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
)

// AuditHandler historial de eventos.
type AuditHandler struct {
	w *audit.Writer
}

// NewAuditHandler construye el handler.
func NewAuditHandler(w *audit.Writer) *AuditHandler {
	return &AuditHandler{w: w}
}

// AuditPage página del historial.
type AuditPage struct {
	Items []entity.AuditLog `json:"items"`
	Page  dto.PageResponse  `json:"page"`
}

// List godoc
// @Summary      Historial de eventos (más reciente primero)
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx. 500, por defecto 50"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  AuditPage
// @Router       /api/logs [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	var p dto.PageRequest
	if err := c.QueryParser(&p); err != nil {
		return invalidBody(c)
	}
	p.DefaultPage()
	items, total, err := h.w.List(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(AuditPage{
		Items: items,
		Page:  dto.PageResponse{Limit: p.Limit, Offset: p.Offset, Total: total},
	})
}
