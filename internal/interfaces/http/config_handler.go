package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/subguard-api/internal/application/usecase"
)

// ConfigHandler preferencias del espacio de trabajo.
type ConfigHandler struct {
	uc *usecase.ConfigUseCase
}

// NewConfigHandler construye el handler.
func NewConfigHandler(uc *usecase.ConfigUseCase) *ConfigHandler {
	return &ConfigHandler{uc: uc}
}

// Get godoc
// @Summary      Configuración actual
// @Tags         config
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entity.DashboardConfig
// @Router       /api/config [get]
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	cfg, err := h.uc.Get(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(cfg)
}

// Update godoc
// @Summary      Actualizar configuración
// @Description  El cuerpo se combina sobre la configuración actual: los campos omitidos se conservan.
// @Tags         config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.DashboardConfig  true  "configuración"
// @Success      200   {object}  entity.DashboardConfig
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/config [put]
func (h *ConfigHandler) Update(c *fiber.Ctx) error {
	cfg, err := h.uc.Get(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	if err := c.BodyParser(&cfg); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetActor(c), cfg)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
