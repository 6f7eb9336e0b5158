package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/application/usecase"
)

// VendorHandler hub de proveedores.
type VendorHandler struct {
	uc *usecase.VendorUseCase
}

// NewVendorHandler construye el handler.
func NewVendorHandler(uc *usecase.VendorUseCase) *VendorHandler {
	return &VendorHandler{uc: uc}
}

// Hub godoc
// @Summary      Gasto por proveedor con su ficha
// @Tags         vendors
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  finance.VendorSummary
// @Router       /api/vendors [get]
func (h *VendorHandler) Hub(c *fiber.Ctx) error {
	out, err := h.uc.Hub(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SaveProfile godoc
// @Summary      Crear o actualizar la ficha de un proveedor
// @Tags         vendors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VendorProfileRequest  true  "ficha"
// @Success      200   {object}  entity.VendorProfile
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/vendors/profile [put]
func (h *VendorHandler) SaveProfile(c *fiber.Ctx) error {
	var in dto.VendorProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SaveProfile(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
