package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/application/usecase"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
)

// RequestHandler cola de solicitudes de compra, renovación y acceso.
type RequestHandler struct {
	uc *usecase.RequestUseCase
}

// NewRequestHandler construye el handler.
func NewRequestHandler(uc *usecase.RequestUseCase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

// List godoc
// @Summary      Listar solicitudes
// @Tags         requests
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Pending, Approved, Rejected"
// @Success      200  {array}  entity.Request
// @Router       /api/requests [get]
func (h *RequestHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Decide godoc
// @Summary      Aprobar o rechazar una solicitud
// @Description  Aprobar un alta (New Asset) registra el activo en el registro.
// @Tags         requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "Request ID"
// @Param        body  body  dto.DecideRequest  true  "Approved | Rejected"
// @Success      200   {object}  dto.DecideResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/requests/{id}/decision [post]
func (h *RequestHandler) Decide(c *fiber.Ctx) error {
	var in dto.DecideRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Outcome != entity.RequestApproved && in.Outcome != entity.RequestRejected {
		return validationError(c, "outcome debe ser Approved o Rejected")
	}
	req, asset, err := h.uc.Decide(c.UserContext(), GetActor(c), c.Params("id"), in.Outcome)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.DecideResponse{Request: *req, Asset: asset})
}
