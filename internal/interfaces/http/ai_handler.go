package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/application/usecase"
)

// AIHandler asistente financiero y generación de fichas de activos.
type AIHandler struct {
	uc      *usecase.AIUseCase
	metrics *Metrics
}

// NewAIHandler construye el handler. metrics puede ser nil.
func NewAIHandler(uc *usecase.AIUseCase, metrics *Metrics) *AIHandler {
	return &AIHandler{uc: uc, metrics: metrics}
}

// Chat godoc
// @Summary      Preguntar al asistente financiero sobre el registro
// @Description  El contexto enviado al modelo es el registro completo. Timeout interno configurable
// @Description  (AI_TIMEOUT_SECONDS); las fallas del proveedor devuelven 502/503/504.
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "message"
// @Success      200   {object}  dto.ChatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Failure      504   {object}  dto.ErrorResponse
// @Router       /api/ai/chat [post]
func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	reply, err := h.uc.Chat(c.UserContext(), in.Message)
	if err != nil {
		h.metrics.ObserveAI("chat", "error")
		return writeError(c, err)
	}
	h.metrics.ObserveAI("chat", "ok")
	return c.JSON(dto.ChatResponse{Reply: reply})
}

// AssetProfile godoc
// @Summary      Generar descripción y factores de riesgo de un activo
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssetProfileRequest  true  "name y vendor"
// @Success      200   {object}  dto.AssetProfileDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/ai/asset-profile [post]
func (h *AIHandler) AssetProfile(c *fiber.Ctx) error {
	var in dto.AssetProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.GenerateAssetProfile(c.UserContext(), in)
	if err != nil {
		h.metrics.ObserveAI("asset_profile", "error")
		return writeError(c, err)
	}
	h.metrics.ObserveAI("asset_profile", "ok")
	return c.JSON(out)
}
