package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/subguard-api/internal/application/auth"
	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/application/usecase"
)

// ProfileHandler perfil de la sesión.
type ProfileHandler struct {
	uc     *usecase.ProfileUseCase
	authUC *auth.AuthUseCase
}

// NewProfileHandler construye el handler. authUC reemite el token con la identidad nueva.
func NewProfileHandler(uc *usecase.ProfileUseCase, authUC *auth.AuthUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc, authUC: authUC}
}

// Update godoc
// @Summary      Actualizar nombre comercial y/o email
// @Description  Devuelve un token nuevo: el nombre comercial es el actor del historial.
// @Tags         profile
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProfileUpdateRequest  true  "perfil"
// @Success      200   {object}  dto.LoginResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/profile [put]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var in dto.ProfileUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	u, err := h.uc.Update(c.UserContext(), CurrentUser(c), in)
	if err != nil {
		return writeError(c, err)
	}
	token, err := h.authUC.Token(*u)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.LoginResponse{Token: token, User: *u})
}
