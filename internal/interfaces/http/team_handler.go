package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/application/usecase"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
)

// TeamHandler miembros del equipo, roles y catálogo de permisos.
type TeamHandler struct {
	uc *usecase.TeamUseCase
}

// NewTeamHandler construye el handler.
func NewTeamHandler(uc *usecase.TeamUseCase) *TeamHandler {
	return &TeamHandler{uc: uc}
}

// ListMembers godoc
// @Summary      Miembros del equipo
// @Tags         team
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.TeamMember
// @Router       /api/team [get]
func (h *TeamHandler) ListMembers(c *fiber.Ctx) error {
	out, err := h.uc.Members(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddMember godoc
// @Summary      Invitar miembro
// @Tags         team
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMemberRequest  true  "miembro"
// @Success      201   {object}  entity.TeamMember
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/team [post]
func (h *TeamHandler) AddMember(c *fiber.Ctx) error {
	var in dto.CreateMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.AddMember(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemoveMember godoc
// @Summary      Quitar miembro
// @Tags         team
// @Security     Bearer
// @Param        id   path  string  true  "Member ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/team/{id} [delete]
func (h *TeamHandler) RemoveMember(c *fiber.Ctx) error {
	if err := h.uc.RemoveMember(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListRoles godoc
// @Summary      Roles
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Role
// @Router       /api/roles [get]
func (h *TeamHandler) ListRoles(c *fiber.Ctx) error {
	out, err := h.uc.Roles(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateRole godoc
// @Summary      Crear rol
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRoleRequest  true  "rol"
// @Success      201   {object}  entity.Role
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/roles [post]
func (h *TeamHandler) CreateRole(c *fiber.Ctx) error {
	var in dto.CreateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateRole(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SetPermissions godoc
// @Summary      Reemplazar permisos de un rol
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "Role ID"
// @Param        body  body  dto.RolePermissionsRequest  true  "permisos"
// @Success      200   {object}  entity.Role
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/roles/{id}/permissions [put]
func (h *TeamHandler) SetPermissions(c *fiber.Ctx) error {
	var in dto.RolePermissionsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SetPermissions(c.UserContext(), GetActor(c), c.Params("id"), in.Permissions)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Permissions godoc
// @Summary      Catálogo de permisos
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Permission
// @Router       /api/permissions [get]
func (h *TeamHandler) Permissions(c *fiber.Ctx) error {
	return c.JSON(entity.Permissions)
}
