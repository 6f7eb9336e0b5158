package dto

// CreateMemberRequest alta de un miembro del equipo.
type CreateMemberRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	RoleID     string `json:"role_id"`
	Department string `json:"department"`
}

// CreateRoleRequest alta de un rol.
type CreateRoleRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

// RolePermissionsRequest reemplazo de permisos de un rol.
type RolePermissionsRequest struct {
	Permissions []string `json:"permissions"`
}
