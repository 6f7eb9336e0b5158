package dto

import "github.com/jhoicas/subguard-api/internal/domain/entity"

// VendorProfileRequest alta o edición de la ficha de un proveedor (clave: Name).
type VendorProfileRequest struct {
	Name         string            `json:"name" validate:"required"`
	Tier         entity.VendorTier `json:"tier"`
	ContactName  string            `json:"contact_name"`
	ContactEmail string            `json:"contact_email"`
	Notes        string            `json:"notes"`
}
