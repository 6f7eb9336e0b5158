package repository

import (
	"context"

	"github.com/jhoicas/subguard-api/internal/domain/entity"
)

// Collection puerto de una colección persistida como un único documento.
// Load devuelve los datos semilla si la colección nunca se guardó.
type Collection[T any] interface {
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, items []T) error
}

// AssetRepository registro de activos.
type AssetRepository interface {
	Collection[entity.Asset]
}

// RequestRepository cola de solicitudes.
type RequestRepository interface {
	Collection[entity.Request]
}

// AuditLogRepository historial de eventos, más reciente primero.
type AuditLogRepository interface {
	Collection[entity.AuditLog]
}

// TeamRepository miembros del equipo.
type TeamRepository interface {
	Collection[entity.TeamMember]
}

// RoleRepository roles y permisos.
type RoleRepository interface {
	Collection[entity.Role]
}

// VendorRepository fichas de proveedores.
type VendorRepository interface {
	Collection[entity.VendorProfile]
}

// CredentialRepository usuarios registrados en el modo de autenticación simulado.
type CredentialRepository interface {
	Collection[entity.Credential]
}

// ConfigRepository registro de configuración.
type ConfigRepository interface {
	// Load combina lo guardado sobre los valores por defecto.
	Load(ctx context.Context) (entity.DashboardConfig, error)
	Save(ctx context.Context, cfg entity.DashboardConfig) error
}

// SessionRepository usuario de la sesión actual.
type SessionRepository interface {
	// Current devuelve nil si no hay sesión.
	Current(ctx context.Context) (*entity.User, error)
	SetCurrent(ctx context.Context, u entity.User) error
	Clear(ctx context.Context) error
}
