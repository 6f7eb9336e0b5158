package repository

import "context"

// Claves lógicas del almacén. El adaptador antepone el prefijo configurado (subguard_).
const (
	KeyUser     = "user"
	KeyUsers    = "users"
	KeyAssets   = "assets"
	KeyRequests = "requests"
	KeyLogs     = "logs"
	KeyTeam     = "team"
	KeyRoles    = "roles"
	KeyVendors  = "vendors"
	KeyConfig   = "config"
)

// BlobStore almacén clave-valor opaco. Los valores son serializaciones JSON UTF-8
// de colecciones completas; cada mutación reescribe la colección entera.
type BlobStore interface {
	// Get devuelve found=false si la clave no existe.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
