package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/repository"
)

var _ repository.ConfigRepository = (*ConfigRepo)(nil)

// ConfigRepo registro de configuración versionado.
type ConfigRepo struct {
	store repository.BlobStore
}

// NewConfigRepository construye el repositorio.
func NewConfigRepository(store repository.BlobStore) *ConfigRepo {
	return &ConfigRepo{store: store}
}

// Load decodifica lo guardado sobre los valores por defecto: los campos ausentes en el
// JSON conservan su default y las pasarelas de pago se combinan por clave.
// La versión de esquema queda siempre en la actual.
func (r *ConfigRepo) Load(ctx context.Context) (entity.DashboardConfig, error) {
	cfg := entity.DefaultDashboardConfig()
	raw, found, err := r.store.Get(ctx, repository.KeyConfig)
	if err != nil {
		return cfg, fmt.Errorf("storage: leer config: %w", err)
	}
	if !found {
		return cfg, nil
	}
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return entity.DefaultDashboardConfig(), fmt.Errorf("storage: decodificar config: %w", err)
	}
	cfg.SchemaVersion = entity.ConfigSchemaVersion
	return cfg, nil
}

// Save guarda el registro completo.
func (r *ConfigRepo) Save(ctx context.Context, cfg entity.DashboardConfig) error {
	cfg.SchemaVersion = entity.ConfigSchemaVersion
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("storage: serializar config: %w", err)
	}
	if err := r.store.Set(ctx, repository.KeyConfig, string(raw)); err != nil {
		return fmt.Errorf("storage: guardar config: %w", err)
	}
	return nil
}
