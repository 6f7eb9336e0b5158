package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/subguard-api/internal/application/audit"
	"github.com/jhoicas/subguard-api/internal/domain"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/repository"
)

// ConfigUseCase lectura y actualización del registro de configuración.
type ConfigUseCase struct {
	repo  repository.ConfigRepository
	audit *audit.Writer
	mu    sync.Mutex
}

// NewConfigUseCase construye el caso de uso.
func NewConfigUseCase(repo repository.ConfigRepository, auditWriter *audit.Writer) *ConfigUseCase {
	return &ConfigUseCase{repo: repo, audit: auditWriter}
}

// Get devuelve la configuración vigente (lo guardado sobre los valores por defecto).
func (uc *ConfigUseCase) Get(ctx context.Context) (entity.DashboardConfig, error) {
	cfg, err := uc.repo.Load(ctx)
	if err != nil {
		return entity.DashboardConfig{}, fmt.Errorf("cargar configuración: %w", err)
	}
	return cfg, nil
}

// Update valida y guarda el registro completo.
func (uc *ConfigUseCase) Update(ctx context.Context, actor string, cfg entity.DashboardConfig) (entity.DashboardConfig, error) {
	switch {
	case !entity.ValidCurrency(cfg.Currency):
		return entity.DashboardConfig{}, fmt.Errorf("currency %q: %w", cfg.Currency, domain.ErrInvalidInput)
	case cfg.MonthlyBudget.IsNegative():
		return entity.DashboardConfig{}, fmt.Errorf("monthly_budget negativo: %w", domain.ErrInvalidInput)
	case cfg.CheckerThreshold.IsNegative():
		return entity.DashboardConfig{}, fmt.Errorf("checker_threshold negativo: %w", domain.ErrInvalidInput)
	}
	if len(cfg.Departments) == 0 {
		cfg.Departments = append([]string(nil), entity.DefaultDepartments...)
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = append([]string(nil), entity.DefaultCategories...)
	}
	cfg.SchemaVersion = entity.ConfigSchemaVersion

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.repo.Save(ctx, cfg); err != nil {
		return entity.DashboardConfig{}, fmt.Errorf("guardar configuración: %w", err)
	}
	if _, err := uc.audit.Record(ctx, audit.Entry{
		Action:  audit.ActionSettingsUpdated,
		Actor:   actor,
		Target:  "Dashboard Config",
		Details: fmt.Sprintf("Currency %s, monthly budget %s", cfg.Currency, cfg.MonthlyBudget.StringFixed(0)),
	}); err != nil {
		return entity.DashboardConfig{}, err
	}
	return cfg, nil
}
