// Package analytics contiene el resumen del dashboard: indicadores, proyección
// de gasto, distribución por departamento y proveedor, y alertas de renovación.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/application/ports"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/finance"
	"github.com/jhoicas/subguard-api/internal/domain/repository"
	"github.com/jhoicas/subguard-api/pkg/money"
)

var hundred = decimal.NewFromInt(100)

// DashboardUseCase arma el resumen del dashboard a partir del registro.
// Solo lee; todos los cálculos los hace el paquete finance.
type DashboardUseCase struct {
	assets   repository.AssetRepository
	requests repository.RequestRepository
	config   repository.ConfigRepository
	clock    ports.Clock
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	assets repository.AssetRepository,
	requests repository.RequestRepository,
	config repository.ConfigRepository,
	clock ports.Clock,
) *DashboardUseCase {
	return &DashboardUseCase{assets: assets, requests: requests, config: config, clock: clock}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres lecturas en paralelo:
//  1. activos        → indicadores, proyección, departamentos, proveedores, alertas
//  2. configuración  → presupuesto mensual y moneda de visualización
//  3. solicitudes    → pendientes de aprobación
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.clock.Now()

	type assetsResult struct {
		assets []entity.Asset
		err    error
	}
	type configResult struct {
		cfg entity.DashboardConfig
		err error
	}
	type requestsResult struct {
		reqs []entity.Request
		err  error
	}

	assetsCh := make(chan assetsResult, 1)
	configCh := make(chan configResult, 1)
	requestsCh := make(chan requestsResult, 1)

	go func() {
		a, err := uc.assets.Load(ctx)
		assetsCh <- assetsResult{a, err}
	}()
	go func() {
		c, err := uc.config.Load(ctx)
		configCh <- configResult{c, err}
	}()
	go func() {
		r, err := uc.requests.Load(ctx)
		requestsCh <- requestsResult{r, err}
	}()

	ar := <-assetsCh
	cr := <-configCh
	rr := <-requestsCh

	if ar.err != nil {
		return nil, fmt.Errorf("dashboard: activos: %w", ar.err)
	}
	if cr.err != nil {
		return nil, fmt.Errorf("dashboard: configuración: %w", cr.err)
	}
	if rr.err != nil {
		return nil, fmt.Errorf("dashboard: solicitudes: %w", rr.err)
	}

	stats := finance.ComputeStats(ar.assets, now)
	projection := finance.ProjectedSpend(ar.assets, cr.cfg.MonthlyBudget, now)

	pending := 0
	for _, r := range rr.reqs {
		if r.Status == entity.RequestPending {
			pending++
		}
	}
	overBudget := 0
	for _, m := range projection {
		if m.Spend.GreaterThan(m.Budget) {
			overBudget++
		}
	}

	return &dto.DashboardSummaryDTO{
		Stats:             stats,
		Projection:        projection,
		DepartmentSpend:   finance.DepartmentSpend(ar.assets),
		TopVendors:        finance.VendorSpend(ar.assets, finance.DefaultTopVendors),
		RenewalAlerts:     finance.RenewalAlerts(ar.assets, now),
		PendingRequests:   pending,
		Currency:          cr.cfg.Currency,
		FormattedBurn:     money.Format(stats.MonthlyBurn, cr.cfg.Currency),
		FormattedTotal:    money.Format(stats.TotalValue, cr.cfg.Currency),
		FormattedWaste:    money.Format(stats.WastePotential, cr.cfg.Currency),
		MonthLabel:        monthLabel(now),
		BudgetUtilization: budgetUtilization(stats.MonthlyBurn, cr.cfg.MonthlyBudget),
		OverBudgetMonths:  overBudget,
	}, nil
}

// Projection solo la proyección de 12 meses.
func (uc *DashboardUseCase) Projection(ctx context.Context) ([]finance.MonthProjection, error) {
	assets, err := uc.assets.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("proyección: activos: %w", err)
	}
	cfg, err := uc.config.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("proyección: configuración: %w", err)
	}
	return finance.ProjectedSpend(assets, cfg.MonthlyBudget, uc.clock.Now()), nil
}

// Alerts activos dentro de la ventana de renovación.
func (uc *DashboardUseCase) Alerts(ctx context.Context) ([]entity.Asset, error) {
	assets, err := uc.assets.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("alertas: activos: %w", err)
	}
	return finance.RenewalAlerts(assets, uc.clock.Now()), nil
}

// Stats solo los indicadores.
func (uc *DashboardUseCase) Stats(ctx context.Context) (finance.Stats, error) {
	assets, err := uc.assets.Load(ctx)
	if err != nil {
		return finance.Stats{}, fmt.Errorf("indicadores: activos: %w", err)
	}
	return finance.ComputeStats(assets, uc.clock.Now()), nil
}

// budgetUtilization porcentaje del presupuesto consumido por el gasto mensual, ej: "5.6%".
func budgetUtilization(burn, budget decimal.Decimal) string {
	if !budget.IsPositive() {
		return "0%"
	}
	return burn.Div(budget).Mul(hundred).StringFixed(1) + "%"
}

// monthLabel devuelve una etiqueta legible del mes, ej: "November 2025".
func monthLabel(t time.Time) string {
	return t.Format("January 2006")
}
