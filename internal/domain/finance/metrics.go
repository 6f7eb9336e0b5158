// Package finance contiene el motor de métricas derivadas del registro de activos:
// gasto mensual amortizado, proyección a 12 meses, gasto por departamento/proveedor
// y alertas de renovación. Todas las funciones son puras y deterministas en
// (activos, now, config); nunca modifican el slice de entrada.
package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/renewal"
)

const (
	RenewalWindowDays       = 30 // ventana de alertas de renovación
	HighRiskThreshold       = 70 // riskScore estrictamente mayor es alto riesgo
	LowUtilizationThreshold = 50 // utilización menor cuenta como desperdicio potencial
	DefaultTopVendors       = 5
	ProjectionMonths        = 12
)

var (
	twelve = decimal.NewFromInt(12)
	three  = decimal.NewFromInt(3)
)

// Stats indicadores del dashboard.
type Stats struct {
	TotalValue       decimal.Decimal `json:"total_value"`       // Σ amount de activos Active
	MonthlyBurn      decimal.Decimal `json:"monthly_burn"`      // costo mensual amortizado de activos Active
	UpcomingRenewals int             `json:"upcoming_renewals"` // renovaciones dentro de la ventana (cualquier estado)
	HighRiskCount    int             `json:"high_risk_count"`   // riskScore > 70 (cualquier estado)
	LicenseSpend     decimal.Decimal `json:"license_spend"`     // Σ amount de SaaS/Software/Cloud Active
	HardwareCount    int             `json:"hardware_count"`    // hardware Active
	WastePotential   decimal.Decimal `json:"waste_potential"`   // Σ amount con utilización < 50
}

// ComputeStats calcula los indicadores del dashboard.
func ComputeStats(assets []entity.Asset, now time.Time) Stats {
	s := Stats{
		TotalValue:     decimal.Zero,
		MonthlyBurn:    decimal.Zero,
		LicenseSpend:   decimal.Zero,
		WastePotential: decimal.Zero,
	}
	for _, a := range assets {
		if a.IsActive() {
			s.TotalValue = s.TotalValue.Add(a.Amount)
			s.MonthlyBurn = s.MonthlyBurn.Add(MonthlyCost(a))
			if a.Type.IsLicense() {
				s.LicenseSpend = s.LicenseSpend.Add(a.Amount)
			}
			if a.Type == entity.AssetTypeHardware {
				s.HardwareCount++
			}
		}
		if InRenewalWindow(a, now) {
			s.UpcomingRenewals++
		}
		if a.RiskScore > HighRiskThreshold {
			s.HighRiskCount++
		}
		if a.Utilization < LowUtilizationThreshold {
			s.WastePotential = s.WastePotential.Add(a.Amount)
		}
	}
	return s
}

// MonthlyCost amortización lineal del monto según el ciclo. No es un calendario de caja.
func MonthlyCost(a entity.Asset) decimal.Decimal {
	switch a.BillingCycle {
	case entity.CycleMonthly:
		return a.Amount
	case entity.CycleYearly:
		return a.Amount.Div(twelve)
	case entity.CycleQuarterly:
		return a.Amount.Div(three)
	default:
		return decimal.Zero
	}
}

// InRenewalWindow ventana canónica de renovación a granularidad de día:
// hoy <= nextRenewal <= hoy + 30 días, ambos inclusive, en la zona horaria de now.
// Una fecha vacía o inválida nunca está dentro.
func InRenewalWindow(a entity.Asset, now time.Time) bool {
	if a.Perpetual() {
		return false
	}
	d, err := renewal.ParseDate(a.NextRenewal, now.Location())
	if err != nil {
		return false
	}
	today := startOfDay(now)
	end := today.AddDate(0, 0, RenewalWindowDays)
	return !d.Before(today) && !d.After(end)
}

// RenewalAlerts activos dentro de la ventana de renovación, ordenados por fecha ascendente.
func RenewalAlerts(assets []entity.Asset, now time.Time) []entity.Asset {
	out := make([]entity.Asset, 0)
	for _, a := range assets {
		if InRenewalWindow(a, now) {
			out = append(out, a)
		}
	}
	// YYYY-MM-DD ordena lexicográficamente igual que cronológicamente.
	sort.SliceStable(out, func(i, j int) bool { return out[i].NextRenewal < out[j].NextRenewal })
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
