package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/finance"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures: registro de ejemplo evaluado el 2025-11-20.
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2025, time.November, 20, 10, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal, msg ...interface{}) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "esperado %s, obtenido %s %v", want, got.String(), msg)
}

func registry() []entity.Asset {
	return []entity.Asset{
		{ID: "1", Name: "AWS Production Env", Type: entity.AssetTypeCloud, Vendor: "Amazon Web Services",
			Department: "Engineering", Amount: dec("15400000"), Status: entity.StatusActive,
			BillingCycle: entity.CycleMonthly, NextRenewal: "2025-12-12", RiskScore: 25, Utilization: 85},
		{ID: "2", Name: "Salesforce Enterprise", Type: entity.AssetTypeSaaS, Vendor: "Salesforce",
			Department: "Sales", Amount: dec("45000000"), Status: entity.StatusActive,
			BillingCycle: entity.CycleYearly, NextRenewal: "2026-01-15", RiskScore: 65, Utilization: 45},
		{ID: "3", Name: "MacBook Pro M3 Max", Type: entity.AssetTypeHardware, Vendor: "iBox",
			Department: "Design", Amount: dec("32000000"), Status: entity.StatusActive,
			BillingCycle: entity.CycleOneTime, NextRenewal: "", RiskScore: 10, Utilization: 100},
		{ID: "4", Name: "Adobe Creative Cloud", Type: entity.AssetTypeSoftware, Vendor: "Adobe",
			Department: "Design", Amount: dec("8900000"), Status: entity.StatusActive,
			BillingCycle: entity.CycleMonthly, NextRenewal: "2025-12-01", RiskScore: 40, Utilization: 92},
		{ID: "5", Name: "Legacy ERP System", Type: entity.AssetTypeSoftware, Vendor: "Oracle",
			Department: "Finance", Amount: dec("250000000"), Status: entity.StatusSuspended,
			BillingCycle: entity.CycleYearly, NextRenewal: "2025-06-30", RiskScore: 90, Utilization: 10},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeStats
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeStats_RegistroCompleto(t *testing.T) {
	s := finance.ComputeStats(registry(), testNow)

	assertDec(t, "101300000", s.TotalValue, "el activo suspendido no suma")
	assertDec(t, "28050000", s.MonthlyBurn)
	assert.Equal(t, 2, s.UpcomingRenewals, "AWS y Adobe renuevan dentro de 30 días")
	assert.Equal(t, 1, s.HighRiskCount)
	assertDec(t, "69300000", s.LicenseSpend)
	assert.Equal(t, 1, s.HardwareCount)
	assertDec(t, "295000000", s.WastePotential)
}

func TestComputeStats_DosActivos(t *testing.T) {
	s := finance.ComputeStats(registry()[:2], testNow)

	assertDec(t, "60400000", s.TotalValue)
	assertDec(t, "19150000", s.MonthlyBurn, "15.400.000 + 45.000.000/12")
	assert.Equal(t, 1, s.UpcomingRenewals)
	assert.Equal(t, 0, s.HighRiskCount)
}

func TestComputeStats_Vacio(t *testing.T) {
	s := finance.ComputeStats(nil, testNow)
	assert.True(t, s.TotalValue.IsZero())
	assert.True(t, s.MonthlyBurn.IsZero())
	assert.Zero(t, s.UpcomingRenewals)
	assert.Zero(t, s.HighRiskCount)
}

func TestComputeStats_SoloInactivos(t *testing.T) {
	assets := registry()
	for i := range assets {
		assets[i].Status = entity.StatusRetired
	}
	s := finance.ComputeStats(assets, testNow)
	assert.True(t, s.TotalValue.IsZero())
	assert.True(t, s.MonthlyBurn.IsZero())
	assert.Equal(t, 1, s.HighRiskCount, "el riesgo se cuenta sin importar el estado")
}

func TestComputeStats_RiesgoEstricto(t *testing.T) {
	assets := []entity.Asset{{RiskScore: 70}, {RiskScore: 71}}
	assert.Equal(t, 1, finance.ComputeStats(assets, testNow).HighRiskCount)
}

func TestMonthlyCost_PorCiclo(t *testing.T) {
	a := entity.Asset{Amount: dec("1200000")}

	a.BillingCycle = entity.CycleMonthly
	assertDec(t, "1200000", finance.MonthlyCost(a))
	a.BillingCycle = entity.CycleYearly
	assertDec(t, "100000", finance.MonthlyCost(a))
	a.BillingCycle = entity.CycleQuarterly
	assertDec(t, "400000", finance.MonthlyCost(a))
	a.BillingCycle = entity.CycleOneTime
	assert.True(t, finance.MonthlyCost(a).IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventana de renovación
// ──────────────────────────────────────────────────────────────────────────────

func TestInRenewalWindow_Limites(t *testing.T) {
	cases := []struct {
		date string
		want bool
	}{
		{"2025-11-19", false}, // ayer
		{"2025-11-20", true},  // hoy
		{"2025-12-20", true},  // hoy + 30
		{"2025-12-21", false}, // hoy + 31
		{"", false},
		{"no-es-fecha", false},
	}
	for _, tc := range cases {
		got := finance.InRenewalWindow(entity.Asset{NextRenewal: tc.date}, testNow)
		assert.Equal(t, tc.want, got, "fecha %q", tc.date)
	}
}

func TestRenewalAlerts_OrdenAscendente(t *testing.T) {
	alerts := finance.RenewalAlerts(registry(), testNow)
	require.Len(t, alerts, 2)
	assert.Equal(t, "Adobe Creative Cloud", alerts[0].Name)
	assert.Equal(t, "AWS Production Env", alerts[1].Name)
}

func TestRenewalAlerts_CoincideConStats(t *testing.T) {
	assets := registry()
	assets[4].NextRenewal = "2025-11-20"
	assert.Equal(t, finance.ComputeStats(assets, testNow).UpcomingRenewals,
		len(finance.RenewalAlerts(assets, testNow)),
		"ambas vistas usan la misma ventana")
}

func TestRenewalAlerts_NoModificaEntrada(t *testing.T) {
	assets := registry()
	_ = finance.RenewalAlerts(assets, testNow)
	assert.Equal(t, registry(), assets)
}
