package xmlreport_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/finance"
	"github.com/jhoicas/subguard-api/internal/infrastructure/xmlreport"
)

func sampleReport() dto.RegistryReport {
	return dto.RegistryReport{
		CompanyName: "Acme & Co",
		Currency:    entity.CurrencyUSD,
		GeneratedAt: time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC),
		Stats:       finance.Stats{TotalValue: decimal.NewFromInt(1000000), MonthlyBurn: decimal.NewFromInt(1000000), UpcomingRenewals: 1},
		Assets: []entity.Asset{
			{
				ID: "a1", Name: `Slack "Pro"`, Vendor: "Salesforce", Type: entity.AssetTypeSaaS,
				Status: entity.StatusActive, Amount: decimal.RequireFromString("1000000.50"), Currency: entity.CurrencyIDR,
				BillingCycle: entity.CycleMonthly, NextRenewal: "2025-12-01", AutoRenew: true, RiskScore: 20, Utilization: 80,
			},
			{
				ID: "a2", Name: "Office 2019", Vendor: "Microsoft", Type: entity.AssetTypeSoftware,
				Status: entity.StatusActive, Amount: decimal.NewFromInt(3000000), Currency: entity.CurrencyIDR,
				BillingCycle: entity.CycleOneTime,
			},
		},
	}
}

func TestRenderer_Render_EstructuraDelDocumento(t *testing.T) {
	r := xmlreport.NewRenderer()
	assert.Equal(t, "xml", r.Extension())
	assert.Equal(t, "application/xml", r.ContentType())

	out, err := r.Render(context.Background(), sampleReport())
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, s, `<AssetRegistry company="Acme &amp; Co" currency="USD" generated="2025-11-20T10:00:00Z">`)
	assert.Contains(t, s, `upcomingRenewals="1"`)
	assert.Contains(t, s, `<NextRenewal perpetual="true"/>`)
	assert.Contains(t, s, `<Amount currency="IDR">1000000.5</Amount>`)
}

func TestDecode_RecuperaLosActivosRenderizados(t *testing.T) {
	out, err := xmlreport.NewRenderer().Render(context.Background(), sampleReport())
	require.NoError(t, err)

	assets, err := xmlreport.Decode(out)
	require.NoError(t, err)
	require.Len(t, assets, 2)

	assert.Equal(t, `Slack "Pro"`, assets[0].Name)
	assert.True(t, assets[0].Amount.Equal(decimal.RequireFromString("1000000.5")))
	assert.Equal(t, "2025-12-01", assets[0].NextRenewal)
	assert.True(t, assets[0].AutoRenew)
	assert.Equal(t, 80, assets[0].Utilization)
	assert.Equal(t, "", assets[1].NextRenewal)
	assert.Equal(t, entity.CycleOneTime, assets[1].BillingCycle)
}

func TestDecode_ConservaTodosLosCampos(t *testing.T) {
	laptop := entity.Asset{
		ID: "hw-7", Name: "ThinkPad X1 & Dock", Type: entity.AssetTypeHardware, Category: "Laptops",
		Vendor: "Lenovo", Owner: "IT Ops", Department: "Engineering", LegalEntity: "Acme Indonesia",
		Amount: decimal.RequireFromString("28500000.75"), Currency: entity.CurrencyIDR,
		Status: entity.StatusActive, BillingCycle: entity.CycleYearly,
		PurchaseDate: "2024-03-15", NextRenewal: "2026-03-15", AutoRenew: true,
		Capex: true, DepreciationMethod: entity.DepreciationStraightLine, Seats: 3,
		Assignments: []entity.Assignment{
			{ID: "as-1", Assignee: "Dewi", Role: "Developer", AssignedDate: "2024-03-20"},
			{ID: "as-2", Assignee: "Budi", Role: "QA", AssignedDate: "2024-04-01"},
		},
		SerialNumber: "PF-3XK9", Location: "Jakarta HQ", WarrantyExpiry: "2027-03-15",
		Notes: "Incluye garantía extendida", RemindersEnabled: true, ReminderDaysBefore: 14,
		Documents:   []string{"invoice-2024.pdf", "warranty.pdf"},
		Utilization: 65, RiskScore: 40,
		RiskFactors: []string{"Batería degradada", "Fin de soporte"},
		History: map[string]decimal.Decimal{
			"sept": decimal.RequireFromString("2375000"),
			"oct":  decimal.RequireFromString("2375000.5"),
		},
	}
	report := sampleReport()
	report.Assets = []entity.Asset{laptop}

	out, err := xmlreport.NewRenderer().Render(context.Background(), report)
	require.NoError(t, err)
	assets, err := xmlreport.Decode(out)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, laptop, assets[0])
}

func TestDecode_NumeroInvalido(t *testing.T) {
	doc := `<AssetRegistry><Asset id="x"><Name>X</Name><Seats>muchos</Seats></Asset></AssetRegistry>`
	_, err := xmlreport.Decode([]byte(doc))
	assert.ErrorContains(t, err, "Seats")
}

func TestDecode_RaizIncorrecta(t *testing.T) {
	_, err := xmlreport.Decode([]byte(`<Invoice/>`))
	assert.Error(t, err)
}
