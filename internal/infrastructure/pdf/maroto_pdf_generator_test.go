package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/finance"
	"github.com/jhoicas/subguard-api/internal/infrastructure/pdf"
)

func TestMarotoPDFGenerator_Render_GeneraDocumentoPDF(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()
	assert.Equal(t, "pdf", g.Extension())
	assert.Equal(t, "application/pdf", g.ContentType())

	report := dto.RegistryReport{
		CompanyName: "Acme Corp",
		Currency:    entity.CurrencyIDR,
		GeneratedAt: time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC),
		Stats:       finance.Stats{TotalValue: decimal.NewFromInt(15400000), MonthlyBurn: decimal.NewFromInt(1000000)},
		Assets: []entity.Asset{
			{Name: "Slack", Vendor: "Salesforce", Type: entity.AssetTypeSaaS, Status: entity.StatusActive, Amount: decimal.NewFromInt(1000000), NextRenewal: "2025-12-01"},
			{Name: "ThinkPad", Vendor: "Lenovo", Type: entity.AssetTypeHardware, Status: entity.StatusActive, Amount: decimal.NewFromInt(14400000)},
		},
	}

	out, err := g.Render(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestMarotoPDFGenerator_Render_RegistroVacio(t *testing.T) {
	out, err := pdf.NewMarotoPDFGenerator().Render(context.Background(), dto.RegistryReport{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
