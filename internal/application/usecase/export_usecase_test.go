package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/application/ports"
	"github.com/jhoicas/subguard-api/internal/application/usecase"
	"github.com/jhoicas/subguard-api/internal/domain"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/registry"
	"github.com/jhoicas/subguard-api/internal/infrastructure/storage"
)

// stubRenderer renderer que devuelve el nombre de la empresa y el número de activos.
type stubRenderer struct{ got dto.RegistryReport }

func (s *stubRenderer) Render(_ context.Context, r dto.RegistryReport) ([]byte, error) {
	s.got = r
	return []byte(r.CompanyName), nil
}
func (s *stubRenderer) ContentType() string { return "application/x-stub" }
func (s *stubRenderer) Extension() string   { return "stub" }

func newExportUC(e *env, renderers ...ports.ReportRenderer) *usecase.ExportUseCase {
	return usecase.NewExportUseCase(storage.NewAssetRepository(e.store), storage.NewConfigRepository(e.store), testClock, renderers...)
}

func TestBuildCSV_Formato(t *testing.T) {
	csv := usecase.BuildCSV([]entity.Asset{
		{Name: `Monitor 27" 4K`, Vendor: "Dell", Type: entity.AssetTypeHardware, Amount: decimal.NewFromInt(7_500_000),
			Currency: "IDR", BillingCycle: entity.CycleOneTime, Status: entity.StatusActive, Department: "Design"},
		{Name: "Slack", Vendor: "Salesforce, Inc.", Type: entity.AssetTypeSaaS, Amount: decimal.NewFromInt(2_000_000),
			Currency: "IDR", BillingCycle: entity.CycleMonthly, Status: entity.StatusActive, NextRenewal: "2025-12-01", Department: "Sales"},
	})
	want := strings.Join([]string{
		"Name,Vendor,Type,Amount,Currency,Billing Cycle,Status,Renewal Date,Department",
		`"Monitor 27"" 4K","Dell",Hardware,7500000,IDR,One-Time / Perpetual,Active,Perpetual,Design`,
		`"Slack","Salesforce, Inc.",SaaS,2000000,IDR,Monthly,Active,2025-12-01,Sales`,
	}, "\n")
	assert.Equal(t, want, csv)
}

func TestExportCSV_ListaFiltrada(t *testing.T) {
	f, err := newExportUC(newEnv()).CSV(context.Background(), registry.Query{View: registry.ViewHardware})
	require.NoError(t, err)
	assert.Equal(t, "SubGuard_Export_2025-11-20.csv", f.Filename)
	lines := strings.Split(string(f.Body), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], `"MacBook Pro M3 Max","iBox",Hardware,32000000`))
}

func TestExportReport(t *testing.T) {
	ctx := context.Background()
	r := &stubRenderer{}
	uc := newExportUC(newEnv(), r)

	f, err := uc.Report(ctx, "STUB", registry.Query{View: registry.ViewLicenses})
	require.NoError(t, err)
	assert.Equal(t, "SubGuard_Export_2025-11-20.stub", f.Filename)
	assert.Equal(t, "SubGuard Inc.", string(f.Body))
	assert.Len(t, r.got.Assets, 4)
	assert.Equal(t, 2, r.got.Stats.UpcomingRenewals, "los indicadores usan el registro completo")

	_, err = uc.Report(ctx, "docx", registry.Query{})
	assert.ErrorIs(t, err, domain.ErrUnsupported)
}
