package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/subguard-api/internal/application/analytics"
	"github.com/jhoicas/subguard-api/internal/application/ports"
	"github.com/jhoicas/subguard-api/internal/infrastructure/blobstore"
	"github.com/jhoicas/subguard-api/internal/infrastructure/storage"
)

var testNow = time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC)

func newDashboard() *analytics.DashboardUseCase {
	store := blobstore.NewMemoryStore()
	return analytics.NewDashboardUseCase(
		storage.NewAssetRepository(store),
		storage.NewRequestRepository(store),
		storage.NewConfigRepository(store),
		ports.ClockFunc(func() time.Time { return testNow }),
	)
}

func TestGetSummary_ConDatosSemilla(t *testing.T) {
	sum, err := newDashboard().GetSummary(context.Background())
	require.NoError(t, err)

	// Activos Active: AWS 15.4M mensual, Salesforce 45M anual, MacBook 32M único, Adobe 8.9M mensual.
	assert.True(t, decimal.NewFromInt(28_050_000).Equal(sum.Stats.MonthlyBurn), sum.Stats.MonthlyBurn.String())
	assert.Equal(t, 2, sum.Stats.UpcomingRenewals)
	assert.Equal(t, 2, sum.PendingRequests)
	assert.Len(t, sum.Projection, 12)
	assert.Equal(t, "Nov", sum.Projection[0].Month)
	assert.Len(t, sum.TopVendors, 5)
	assert.Equal(t, "Oracle", sum.TopVendors[0].Name)
	require.Len(t, sum.RenewalAlerts, 2)
	assert.Equal(t, "4", sum.RenewalAlerts[0].ID, "Adobe renueva el 2025-12-01, antes que AWS")
	assert.Equal(t, "IDR", sum.Currency)
	assert.Equal(t, "Rp 28.050.000", sum.FormattedBurn)
	assert.Equal(t, "November 2025", sum.MonthLabel)
	assert.Equal(t, "5.6%", sum.BudgetUtilization)
	assert.Equal(t, 0, sum.OverBudgetMonths)
}

func TestProjection_PresupuestoConfigurado(t *testing.T) {
	proj, err := newDashboard().Projection(context.Background())
	require.NoError(t, err)
	for _, m := range proj {
		assert.True(t, decimal.NewFromInt(500_000_000).Equal(m.Budget))
	}
}

func TestAlerts(t *testing.T) {
	alerts, err := newDashboard().Alerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "1", alerts[1].ID)
}
