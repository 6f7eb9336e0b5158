package finance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/finance"
)

func TestProjectedSpend_DoceMesesDesdeNow(t *testing.T) {
	budget := dec("500000000")
	out := finance.ProjectedSpend(registry(), budget, testNow)
	require.Len(t, out, 12)

	labels := make([]string, 0, len(out))
	for _, m := range out {
		labels = append(labels, m.Month)
		assert.True(t, budget.Equal(m.Budget))
	}
	assert.Equal(t, []string{"Nov", "Dec", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct"}, labels)
	assert.Equal(t, 2025, out[0].Year)
	assert.Equal(t, 2026, out[2].Year)

	// Mensuales activos: AWS + Adobe. Salesforce (anual) cae en enero 2026.
	assertDec(t, "24300000", out[0].Spend)
	assertDec(t, "24300000", out[1].Spend)
	assertDec(t, "69300000", out[2].Spend)
	assertDec(t, "24300000", out[3].Spend)
}

func TestProjectedSpend_Trimestral(t *testing.T) {
	assets := []entity.Asset{{
		Amount: dec("300"), Status: entity.StatusActive, BillingCycle: entity.CycleQuarterly,
	}}
	now := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	out := finance.ProjectedSpend(assets, dec("0"), now)

	for i, m := range out {
		if i%3 == 0 {
			assertDec(t, "300", m.Spend, "mes %s", m.Month)
		} else {
			assert.True(t, m.Spend.IsZero(), "mes %s", m.Month)
		}
	}
}

func TestProjectedSpend_IgnoraNoActivos(t *testing.T) {
	assets := []entity.Asset{{
		Amount: dec("1000"), Status: entity.StatusSuspended, BillingCycle: entity.CycleMonthly,
	}}
	for _, m := range finance.ProjectedSpend(assets, dec("1"), testNow) {
		assert.True(t, m.Spend.IsZero())
	}
}

func TestProjectedSpend_AnualFueraDeHorizonte(t *testing.T) {
	assets := []entity.Asset{{
		Amount: dec("1000"), Status: entity.StatusActive, BillingCycle: entity.CycleYearly,
		NextRenewal: "2027-03-01",
	}}
	for _, m := range finance.ProjectedSpend(assets, dec("1"), testNow) {
		assert.True(t, m.Spend.IsZero())
	}
}
