package renewal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/subguard-api/internal/domain"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/renewal"
)

func TestNext_PorCiclo(t *testing.T) {
	cases := []struct {
		name  string
		date  string
		cycle entity.BillingCycle
		want  string
	}{
		{"mensual", "2025-12-12", entity.CycleMonthly, "2026-01-12"},
		{"trimestral", "2025-11-30", entity.CycleQuarterly, "2026-02-28"},
		{"anual", "2026-01-15", entity.CycleYearly, "2027-01-15"},
		{"fin de mes se recorta", "2025-01-31", entity.CycleMonthly, "2025-02-28"},
		{"bisiesto se recorta", "2024-02-29", entity.CycleYearly, "2025-02-28"},
		{"enero bisiesto", "2024-01-31", entity.CycleMonthly, "2024-02-29"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := renewal.Next(tc.date, tc.cycle)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNext_PerpetuoNoSoportado(t *testing.T) {
	_, err := renewal.Next("", entity.CycleMonthly)
	assert.ErrorIs(t, err, domain.ErrUnsupported)

	_, err = renewal.Next("2025-06-01", entity.CycleOneTime)
	assert.ErrorIs(t, err, domain.ErrUnsupported)
}

func TestNext_FechaInvalida(t *testing.T) {
	_, err := renewal.Next("31/01/2025", entity.CycleMonthly)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddMonths_ConservaHora(t *testing.T) {
	base := time.Date(2025, time.March, 31, 15, 4, 5, 0, time.UTC)
	got := renewal.AddMonths(base, 1)
	assert.Equal(t, time.Date(2025, time.April, 30, 15, 4, 5, 0, time.UTC), got)
}
