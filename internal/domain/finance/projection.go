package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/renewal"
)

// MonthProjection gasto proyectado de un mes frente al presupuesto.
type MonthProjection struct {
	Month  string          `json:"month"` // etiqueta de 3 letras: Jan..Dec
	Year   int             `json:"year"`
	Spend  decimal.Decimal `json:"spend"`
	Budget decimal.Decimal `json:"budget"`
}

// ProjectedSpend proyección de 12 meses comenzando en el mes de now. Solo activos Active:
//
//	Monthly   → aporta amount todos los meses
//	Yearly    → aporta amount en el mes/año de nextRenewal
//	Quarterly → aporta amount en los meses de índice % 3 == 0 (Jan, Apr, Jul, Oct)
//
// Los trimestres son fijos de calendario, no el aniversario del activo.
func ProjectedSpend(assets []entity.Asset, monthlyBudget decimal.Decimal, now time.Time) []MonthProjection {
	out := make([]MonthProjection, 0, ProjectionMonths)
	for i := 0; i < ProjectionMonths; i++ {
		target := time.Date(now.Year(), now.Month()+time.Month(i), 1, 0, 0, 0, 0, now.Location())
		spend := decimal.Zero
		for _, a := range assets {
			if !a.IsActive() {
				continue
			}
			if contributes(a, target) {
				spend = spend.Add(a.Amount)
			}
		}
		out = append(out, MonthProjection{
			Month:  target.Month().String()[:3],
			Year:   target.Year(),
			Spend:  spend,
			Budget: monthlyBudget,
		})
	}
	return out
}

func contributes(a entity.Asset, target time.Time) bool {
	switch a.BillingCycle {
	case entity.CycleMonthly:
		return true
	case entity.CycleYearly:
		if a.Perpetual() {
			return false
		}
		d, err := renewal.ParseDate(a.NextRenewal, target.Location())
		if err != nil {
			return false
		}
		return d.Month() == target.Month() && d.Year() == target.Year()
	case entity.CycleQuarterly:
		return (int(target.Month())-1)%3 == 0
	default:
		return false
	}
}
