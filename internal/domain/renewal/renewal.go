// Package renewal implementa la aritmética de fechas de los ciclos de facturación.
package renewal

import (
	"fmt"
	"time"

	"github.com/jhoicas/subguard-api/internal/domain"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
)

// DateLayout formato de las fechas de calendario del registro.
const DateLayout = "2006-01-02"

// ParseDate interpreta una fecha YYYY-MM-DD como medianoche en loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, s, loc)
}

// AddMonths suma n meses al calendario recortando al último día del mes destino:
// 2025-01-31 + 1 mes = 2025-02-28.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, t.Location()).AddDate(0, n, 0)
	if last := daysIn(first.Year(), first.Month(), t.Location()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(y int, m time.Month, loc *time.Location) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, loc).Day()
}

// Next calcula la siguiente fecha de renovación según el ciclo.
//
//	Monthly   → +1 mes
//	Quarterly → +3 meses
//	Yearly    → +12 meses (2024-02-29 → 2025-02-28)
//
// Un activo perpetuo (fecha vacía o ciclo One-Time) devuelve ErrUnsupported.
func Next(date string, cycle entity.BillingCycle) (string, error) {
	if date == "" {
		return "", fmt.Errorf("renovación: activo sin fecha de renovación: %w", domain.ErrUnsupported)
	}
	var months int
	switch cycle {
	case entity.CycleMonthly:
		months = 1
	case entity.CycleQuarterly:
		months = 3
	case entity.CycleYearly:
		months = 12
	default:
		return "", fmt.Errorf("renovación: ciclo %q sin periodo: %w", cycle, domain.ErrUnsupported)
	}
	t, err := ParseDate(date, time.UTC)
	if err != nil {
		return "", fmt.Errorf("renovación: fecha %q: %w", date, domain.ErrInvalidInput)
	}
	return AddMonths(t, months).Format(DateLayout), nil
}
