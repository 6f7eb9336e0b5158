// Package registry implementa el filtrado y ordenamiento de las vistas del registro de activos.
package registry

import (
	"sort"
	"strings"

	"github.com/jhoicas/subguard-api/internal/domain/entity"
)

// Vistas con comportamiento propio en el pipeline.
const (
	ViewOverview = "overview"
	ViewRegistry = "registry"
	ViewLicenses = "licenses"
	ViewHardware = "hardware"
	ViewFinOps   = "finops"
	ViewRisk     = "risk"
	ViewCalendar = "calendar"
	ViewVendors  = "vendors"
)

// Claves de ordenamiento.
const (
	SortName   = "name"
	SortAmount = "amount"
	SortDate   = "date"
)

// FilterAll desactiva el filtro de estado o departamento.
const FilterAll = "All"

// Query parámetros del pipeline. Los campos vacíos no filtran.
type Query struct {
	View       string
	Search     string
	Status     string
	Department string
	SortBy     string
}

// Apply ejecuta el pipeline sobre una copia de assets:
//
//  1. vista (licenses, hardware, finops filtran por tipo; risk ordena por riesgo desc)
//  2. búsqueda sin distinguir mayúsculas en name, category, owner y vendor
//  3. filtro por estado
//  4. filtro por departamento
//  5. orden por defecto salvo en risk, calendar y vendors
func Apply(assets []entity.Asset, q Query) []entity.Asset {
	out := make([]entity.Asset, 0, len(assets))

	// ── 1. Vista ──────────────────────────────────────────────────────────────
	for _, a := range assets {
		if matchesView(a, q.View) {
			out = append(out, a)
		}
	}
	if q.View == ViewRisk {
		sort.SliceStable(out, func(i, j int) bool { return out[i].RiskScore > out[j].RiskScore })
	}

	// ── 2–4. Búsqueda y filtros ───────────────────────────────────────────────
	term := strings.ToLower(strings.TrimSpace(q.Search))
	filtered := out[:0]
	for _, a := range out {
		if term != "" && !matchesSearch(a, term) {
			continue
		}
		if q.Status != "" && q.Status != FilterAll && string(a.Status) != q.Status {
			continue
		}
		if q.Department != "" && q.Department != FilterAll && a.Department != q.Department {
			continue
		}
		filtered = append(filtered, a)
	}
	out = filtered

	// ── 5. Orden ──────────────────────────────────────────────────────────────
	switch q.View {
	case ViewRisk, ViewCalendar, ViewVendors:
		return out
	}
	sortAssets(out, q.SortBy)
	return out
}

func matchesView(a entity.Asset, view string) bool {
	switch view {
	case ViewLicenses:
		return a.Type.IsLicense()
	case ViewHardware:
		return a.Type == entity.AssetTypeHardware
	case ViewFinOps:
		return a.Type == entity.AssetTypeCloud
	default:
		return true
	}
}

func matchesSearch(a entity.Asset, term string) bool {
	for _, field := range []string{a.Name, a.Category, a.Owner, a.Vendor} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// sortAssets ordena in-place. Clave desconocida o vacía usa SortDate.
func sortAssets(assets []entity.Asset, by string) {
	switch by {
	case SortName:
		sort.SliceStable(assets, func(i, j int) bool {
			return strings.ToLower(assets[i].Name) < strings.ToLower(assets[j].Name)
		})
	case SortAmount:
		sort.SliceStable(assets, func(i, j int) bool {
			return assets[i].Amount.GreaterThan(assets[j].Amount)
		})
	default:
		// Las renovaciones vacías (perpetuos) van siempre al final.
		sort.SliceStable(assets, func(i, j int) bool {
			a, b := assets[i].NextRenewal, assets[j].NextRenewal
			if a == "" || b == "" {
				return a != "" && b == ""
			}
			return a < b
		})
	}
}
