package finance

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/subguard-api/internal/domain/entity"
)

// Bucket total acumulado para una clave (departamento o proveedor).
type Bucket struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// DepartmentSpend Σ amount por departamento sobre todos los estados,
// en orden de primera aparición.
func DepartmentSpend(assets []entity.Asset) []Bucket {
	return groupBy(assets, func(a entity.Asset) string { return a.Department })
}

// VendorSpend Σ amount por proveedor, descendente (empates conservan el orden de
// primera aparición) y truncado a topN. topN <= 0 usa DefaultTopVendors.
func VendorSpend(assets []entity.Asset, topN int) []Bucket {
	if topN <= 0 {
		topN = DefaultTopVendors
	}
	out := groupBy(assets, func(a entity.Asset) string { return a.Vendor })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total.GreaterThan(out[j].Total) })
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

func groupBy(assets []entity.Asset, key func(entity.Asset) string) []Bucket {
	index := make(map[string]int)
	out := make([]Bucket, 0)
	for _, a := range assets {
		k := key(a)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Bucket{Name: k, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(a.Amount)
	}
	return out
}

// VendorSummary ficha agregada de un proveedor en el hub de proveedores.
type VendorSummary struct {
	Name    string                `json:"name"`
	Spend   decimal.Decimal       `json:"spend"`
	Count   int                   `json:"count"`
	Assets  []entity.Asset        `json:"assets"`
	Profile *entity.VendorProfile `json:"profile,omitempty"` // nil si no hay ficha registrada
}

// VendorHub agrupa los activos por proveedor (omitiendo el proveedor vacío),
// adjunta la ficha por nombre y ordena por gasto descendente.
func VendorHub(assets []entity.Asset, profiles []entity.VendorProfile) []VendorSummary {
	byName := make(map[string]entity.VendorProfile, len(profiles))
	for _, p := range profiles {
		byName[p.Name] = p
	}
	index := make(map[string]int)
	out := make([]VendorSummary, 0)
	for _, a := range assets {
		if a.Vendor == "" {
			continue
		}
		i, ok := index[a.Vendor]
		if !ok {
			i = len(out)
			index[a.Vendor] = i
			vs := VendorSummary{Name: a.Vendor, Spend: decimal.Zero}
			if p, found := byName[a.Vendor]; found {
				vs.Profile = &p
			}
			out = append(out, vs)
		}
		out[i].Spend = out[i].Spend.Add(a.Amount)
		out[i].Count++
		out[i].Assets = append(out[i].Assets, a)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Spend.GreaterThan(out[j].Spend) })
	return out
}
