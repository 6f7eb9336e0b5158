package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/finance"
)

func names(buckets []finance.Bucket) []string {
	out := make([]string, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, b.Name)
	}
	return out
}

func TestDepartmentSpend_OrdenDeAparicion(t *testing.T) {
	out := finance.DepartmentSpend(registry())
	require.Equal(t, []string{"Engineering", "Sales", "Design", "Finance"}, names(out))
	assertDec(t, "40900000", out[2].Total, "MacBook + Adobe")
	assertDec(t, "250000000", out[3].Total, "incluye activos suspendidos")
}

func TestVendorSpend_TopN(t *testing.T) {
	out := finance.VendorSpend(registry(), 0)
	assert.Equal(t, []string{"Oracle", "Salesforce", "iBox", "Amazon Web Services", "Adobe"}, names(out))

	top2 := finance.VendorSpend(registry(), 2)
	assert.Equal(t, []string{"Oracle", "Salesforce"}, names(top2))
}

func TestVendorSpend_EmpateConservaOrden(t *testing.T) {
	assets := []entity.Asset{
		{Vendor: "B", Amount: dec("10")},
		{Vendor: "A", Amount: dec("10")},
		{Vendor: "C", Amount: dec("20")},
	}
	assert.Equal(t, []string{"C", "B", "A"}, names(finance.VendorSpend(assets, 5)))
}

func TestVendorHub_AgrupaYAdjuntaFicha(t *testing.T) {
	assets := append(registry(), entity.Asset{ID: "6", Name: "Sin proveedor", Amount: dec("1")},
		entity.Asset{ID: "7", Name: "Slack", Vendor: "Salesforce", Amount: dec("5000000")})
	profiles := []entity.VendorProfile{{ID: "v1", Name: "Salesforce", Tier: entity.TierStrategic}}

	hub := finance.VendorHub(assets, profiles)
	require.Len(t, hub, 5, "el proveedor vacío se omite")
	assert.Equal(t, "Oracle", hub[0].Name)
	assert.Nil(t, hub[0].Profile)

	sf := hub[1]
	assert.Equal(t, "Salesforce", sf.Name)
	assert.Equal(t, 2, sf.Count)
	assertDec(t, "50000000", sf.Spend)
	require.NotNil(t, sf.Profile)
	assert.Equal(t, entity.TierStrategic, sf.Profile.Tier)
}
