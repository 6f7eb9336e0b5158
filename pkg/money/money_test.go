package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/subguard-api/pkg/money"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		currency string
		want     string
	}{
		{"rupias con separador de miles", 15_400_000, "IDR", "Rp 15.400.000"},
		{"cero", 0, "IDR", "Rp 0"},
		{"dólares convertidos", 15_500_000, "USD", "$1,000"},
		{"dólares redondeados", 23_250, "USD", "$2"},
		{"negativo", -45_000_000, "IDR", "-Rp 45.000.000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Format(decimal.NewFromInt(tt.amount), tt.currency))
		})
	}
}

func TestFormatNative_SinConversion(t *testing.T) {
	assert.Equal(t, "$100", money.FormatNative(decimal.NewFromInt(100), "USD"))
	assert.Equal(t, "$1,250", money.FormatNative(decimal.NewFromInt(1250), "USD"))
	assert.Equal(t, "Rp 100", money.FormatNative(decimal.NewFromInt(100), "IDR"))
	assert.Equal(t, "-$5", money.FormatNative(decimal.NewFromInt(-5), "USD"))
}
