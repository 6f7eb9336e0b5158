package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// USDRate tasa fija IDR por USD usada al mostrar importes en dólares.
// Los agregados del dashboard se calculan en IDR.
var USDRate = decimal.NewFromInt(15500)

var (
	idPrinter = message.NewPrinter(language.Indonesian)
	enPrinter = message.NewPrinter(language.AmericanEnglish)
)

// Format muestra un importe en IDR en la moneda de visualización, sin decimales.
// IDR: "Rp 15.400.000". USD: el importe se divide por USDRate, "$1,000".
func Format(amount decimal.Decimal, currency string) string {
	if currency == "USD" {
		amount = amount.Div(USDRate)
	}
	return FormatNative(amount, currency)
}

// FormatNative muestra un importe ya expresado en currency, sin conversión.
func FormatNative(amount decimal.Decimal, currency string) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	n := amount.Round(0).IntPart()
	if currency == "USD" {
		return sign + "$" + enPrinter.Sprintf("%d", n)
	}
	return sign + "Rp " + idPrinter.Sprintf("%d", n)
}
