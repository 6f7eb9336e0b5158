// Package pdf genera el reporte imprimible del registro de activos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + título    │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INDICADORES: valor total / gasto mensual / renovaciones    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Proveedor | Tipo | Estado | Monto | Renov.  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: cantidad de activos                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/application/ports"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/pkg/money"
)

var _ ports.ReportRenderer = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 41, Blue: 59}
	colorAccent  = &props.Color{Red: 79, Green: 70, Blue: 229}
	colorGray    = &props.Color{Red: 100, Green: 116, Blue: 139}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.ReportRenderer usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

func (g *MarotoPDFGenerator) ContentType() string { return "application/pdf" }

func (g *MarotoPDFGenerator) Extension() string { return "pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) Render(_ context.Context, report dto.RegistryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("SubGuard Asset Registry", true).
		WithAuthor(nonEmpty(report.CompanyName, "SubGuard"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(statsRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(report.Assets, report.Currency)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(report.Assets)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report dto.RegistryReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(report.CompanyName, "SubGuard"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Asset & Subscription Registry", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("GENERATED", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorAccent, Top: 1,
			}),
			text.New(report.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
			text.New("Currency: "+nonEmpty(report.Currency, entity.CurrencyIDR), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func statsRow(report dto.RegistryReport) core.Row {
	s := report.Stats
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6, Align: align.Center}),
		)
	}
	return row.New(14).Add(
		cell("TOTAL VALUE", money.Format(s.TotalValue, report.Currency)),
		cell("MONTHLY BURN", money.Format(s.MonthlyBurn, report.Currency)),
		cell("UPCOMING RENEWALS", strconv.Itoa(s.UpcomingRenewals)),
		cell("HIGH RISK", strconv.Itoa(s.HighRiskCount)),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Name", 3, align.Left),
		h("Vendor", 2, align.Left),
		h("Type", 2, align.Left),
		h("Status", 1, align.Center),
		h("Amount", 2, align.Right),
		h("Renewal", 2, align.Center),
	)
}

// tableDetailRows: una fila por activo.
func tableDetailRows(assets []entity.Asset, currency string) []core.Row {
	result := make([]core.Row, 0, len(assets))
	for _, a := range assets {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(a.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(a.Vendor, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(string(a.Type), props.Text{Size: 7, Top: 1, Left: 1, Color: colorGray})),
			col.New(1).Add(text.New(string(a.Status), props.Text{Size: 7, Top: 1, Align: align.Center})),
			col.New(2).Add(text.New(money.Format(a.Amount, currency), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
			col.New(2).Add(text.New(nonEmpty(a.NextRenewal, "Perpetual"), props.Text{Size: 8, Top: 1, Align: align.Center})),
		))
	}
	return result
}

func footerRow(count int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d assets listed. Amounts shown in the dashboard display currency.", count), props.Text{
			Size: 7, Color: colorGray, Top: 2,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
