package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/application/ports"
	"github.com/jhoicas/subguard-api/internal/domain"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/finance"
	"github.com/jhoicas/subguard-api/internal/domain/registry"
	"github.com/jhoicas/subguard-api/internal/domain/renewal"
	"github.com/jhoicas/subguard-api/internal/domain/repository"
)

// CSVHeader cabecera del export CSV del registro.
const CSVHeader = "Name,Vendor,Type,Amount,Currency,Billing Cycle,Status,Renewal Date,Department"

// ExportUseCase exportación del registro filtrado a CSV y a los formatos de los renderers.
type ExportUseCase struct {
	assets    repository.AssetRepository
	config    repository.ConfigRepository
	clock     ports.Clock
	renderers map[string]ports.ReportRenderer
}

// NewExportUseCase construye el caso de uso. Cada renderer queda disponible por su extensión.
func NewExportUseCase(assets repository.AssetRepository, config repository.ConfigRepository, clock ports.Clock, renderers ...ports.ReportRenderer) *ExportUseCase {
	byExt := make(map[string]ports.ReportRenderer, len(renderers))
	for _, r := range renderers {
		byExt[r.Extension()] = r
	}
	return &ExportUseCase{assets: assets, config: config, clock: clock, renderers: byExt}
}

// CSV exporta la lista filtrada. Nombre y proveedor van entre comillas con las
// comillas internas duplicadas; una renovación vacía se escribe Perpetual.
func (uc *ExportUseCase) CSV(ctx context.Context, q registry.Query) (*dto.ExportFile, error) {
	assets, err := uc.assets.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar activos: %w", err)
	}
	return &dto.ExportFile{
		Filename:    uc.filename("csv"),
		ContentType: "text/csv; charset=utf-8",
		Body:        []byte(BuildCSV(registry.Apply(assets, q))),
	}, nil
}

// BuildCSV arma el documento CSV, una línea por activo, separadas por \n.
func BuildCSV(assets []entity.Asset) string {
	var b strings.Builder
	b.WriteString(CSVHeader)
	for _, a := range assets {
		renewalDate := a.NextRenewal
		if renewalDate == "" {
			renewalDate = "Perpetual"
		}
		b.WriteByte('\n')
		b.WriteString(strings.Join([]string{
			quote(a.Name),
			quote(a.Vendor),
			string(a.Type),
			a.Amount.String(),
			a.Currency,
			string(a.BillingCycle),
			string(a.Status),
			renewalDate,
			a.Department,
		}, ","))
	}
	return b.String()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Report genera el documento del formato pedido (pdf, xml) con la lista filtrada.
func (uc *ExportUseCase) Report(ctx context.Context, format string, q registry.Query) (*dto.ExportFile, error) {
	r, ok := uc.renderers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("formato %q: %w", format, domain.ErrUnsupported)
	}
	all, err := uc.assets.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar activos: %w", err)
	}
	cfg, err := uc.config.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	now := uc.clock.Now()
	body, err := r.Render(ctx, dto.RegistryReport{
		CompanyName: cfg.CompanyName,
		Currency:    cfg.Currency,
		GeneratedAt: now,
		Stats:       finance.ComputeStats(all, now),
		Assets:      registry.Apply(all, q),
	})
	if err != nil {
		return nil, fmt.Errorf("generar %s: %w", r.Extension(), err)
	}
	return &dto.ExportFile{
		Filename:    uc.filename(r.Extension()),
		ContentType: r.ContentType(),
		Body:        body,
	}, nil
}

// Formats extensiones disponibles además de csv.
func (uc *ExportUseCase) Formats() []string {
	out := make([]string, 0, len(uc.renderers))
	for ext := range uc.renderers {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

func (uc *ExportUseCase) filename(ext string) string {
	return fmt.Sprintf("SubGuard_Export_%s.%s", uc.clock.Now().Format(renewal.DateLayout), ext)
}
