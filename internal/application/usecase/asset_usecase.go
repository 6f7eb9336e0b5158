package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/subguard-api/internal/application/audit"
	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/domain"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/registry"
	"github.com/jhoicas/subguard-api/internal/domain/renewal"
	"github.com/jhoicas/subguard-api/internal/domain/repository"
	"github.com/jhoicas/subguard-api/pkg/money"
)

// AssetUseCase casos de uso del registro de activos. Cada operación de escritura
// carga la colección, la modifica y la guarda bajo el mismo mutex.
type AssetUseCase struct {
	repo  repository.AssetRepository
	audit *audit.Writer
	mu    sync.Mutex
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(repo repository.AssetRepository, auditWriter *audit.Writer) *AssetUseCase {
	return &AssetUseCase{repo: repo, audit: auditWriter}
}

// List devuelve los activos filtrados y ordenados según la vista.
func (uc *AssetUseCase) List(ctx context.Context, q registry.Query) ([]entity.Asset, error) {
	assets, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar activos: %w", err)
	}
	return registry.Apply(assets, q), nil
}

// All devuelve el registro completo sin filtrar.
func (uc *AssetUseCase) All(ctx context.Context) ([]entity.Asset, error) {
	assets, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar activos: %w", err)
	}
	return assets, nil
}

// Get obtiene un activo por ID.
func (uc *AssetUseCase) Get(ctx context.Context, id string) (*entity.Asset, error) {
	assets, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar activos: %w", err)
	}
	i := indexOf(assets, id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	a := assets[i]
	return &a, nil
}

// Create valida y registra un activo nuevo con un ID generado.
func (uc *AssetUseCase) Create(ctx context.Context, actor string, in dto.AssetRequest) (*entity.Asset, error) {
	asset, err := assetFromRequest(in)
	if err != nil {
		return nil, err
	}
	asset.ID = uuid.New().String()
	if err := uc.Register(ctx, actor, asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

// Register agrega un activo ya construido (alta directa o aprobación de solicitud).
func (uc *AssetUseCase) Register(ctx context.Context, actor string, asset entity.Asset) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	assets, err := uc.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("cargar activos: %w", err)
	}
	if indexOf(assets, asset.ID) >= 0 {
		return domain.ErrDuplicate
	}
	assets = append(assets, asset)
	if err := uc.repo.Save(ctx, assets); err != nil {
		return fmt.Errorf("guardar activos: %w", err)
	}
	_, err = uc.audit.Record(ctx, audit.Entry{
		Action:  audit.ActionAssetRegistered,
		Actor:   actor,
		Target:  asset.Name,
		Details: fmt.Sprintf("%s registered for %s (%s)", asset.Type, asset.Department, money.FormatNative(asset.Amount, asset.Currency)),
	})
	return err
}

// Update reemplaza el registro completo. El ID no cambia.
func (uc *AssetUseCase) Update(ctx context.Context, actor, id string, in dto.AssetRequest) (*entity.Asset, error) {
	asset, err := assetFromRequest(in)
	if err != nil {
		return nil, err
	}
	asset.ID = id

	uc.mu.Lock()
	defer uc.mu.Unlock()

	assets, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar activos: %w", err)
	}
	i := indexOf(assets, id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	// El historial de gasto no se edita desde el formulario.
	asset.History = assets[i].History
	assets[i] = asset
	if err := uc.repo.Save(ctx, assets); err != nil {
		return nil, fmt.Errorf("guardar activos: %w", err)
	}
	if _, err := uc.audit.Record(ctx, audit.Entry{
		Action:  audit.ActionAssetUpdated,
		Actor:   actor,
		Target:  asset.Name,
		Details: fmt.Sprintf("Status %s, %s %s", asset.Status, money.FormatNative(asset.Amount, asset.Currency), asset.BillingCycle),
	}); err != nil {
		return nil, err
	}
	return &asset, nil
}

// Delete da de baja un activo: se elimina del registro; el historial lo conserva.
func (uc *AssetUseCase) Delete(ctx context.Context, actor, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	assets, err := uc.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("cargar activos: %w", err)
	}
	i := indexOf(assets, id)
	if i < 0 {
		return domain.ErrNotFound
	}
	removed := assets[i]
	assets = append(assets[:i:i], assets[i+1:]...)
	if err := uc.repo.Save(ctx, assets); err != nil {
		return fmt.Errorf("guardar activos: %w", err)
	}
	_, err = uc.audit.Record(ctx, audit.Entry{
		Action:  audit.ActionAssetRemoved,
		Actor:   actor,
		Target:  removed.Name,
		Details: fmt.Sprintf("%s removed from the registry.", removed.Name),
	})
	return err
}

// BulkDelete elimina los IDs existentes; los desconocidos se ignoran.
// Si ninguno existe devuelve ErrNotFound.
func (uc *AssetUseCase) BulkDelete(ctx context.Context, actor string, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("ids vacíos: %w", domain.ErrInvalidInput)
	}
	selected := toSet(ids)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	assets, err := uc.repo.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("cargar activos: %w", err)
	}
	kept := make([]entity.Asset, 0, len(assets))
	for _, a := range assets {
		if _, ok := selected[a.ID]; !ok {
			kept = append(kept, a)
		}
	}
	affected := len(assets) - len(kept)
	if affected == 0 {
		return 0, domain.ErrNotFound
	}
	if err := uc.repo.Save(ctx, kept); err != nil {
		return 0, fmt.Errorf("guardar activos: %w", err)
	}
	_, err = uc.audit.Record(ctx, audit.Entry{
		Action:  audit.ActionBulkRemove,
		Actor:   actor,
		Target:  "Asset Registry",
		Details: fmt.Sprintf("%d assets removed.", affected),
	})
	return affected, err
}

// BulkStatus asigna el mismo estado a varios activos.
func (uc *AssetUseCase) BulkStatus(ctx context.Context, actor string, ids []string, status entity.AssetStatus) (int, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("ids vacíos: %w", domain.ErrInvalidInput)
	}
	if !status.Valid() {
		return 0, fmt.Errorf("estado %q: %w", status, domain.ErrInvalidInput)
	}
	selected := toSet(ids)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	assets, err := uc.repo.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("cargar activos: %w", err)
	}
	affected := 0
	for i := range assets {
		if _, ok := selected[assets[i].ID]; ok {
			assets[i].Status = status
			affected++
		}
	}
	if affected == 0 {
		return 0, domain.ErrNotFound
	}
	if err := uc.repo.Save(ctx, assets); err != nil {
		return 0, fmt.Errorf("guardar activos: %w", err)
	}
	_, err = uc.audit.Record(ctx, audit.Entry{
		Action:  audit.ActionBulkStatus,
		Actor:   actor,
		Target:  "Asset Registry",
		Details: fmt.Sprintf("%d assets set to %s.", affected, status),
	})
	return affected, err
}

// QuickRenew avanza la fecha de renovación un periodo del ciclo de facturación.
func (uc *AssetUseCase) QuickRenew(ctx context.Context, actor, id string) (*entity.Asset, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	assets, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar activos: %w", err)
	}
	i := indexOf(assets, id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	next, err := renewal.Next(assets[i].NextRenewal, assets[i].BillingCycle)
	if err != nil {
		return nil, err
	}
	assets[i].NextRenewal = next
	if err := uc.repo.Save(ctx, assets); err != nil {
		return nil, fmt.Errorf("guardar activos: %w", err)
	}
	renewed := assets[i]
	if _, err := uc.audit.Record(ctx, audit.Entry{
		Action:  audit.ActionQuickRenewal,
		Actor:   actor,
		Target:  renewed.Name,
		Details: "Renewed until " + next,
	}); err != nil {
		return nil, err
	}
	return &renewed, nil
}

// Replace sustituye el registro completo (restauración de semilla o importación).
// Cada activo debe traer un ID no vacío y único.
func (uc *AssetUseCase) Replace(ctx context.Context, actor string, assets []entity.Asset) error {
	seen := make(map[string]struct{}, len(assets))
	for i, a := range assets {
		if strings.TrimSpace(a.ID) == "" {
			return fmt.Errorf("activo #%d (%s) sin id: %w", i+1, a.Name, domain.ErrInvalidInput)
		}
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("id %s repetido: %w", a.ID, domain.ErrInvalidInput)
		}
		seen[a.ID] = struct{}{}
		if err := validateAsset(a); err != nil {
			return fmt.Errorf("activo %s: %w", a.ID, err)
		}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.repo.Save(ctx, assets); err != nil {
		return fmt.Errorf("guardar activos: %w", err)
	}
	_, err := uc.audit.Record(ctx, audit.Entry{
		Action:  audit.ActionRegistryUpdate,
		Actor:   actor,
		Target:  "Asset Registry",
		Details: "Asset list was modified manually.",
	})
	return err
}

// ── Validación ───────────────────────────────────────────────────────────────

func assetFromRequest(in dto.AssetRequest) (entity.Asset, error) {
	a := entity.Asset{
		Name:               strings.TrimSpace(in.Name),
		Type:               in.Type,
		Category:           in.Category,
		Vendor:             strings.TrimSpace(in.Vendor),
		Owner:              in.Owner,
		Department:         in.Department,
		LegalEntity:        in.LegalEntity,
		Amount:             in.Amount,
		Currency:           in.Currency,
		Status:             in.Status,
		BillingCycle:       in.BillingCycle,
		PurchaseDate:       in.PurchaseDate,
		NextRenewal:        strings.TrimSpace(in.NextRenewal),
		AutoRenew:          in.AutoRenew,
		Capex:              in.Capex,
		DepreciationMethod: in.DepreciationMethod,
		Seats:              in.Seats,
		Assignments:        in.Assignments,
		SerialNumber:       in.SerialNumber,
		Location:           in.Location,
		WarrantyExpiry:     in.WarrantyExpiry,
		Notes:              in.Notes,
		RemindersEnabled:   in.RemindersEnabled,
		ReminderDaysBefore: in.ReminderDaysBefore,
		Documents:          in.Documents,
		Utilization:        in.Utilization,
		RiskScore:          in.RiskScore,
		RiskFactors:        in.RiskFactors,
	}
	if a.Currency == "" {
		a.Currency = entity.CurrencyIDR
	}
	if a.Status == "" {
		a.Status = entity.StatusActive
	}
	if a.BillingCycle == "" {
		a.BillingCycle = entity.CycleMonthly
	}
	if a.BillingCycle == entity.CycleOneTime {
		a.NextRenewal = ""
	}
	for i := range a.Assignments {
		if a.Assignments[i].ID == "" {
			a.Assignments[i].ID = uuid.New().String()
		}
	}
	if err := validateAsset(a); err != nil {
		return entity.Asset{}, err
	}
	return a, nil
}

func validateAsset(a entity.Asset) error {
	switch {
	case strings.TrimSpace(a.Name) == "":
		return fmt.Errorf("name es obligatorio: %w", domain.ErrInvalidInput)
	case a.Amount.IsNegative():
		return fmt.Errorf("amount no puede ser negativo: %w", domain.ErrInvalidInput)
	case !a.Type.Valid():
		return fmt.Errorf("type %q: %w", a.Type, domain.ErrInvalidInput)
	case !a.Status.Valid():
		return fmt.Errorf("status %q: %w", a.Status, domain.ErrInvalidInput)
	case !a.BillingCycle.Valid():
		return fmt.Errorf("billing_cycle %q: %w", a.BillingCycle, domain.ErrInvalidInput)
	case !entity.ValidCurrency(a.Currency):
		return fmt.Errorf("currency %q: %w", a.Currency, domain.ErrInvalidInput)
	case a.Utilization < 0 || a.Utilization > 100:
		return fmt.Errorf("utilization fuera de 0-100: %w", domain.ErrInvalidInput)
	case a.RiskScore < 0 || a.RiskScore > 100:
		return fmt.Errorf("risk_score fuera de 0-100: %w", domain.ErrInvalidInput)
	case a.Seats < 0 || a.ReminderDaysBefore < 0:
		return fmt.Errorf("seats y reminder_days_before no pueden ser negativos: %w", domain.ErrInvalidInput)
	}
	switch a.DepreciationMethod {
	case "", entity.DepreciationStraightLine, entity.DepreciationDoubleDeclining, entity.DepreciationNone:
	default:
		return fmt.Errorf("depreciation_method %q: %w", a.DepreciationMethod, domain.ErrInvalidInput)
	}
	for field, v := range map[string]string{
		"next_renewal":    a.NextRenewal,
		"purchase_date":   a.PurchaseDate,
		"warranty_expiry": a.WarrantyExpiry,
	} {
		if v == "" {
			continue
		}
		if _, err := renewal.ParseDate(v, time.UTC); err != nil {
			return fmt.Errorf("%s %q no es YYYY-MM-DD: %w", field, v, domain.ErrInvalidInput)
		}
	}
	return nil
}

func indexOf(assets []entity.Asset, id string) int {
	for i, a := range assets {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
