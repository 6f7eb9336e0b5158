package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/subguard-api/internal/application/audit"
	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/domain"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/finance"
	"github.com/jhoicas/subguard-api/internal/domain/repository"
)

// VendorUseCase hub de proveedores y sus fichas.
type VendorUseCase struct {
	profiles repository.VendorRepository
	assets   repository.AssetRepository
	audit    *audit.Writer
	mu       sync.Mutex
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(profiles repository.VendorRepository, assets repository.AssetRepository, auditWriter *audit.Writer) *VendorUseCase {
	return &VendorUseCase{profiles: profiles, assets: assets, audit: auditWriter}
}

// Hub agrupa el registro por proveedor con su ficha, de mayor a menor gasto.
func (uc *VendorUseCase) Hub(ctx context.Context) ([]finance.VendorSummary, error) {
	assets, err := uc.assets.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar activos: %w", err)
	}
	profiles, err := uc.profiles.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar proveedores: %w", err)
	}
	return finance.VendorHub(assets, profiles), nil
}

// SaveProfile crea o actualiza la ficha cuyo nombre coincide (sin distinguir mayúsculas).
func (uc *VendorUseCase) SaveProfile(ctx context.Context, actor string, in dto.VendorProfileRequest) (*entity.VendorProfile, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("name es obligatorio: %w", domain.ErrInvalidInput)
	}
	tier := in.Tier
	if tier == "" {
		tier = entity.TierTransactional
	}
	if !tier.Valid() {
		return nil, fmt.Errorf("tier %q: %w", in.Tier, domain.ErrInvalidInput)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	profiles, err := uc.profiles.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar proveedores: %w", err)
	}
	profile := entity.VendorProfile{
		Name:         name,
		Tier:         tier,
		ContactName:  in.ContactName,
		ContactEmail: in.ContactEmail,
		Notes:        in.Notes,
	}
	found := false
	for i := range profiles {
		if strings.EqualFold(profiles[i].Name, name) {
			profile.ID = profiles[i].ID
			profiles[i] = profile
			found = true
			break
		}
	}
	if !found {
		profile.ID = uuid.New().String()
		profiles = append(profiles, profile)
	}
	if err := uc.profiles.Save(ctx, profiles); err != nil {
		return nil, fmt.Errorf("guardar proveedores: %w", err)
	}
	if _, err := uc.audit.Record(ctx, audit.Entry{
		Action:  audit.ActionVendorUpdated,
		Actor:   actor,
		Target:  name,
		Details: fmt.Sprintf("Tier set to %s.", tier),
	}); err != nil {
		return nil, err
	}
	return &profile, nil
}
