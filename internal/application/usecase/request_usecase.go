package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/subguard-api/internal/application/audit"
	"github.com/jhoicas/subguard-api/internal/application/ports"
	"github.com/jhoicas/subguard-api/internal/domain"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/renewal"
	"github.com/jhoicas/subguard-api/internal/domain/repository"
	"github.com/jhoicas/subguard-api/pkg/logger"
	"github.com/jhoicas/subguard-api/pkg/money"
)

// RequestUseCase cola de aprobación de solicitudes.
//
//	Pending ──Approved──▶ Approved (terminal)
//	Pending ──Rejected──▶ Rejected (terminal)
type RequestUseCase struct {
	repo   repository.RequestRepository
	assets *AssetUseCase
	audit  *audit.Writer
	clock  ports.Clock
	log    *logger.Logger
	mu     sync.Mutex
}

// NewRequestUseCase construye el caso de uso. assets registra el activo al aprobar un alta.
func NewRequestUseCase(repo repository.RequestRepository, assets *AssetUseCase, auditWriter *audit.Writer, clock ports.Clock, log *logger.Logger) *RequestUseCase {
	return &RequestUseCase{repo: repo, assets: assets, audit: auditWriter, clock: clock, log: log}
}

// List devuelve las solicitudes; status vacío o All no filtra.
func (uc *RequestUseCase) List(ctx context.Context, status string) ([]entity.Request, error) {
	reqs, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar solicitudes: %w", err)
	}
	if status == "" || status == "All" {
		return reqs, nil
	}
	out := make([]entity.Request, 0, len(reqs))
	for _, r := range reqs {
		if string(r.Status) == status {
			out = append(out, r)
		}
	}
	return out, nil
}

// PendingCount número de solicitudes pendientes.
func (uc *RequestUseCase) PendingCount(ctx context.Context) (int, error) {
	pending, err := uc.List(ctx, string(entity.RequestPending))
	if err != nil {
		return 0, err
	}
	return len(pending), nil
}

// Decide resuelve una solicitud pendiente. Repetir la misma decisión no tiene efecto;
// la decisión contraria sobre una solicitud resuelta devuelve ErrConflict.
// El activo creado al aprobar un alta se devuelve junto a la solicitud.
func (uc *RequestUseCase) Decide(ctx context.Context, actor, id string, outcome entity.RequestStatus) (*entity.Request, *entity.Asset, error) {
	if !outcome.Terminal() {
		return nil, nil, fmt.Errorf("decisión %q: %w", outcome, domain.ErrInvalidInput)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	reqs, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("cargar solicitudes: %w", err)
	}
	i := -1
	for j := range reqs {
		if reqs[j].ID == id {
			i = j
			break
		}
	}
	if i < 0 {
		return nil, nil, domain.ErrNotFound
	}
	req := reqs[i]
	if req.Status == outcome {
		return &req, nil, nil
	}
	if req.Status.Terminal() {
		return nil, nil, fmt.Errorf("solicitud %s ya está %s: %w", id, req.Status, domain.ErrConflict)
	}

	// El alta se registra antes de resolver la solicitud: si falla, la solicitud
	// sigue Pending y puede reintentarse.
	var registered *entity.Asset
	if outcome == entity.RequestApproved && req.Type == entity.RequestNewAsset {
		asset, err := uc.registerApproved(ctx, actor, req)
		if err != nil {
			return nil, nil, err
		}
		registered = asset
	}

	reqs[i].Status = outcome
	if err := uc.repo.Save(ctx, reqs); err != nil {
		return nil, nil, fmt.Errorf("guardar solicitudes: %w", err)
	}
	req = reqs[i]
	uc.log.Info().Str("request_id", id).Str("outcome", string(outcome)).Str("actor", actor).Msg("solicitud resuelta")

	if _, err := uc.audit.Record(ctx, audit.Entry{
		Action:  audit.ActionRequestPrefix + string(outcome),
		Actor:   actor,
		Target:  req.Item,
		Details: fmt.Sprintf("%s request for %s (%s)", outcome, req.Item, money.Format(req.Cost, entity.CurrencyIDR)),
	}); err != nil {
		return nil, nil, err
	}
	return &req, registered, nil
}

// registerApproved registra el activo de un alta aprobada. El ID deriva de la
// solicitud, así un reintento tras un fallo posterior reutiliza el activo ya creado.
func (uc *RequestUseCase) registerApproved(ctx context.Context, actor string, req entity.Request) (*entity.Asset, error) {
	asset := assetFromApprovedRequest(req, uc.clock)
	err := uc.assets.Register(ctx, actor, asset)
	if errors.Is(err, domain.ErrDuplicate) {
		return uc.assets.Get(ctx, asset.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("registrar activo aprobado: %w", err)
	}
	return &asset, nil
}

func approvedAssetID(requestID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("subguard/request/"+requestID)).String()
}

func assetFromApprovedRequest(req entity.Request, clock ports.Clock) entity.Asset {
	return entity.Asset{
		ID:           approvedAssetID(req.ID),
		Name:         req.Item,
		Type:         entity.AssetTypeSaaS,
		Category:     "Productivity",
		Owner:        req.Requester,
		Department:   req.Department,
		Amount:       req.Cost,
		Currency:     entity.CurrencyIDR,
		Status:       entity.StatusApproved,
		BillingCycle: entity.CycleOneTime,
		PurchaseDate: clock.Now().Format(renewal.DateLayout),
		Notes:        "Registered from approved request " + req.ID,
	}
}
