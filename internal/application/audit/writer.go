// Package audit escribe el historial de eventos del registro. Las entradas solo se
// anteponen: nunca se modifican ni se eliminan.
package audit

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/subguard-api/internal/application/ports"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/repository"
	"github.com/jhoicas/subguard-api/pkg/ids"
)

// Acciones registradas por los casos de uso.
const (
	ActionRegistryUpdate   = "Registry Update"
	ActionAssetRegistered  = "Asset Registered"
	ActionAssetUpdated     = "Asset Updated"
	ActionAssetRemoved     = "Asset Decommissioned"
	ActionBulkStatus       = "Bulk Status Change"
	ActionBulkRemove       = "Bulk Decommission"
	ActionQuickRenewal     = "Quick Renewal"
	ActionSettingsUpdated  = "Settings Updated"
	ActionVendorUpdated    = "Vendor Profile Updated"
	ActionProfileUpdated   = "Profile Updated"
	ActionRequestPrefix    = "Request "
	ActionTeamMemberAdded  = "Team Member Added"
	ActionTeamMemberRemove = "Team Member Removed"
	ActionRoleUpdated      = "Role Updated"
)

// Entry datos de una entrada nueva. ID y Timestamp los asigna el Writer.
type Entry struct {
	Action  string
	Actor   string
	Target  string
	Details string
}

// Writer antepone entradas al historial persistido.
type Writer struct {
	repo  repository.AuditLogRepository
	clock ports.Clock
	mu    sync.Mutex
}

// NewWriter construye el escritor del historial.
func NewWriter(repo repository.AuditLogRepository, clock ports.Clock) *Writer {
	return &Writer{repo: repo, clock: clock}
}

// Record asigna id ULID y marca de tiempo UTC, antepone la entrada y guarda.
// Un actor vacío se registra como System.
func (w *Writer) Record(ctx context.Context, e Entry) (entity.AuditLog, error) {
	now := w.clock.Now()
	actor := strings.TrimSpace(e.Actor)
	if actor == "" {
		actor = entity.SystemActor
	}
	log := entity.AuditLog{
		ID:        ids.At(now),
		Action:    e.Action,
		Actor:     actor,
		Target:    e.Target,
		Timestamp: now.UTC().Format(time.RFC3339),
		Details:   e.Details,
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	logs, err := w.repo.Load(ctx)
	if err != nil {
		return entity.AuditLog{}, fmt.Errorf("cargar historial: %w", err)
	}
	next := make([]entity.AuditLog, 0, len(logs)+1)
	next = append(next, log)
	next = append(next, logs...)
	if err := w.repo.Save(ctx, next); err != nil {
		return entity.AuditLog{}, fmt.Errorf("guardar historial: %w", err)
	}
	return log, nil
}

// List devuelve una página del historial, más reciente primero, y el total.
// offset negativo se trata como 0; limit <= 0 no limita.
func (w *Writer) List(ctx context.Context, limit, offset int) ([]entity.AuditLog, int, error) {
	if offset < 0 {
		offset = 0
	}
	logs, err := w.repo.Load(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("cargar historial: %w", err)
	}
	total := len(logs)
	if offset >= total {
		return []entity.AuditLog{}, total, nil
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return logs[offset:end], total, nil
}
