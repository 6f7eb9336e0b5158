package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/subguard-api/internal/application/audit"
	"github.com/jhoicas/subguard-api/internal/application/dto"
	"github.com/jhoicas/subguard-api/internal/application/ports"
	"github.com/jhoicas/subguard-api/internal/domain"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/repository"
)

// DefaultMemberRole rol asignado cuando el alta no indica uno.
const DefaultMemberRole = "viewer"

// TeamUseCase miembros del equipo y roles.
type TeamUseCase struct {
	members repository.TeamRepository
	roles   repository.RoleRepository
	config  repository.ConfigRepository
	audit   *audit.Writer
	clock   ports.Clock
	mu      sync.Mutex
}

// NewTeamUseCase construye el caso de uso.
func NewTeamUseCase(
	members repository.TeamRepository,
	roles repository.RoleRepository,
	config repository.ConfigRepository,
	auditWriter *audit.Writer,
	clock ports.Clock,
) *TeamUseCase {
	return &TeamUseCase{members: members, roles: roles, config: config, audit: auditWriter, clock: clock}
}

// ── Miembros ─────────────────────────────────────────────────────────────────

// Members lista el equipo.
func (uc *TeamUseCase) Members(ctx context.Context) ([]entity.TeamMember, error) {
	members, err := uc.members.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar equipo: %w", err)
	}
	return members, nil
}

// AddMember da de alta un miembro. Sin rol usa viewer; sin departamento, el primero configurado.
func (uc *TeamUseCase) AddMember(ctx context.Context, actor string, in dto.CreateMemberRequest) (*entity.TeamMember, error) {
	name, email := strings.TrimSpace(in.Name), strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return nil, fmt.Errorf("name y email son obligatorios: %w", domain.ErrInvalidInput)
	}
	roleID := in.RoleID
	if roleID == "" {
		roleID = DefaultMemberRole
	}
	department := in.Department
	if department == "" {
		cfg, err := uc.config.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("cargar configuración: %w", err)
		}
		if len(cfg.Departments) > 0 {
			department = cfg.Departments[0]
		}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	roles, err := uc.roles.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar roles: %w", err)
	}
	if roleIndex(roles, roleID) < 0 {
		return nil, fmt.Errorf("rol %q no existe: %w", roleID, domain.ErrInvalidInput)
	}
	members, err := uc.members.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar equipo: %w", err)
	}
	for _, m := range members {
		if strings.EqualFold(m.Email, email) {
			return nil, domain.ErrDuplicate
		}
	}
	member := entity.TeamMember{
		ID:         uuid.New().String(),
		Name:       name,
		Email:      email,
		RoleID:     roleID,
		Department: department,
		Status:     entity.MemberActive,
		LastActive: uc.clock.Now().UTC().Format("2006-01-02T15:04:05"),
	}
	if err := uc.members.Save(ctx, append(members, member)); err != nil {
		return nil, fmt.Errorf("guardar equipo: %w", err)
	}
	if _, err := uc.audit.Record(ctx, audit.Entry{
		Action:  audit.ActionTeamMemberAdded,
		Actor:   actor,
		Target:  name,
		Details: fmt.Sprintf("Invited as %s (%s).", roleID, department),
	}); err != nil {
		return nil, err
	}
	return &member, nil
}

// RemoveMember elimina un miembro por ID.
func (uc *TeamUseCase) RemoveMember(ctx context.Context, actor, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	members, err := uc.members.Load(ctx)
	if err != nil {
		return fmt.Errorf("cargar equipo: %w", err)
	}
	for i, m := range members {
		if m.ID != id {
			continue
		}
		kept := append(members[:i:i], members[i+1:]...)
		if err := uc.members.Save(ctx, kept); err != nil {
			return fmt.Errorf("guardar equipo: %w", err)
		}
		_, err := uc.audit.Record(ctx, audit.Entry{
			Action:  audit.ActionTeamMemberRemove,
			Actor:   actor,
			Target:  m.Name,
			Details: m.Email + " removed from the team.",
		})
		return err
	}
	return domain.ErrNotFound
}

// ── Roles ────────────────────────────────────────────────────────────────────

// Roles lista los roles.
func (uc *TeamUseCase) Roles(ctx context.Context) ([]entity.Role, error) {
	roles, err := uc.roles.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar roles: %w", err)
	}
	return roles, nil
}

// CreateRole crea un rol; su ID es el nombre en minúsculas con "_" en lugar de espacios.
func (uc *TeamUseCase) CreateRole(ctx context.Context, actor string, in dto.CreateRoleRequest) (*entity.Role, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("name es obligatorio: %w", domain.ErrInvalidInput)
	}
	if err := checkPermissions(in.Permissions); err != nil {
		return nil, err
	}
	role := entity.Role{
		ID:          RoleID(name),
		Name:        name,
		Description: in.Description,
		Permissions: append([]string{}, in.Permissions...),
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	roles, err := uc.roles.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar roles: %w", err)
	}
	if roleIndex(roles, role.ID) >= 0 {
		return nil, domain.ErrDuplicate
	}
	if err := uc.roles.Save(ctx, append(roles, role)); err != nil {
		return nil, fmt.Errorf("guardar roles: %w", err)
	}
	if _, err := uc.audit.Record(ctx, audit.Entry{
		Action:  audit.ActionRoleUpdated,
		Actor:   actor,
		Target:  name,
		Details: fmt.Sprintf("Role created with %d permissions.", len(role.Permissions)),
	}); err != nil {
		return nil, err
	}
	return &role, nil
}

// SetPermissions reemplaza los permisos de un rol.
func (uc *TeamUseCase) SetPermissions(ctx context.Context, actor, roleID string, perms []string) (*entity.Role, error) {
	if err := checkPermissions(perms); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	roles, err := uc.roles.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar roles: %w", err)
	}
	i := roleIndex(roles, roleID)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	roles[i].Permissions = append([]string{}, perms...)
	if err := uc.roles.Save(ctx, roles); err != nil {
		return nil, fmt.Errorf("guardar roles: %w", err)
	}
	role := roles[i]
	if _, err := uc.audit.Record(ctx, audit.Entry{
		Action:  audit.ActionRoleUpdated,
		Actor:   actor,
		Target:  role.Name,
		Details: "Permissions: " + strings.Join(role.Permissions, ", "),
	}); err != nil {
		return nil, err
	}
	return &role, nil
}

// RoleID deriva el identificador de un rol a partir de su nombre.
func RoleID(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

func checkPermissions(perms []string) error {
	for _, p := range perms {
		if !entity.KnownPermission(p) {
			return fmt.Errorf("permiso %q desconocido: %w", p, domain.ErrInvalidInput)
		}
	}
	return nil
}

func roleIndex(roles []entity.Role, id string) int {
	for i, r := range roles {
		if r.ID == id {
			return i
		}
	}
	return -1
}
