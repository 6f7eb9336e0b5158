package entity

// Permission permiso asignable a un rol.
type Permission struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"` // Assets, Finance, Team, Settings
}

// Identificadores de permisos.
const (
	PermViewAssets      = "view_assets"
	PermEditAssets      = "edit_assets"
	PermDeleteAssets    = "delete_assets"
	PermViewFinance     = "view_finance"
	PermApproveRequests = "approve_requests"
	PermManageTeam      = "manage_team"
	PermManageRoles     = "manage_roles"
	PermManageSettings  = "manage_settings"
)

// Permissions catálogo fijo de permisos.
var Permissions = []Permission{
	{ID: PermViewAssets, Label: "View Asset Registry", Category: "Assets"},
	{ID: PermEditAssets, Label: "Create & Edit Assets", Category: "Assets"},
	{ID: PermDeleteAssets, Label: "Delete/Archive Assets", Category: "Assets"},
	{ID: PermViewFinance, Label: "View Financial Data", Category: "Finance"},
	{ID: PermApproveRequests, Label: "Approve Budget Requests", Category: "Finance"},
	{ID: PermManageTeam, Label: "Manage Team Members", Category: "Team"},
	{ID: PermManageRoles, Label: "Configure Roles", Category: "Team"},
	{ID: PermManageSettings, Label: "System Settings", Category: "Settings"},
}

// KnownPermission indica si el id existe en el catálogo.
func KnownPermission(id string) bool {
	for _, p := range Permissions {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Role agrupa permisos bajo un nombre.
type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

// Has indica si el rol concede el permiso.
func (r Role) Has(perm string) bool {
	for _, p := range r.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}
