package entity

// Identidad de la sesión de invitado.
const (
	GuestUserID = "guest"
	GuestName   = "Guest Explorer"
	GuestEmail  = "guest@subguard.io"
)

// User usuario de la sesión actual. BusinessName se usa como actor en el historial.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	BusinessName string `json:"business_name"`
}

// Credential registro de acceso del modo de autenticación simulado.
type Credential struct {
	User
	PasswordHash string `json:"password_hash"` // bcrypt, nunca el password plano
}

// Estados de un miembro del equipo.
const (
	MemberActive   = "Active"
	MemberInactive = "Inactive"
)

// TeamMember miembro del equipo con un rol asignado.
type TeamMember struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	RoleID     string `json:"role_id"`
	Department string `json:"department"`
	Status     string `json:"status"`
	LastActive string `json:"last_active"`
}
