package entity

// Actor por defecto cuando la acción no tiene un usuario identificado.
const SystemActor = "System"

// AuditLog entrada inmutable del historial de eventos. Timestamp en RFC 3339 UTC.
type AuditLog struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	Actor     string `json:"actor"`
	Target    string `json:"target"`
	Timestamp string `json:"timestamp"`
	Details   string `json:"details"`
}
