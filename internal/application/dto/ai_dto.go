package dto

// ChatRequest pregunta para el asistente financiero.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatResponse respuesta del asistente.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// AssetProfileRequest datos mínimos para generar la ficha de un activo.
type AssetProfileRequest struct {
	Name   string `json:"name" validate:"required"`
	Vendor string `json:"vendor"`
}

// AssetProfileDTO ficha generada: descripción, factores de riesgo y puntaje inicial.
type AssetProfileDTO struct {
	Notes       string   `json:"notes"`
	RiskFactors []string `json:"risk_factors"`
	RiskScore   int      `json:"risk_score"`
}
