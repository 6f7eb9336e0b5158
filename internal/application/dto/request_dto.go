package dto

import "github.com/jhoicas/subguard-api/internal/domain/entity"

// DecideRequest cuerpo de POST /api/requests/:id/decision.
type DecideRequest struct {
	Outcome entity.RequestStatus `json:"outcome" validate:"required,oneof=Approved Rejected"`
}

// DecideResponse solicitud resuelta y, si se aprobó un alta, el activo creado.
type DecideResponse struct {
	Request entity.Request `json:"request"`
	Asset   *entity.Asset  `json:"asset,omitempty"`
}
