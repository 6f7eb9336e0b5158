package entity

import "github.com/shopspring/decimal"

// RequestType tipo de solicitud de compra.
type RequestType string

const (
	RequestNewAsset RequestType = "New Asset"
	RequestRenewal  RequestType = "Renewal"
	RequestAccess   RequestType = "Access"
)

// RequestStatus estado de la solicitud. Approved y Rejected son terminales.
type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestApproved RequestStatus = "Approved"
	RequestRejected RequestStatus = "Rejected"
)

// Terminal indica si la solicitud ya fue resuelta.
func (s RequestStatus) Terminal() bool {
	return s == RequestApproved || s == RequestRejected
}

// Request solicitud de compra/renovación/acceso pendiente de aprobación.
type Request struct {
	ID         string          `json:"id"`
	Type       RequestType     `json:"type"`
	Item       string          `json:"item"`
	Requester  string          `json:"requester"`
	Department string          `json:"department"`
	Status     RequestStatus   `json:"status"`
	Cost       decimal.Decimal `json:"cost"`
	Date       string          `json:"date"`
}
