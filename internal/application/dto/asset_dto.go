package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/subguard-api/internal/domain/entity"
)

// AssetRequest cuerpo de alta y edición de un activo. La edición reemplaza el registro completo.
type AssetRequest struct {
	Name               string              `json:"name" validate:"required"`
	Type               entity.AssetType    `json:"type"`
	Category           string              `json:"category"`
	Vendor             string              `json:"vendor"`
	Owner              string              `json:"owner"`
	Department         string              `json:"department"`
	LegalEntity        string              `json:"legal_entity"`
	Amount             decimal.Decimal     `json:"amount"`
	Currency           string              `json:"currency"`
	Status             entity.AssetStatus  `json:"status"`
	BillingCycle       entity.BillingCycle `json:"billing_cycle"`
	PurchaseDate       string              `json:"purchase_date"`
	NextRenewal        string              `json:"next_renewal"`
	AutoRenew          bool                `json:"auto_renew"`
	Capex              bool                `json:"capex"`
	DepreciationMethod string              `json:"depreciation_method"`
	Seats              int                 `json:"seats"`
	Assignments        []entity.Assignment `json:"assignments"`
	SerialNumber       string              `json:"serial_number"`
	Location           string              `json:"location"`
	WarrantyExpiry     string              `json:"warranty_expiry"`
	Notes              string              `json:"notes"`
	RemindersEnabled   bool                `json:"reminders_enabled"`
	ReminderDaysBefore int                 `json:"reminder_days_before"`
	Documents          []string            `json:"documents"`
	Utilization        int                 `json:"utilization"`
	RiskScore          int                 `json:"risk_score"`
	RiskFactors        []string            `json:"risk_factors"`
}

// AssetListQuery parámetros de GET /api/assets.
type AssetListQuery struct {
	View       string `query:"view"`
	Search     string `query:"search"`
	Status     string `query:"status"`
	Department string `query:"department"`
	SortBy     string `query:"sort"`
}

// BulkStatusRequest cambio de estado en lote.
type BulkStatusRequest struct {
	IDs    []string           `json:"ids" validate:"required,min=1"`
	Status entity.AssetStatus `json:"status" validate:"required"`
}

// BulkResult resultado de una operación en lote.
type BulkResult struct {
	Affected int `json:"affected"`
}

// RenewResponse resultado de la renovación rápida.
type RenewResponse struct {
	Asset       entity.Asset `json:"asset"`
	NextRenewal string       `json:"next_renewal"`
}
