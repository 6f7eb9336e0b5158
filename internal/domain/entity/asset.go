package entity

import "github.com/shopspring/decimal"

// AssetType clasifica el activo dentro del registro.
type AssetType string

const (
	AssetTypeSaaS     AssetType = "SaaS"
	AssetTypeSoftware AssetType = "Software License"
	AssetTypeHardware AssetType = "Hardware"
	AssetTypeCloud    AssetType = "Cloud Resource"
	AssetTypeService  AssetType = "Connectivity / Service"
)

// Valid indica si el tipo pertenece al catálogo.
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeSaaS, AssetTypeSoftware, AssetTypeHardware, AssetTypeCloud, AssetTypeService:
		return true
	}
	return false
}

// IsLicense agrupa los tipos que se muestran en la vista de licencias.
func (t AssetType) IsLicense() bool {
	return t == AssetTypeSaaS || t == AssetTypeSoftware || t == AssetTypeCloud
}

// AssetStatus ciclo de vida del activo. No hay grafo de transiciones: cualquier estado se asigna directo.
type AssetStatus string

const (
	StatusPlanned   AssetStatus = "Planned"
	StatusRequested AssetStatus = "Requested"
	StatusApproved  AssetStatus = "Approved"
	StatusActive    AssetStatus = "Active"
	StatusSuspended AssetStatus = "Suspended"
	StatusRetired   AssetStatus = "Retired"
	StatusDisposed  AssetStatus = "Disposed"
	StatusArchived  AssetStatus = "Archived"
)

// AssetStatuses lista ordenada de estados válidos.
var AssetStatuses = []AssetStatus{
	StatusPlanned, StatusRequested, StatusApproved, StatusActive,
	StatusSuspended, StatusRetired, StatusDisposed, StatusArchived,
}

// Valid indica si el estado pertenece al catálogo.
func (s AssetStatus) Valid() bool {
	for _, v := range AssetStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// BillingCycle periodicidad del cobro.
type BillingCycle string

const (
	CycleMonthly   BillingCycle = "Monthly"
	CycleYearly    BillingCycle = "Yearly"
	CycleOneTime   BillingCycle = "One-Time / Perpetual"
	CycleQuarterly BillingCycle = "Quarterly"
)

// Valid indica si el ciclo pertenece al catálogo.
func (c BillingCycle) Valid() bool {
	switch c {
	case CycleMonthly, CycleYearly, CycleOneTime, CycleQuarterly:
		return true
	}
	return false
}

// Monedas soportadas.
const (
	CurrencyIDR = "IDR"
	CurrencyUSD = "USD"
)

// ValidCurrency indica si el código de moneda es soportado.
func ValidCurrency(c string) bool {
	return c == CurrencyIDR || c == CurrencyUSD
}

// Métodos de depreciación.
const (
	DepreciationStraightLine    = "Straight Line"
	DepreciationDoubleDeclining = "Double Declining"
	DepreciationNone            = "None"
)

// Assignment asignación de un asiento/licencia a una persona o equipo.
type Assignment struct {
	ID           string `json:"id"`
	Assignee     string `json:"assignee"`
	Role         string `json:"role"`
	AssignedDate string `json:"assigned_date"`
}

// Asset activo o suscripción registrada. Amount es el costo por ciclo de facturación.
// NextRenewal usa formato YYYY-MM-DD; vacío significa perpetuo.
type Asset struct {
	ID                 string                     `json:"id"`
	Name               string                     `json:"name"`
	Type               AssetType                  `json:"type"`
	Category           string                     `json:"category"`
	Vendor             string                     `json:"vendor"`
	Owner              string                     `json:"owner"`
	Department         string                     `json:"department"`
	LegalEntity        string                     `json:"legal_entity,omitempty"`
	Amount             decimal.Decimal            `json:"amount"`
	Currency           string                     `json:"currency"`
	Status             AssetStatus                `json:"status"`
	BillingCycle       BillingCycle               `json:"billing_cycle"`
	PurchaseDate       string                     `json:"purchase_date,omitempty"`
	NextRenewal        string                     `json:"next_renewal"`
	AutoRenew          bool                       `json:"auto_renew"`
	Capex              bool                       `json:"capex"`
	DepreciationMethod string                     `json:"depreciation_method,omitempty"`
	Seats              int                        `json:"seats,omitempty"`
	Assignments        []Assignment               `json:"assignments,omitempty"`
	SerialNumber       string                     `json:"serial_number,omitempty"`
	Location           string                     `json:"location,omitempty"`
	WarrantyExpiry     string                     `json:"warranty_expiry,omitempty"`
	Notes              string                     `json:"notes"`
	RemindersEnabled   bool                       `json:"reminders_enabled"`
	ReminderDaysBefore int                        `json:"reminder_days_before"`
	Documents          []string                   `json:"documents,omitempty"`
	Utilization        int                        `json:"utilization"`
	RiskScore          int                        `json:"risk_score"`
	RiskFactors        []string                   `json:"risk_factors,omitempty"`
	History            map[string]decimal.Decimal `json:"history,omitempty"`
}

// IsActive indica si el activo cuenta para el gasto corriente.
func (a Asset) IsActive() bool { return a.Status == StatusActive }

// Perpetual indica que el activo no tiene fecha de renovación.
func (a Asset) Perpetual() bool { return a.NextRenewal == "" }
