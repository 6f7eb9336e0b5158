package dto

import (
	"github.com/jhoicas/subguard-api/internal/domain/entity"
	"github.com/jhoicas/subguard-api/internal/domain/finance"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Todos los importes están en IDR; los campos Formatted* usan la moneda de visualización.
type DashboardSummaryDTO struct {
	Stats           finance.Stats             `json:"stats"`
	Projection      []finance.MonthProjection `json:"projection"`
	DepartmentSpend []finance.Bucket          `json:"department_spend"`
	TopVendors      []finance.Bucket          `json:"top_vendors"`
	RenewalAlerts   []entity.Asset            `json:"renewal_alerts"`
	PendingRequests int                       `json:"pending_requests"`

	Currency          string `json:"currency"`
	FormattedBurn     string `json:"formatted_burn"`
	FormattedTotal    string `json:"formatted_total"`
	FormattedWaste    string `json:"formatted_waste"`
	MonthLabel        string `json:"month_label"` // ej: "November 2025"
	BudgetUtilization string `json:"budget_utilization"`
	OverBudgetMonths  int    `json:"over_budget_months"`
}
