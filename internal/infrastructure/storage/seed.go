package storage

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/subguard-api/internal/domain/entity"
)

// Datos semilla usados cuando una colección nunca se guardó.
// Cada llamada devuelve una copia nueva.

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// SeedAssets registro inicial de activos.
func SeedAssets() []entity.Asset {
	return []entity.Asset{
		{
			ID: "1", Name: "AWS Production Env", Type: entity.AssetTypeCloud,
			Category: "Cloud Infrastructure", Vendor: "Amazon Web Services", Owner: "DevOps Team",
			Department: "Engineering", LegalEntity: "PT SubGuard Tech",
			Amount: d(15_400_000), Currency: entity.CurrencyIDR, Status: entity.StatusActive,
			BillingCycle: entity.CycleMonthly, NextRenewal: "2025-12-12", AutoRenew: true,
			Notes:            "Main production cluster (ap-southeast-1)",
			RemindersEnabled: true, ReminderDaysBefore: 7,
			Documents:   []string{"aws-contract-2024.pdf"},
			Utilization: 85, RiskScore: 25, RiskFactors: []string{"Variable Cost"},
			History: map[string]decimal.Decimal{"sept": d(14_200_000), "oct": d(14_800_000), "nov": d(15_400_000)},
		},
		{
			ID: "2", Name: "Salesforce Enterprise", Type: entity.AssetTypeSaaS,
			Category: "CRM", Vendor: "Salesforce", Owner: "Sarah Connor",
			Department: "Sales", LegalEntity: "PT SubGuard Commercial",
			Amount: d(45_000_000), Currency: entity.CurrencyIDR, Status: entity.StatusActive,
			BillingCycle: entity.CycleYearly, NextRenewal: "2026-01-15",
			Seats: 25,
			Assignments: []entity.Assignment{
				{ID: "a1", Assignee: "Sales Team A", Role: "User", AssignedDate: "2024-01-15"},
				{ID: "a2", Assignee: "John Doe", Role: "Admin", AssignedDate: "2024-01-15"},
			},
			Notes:            "Contract #SF-2024-992. Negotiate seat count before renewal.",
			RemindersEnabled: true, ReminderDaysBefore: 60,
			Documents:   []string{"sf-invoice-q1.pdf", "sf-sla.pdf"},
			Utilization: 45, RiskScore: 65, RiskFactors: []string{"High Dependency", "Auto-Renew Clause"},
		},
		{
			ID: "3", Name: "MacBook Pro M3 Max", Type: entity.AssetTypeHardware,
			Category: "Laptop", Vendor: "iBox", Owner: "John Doe",
			Department: "Design", LegalEntity: "PT SubGuard Tech",
			Amount: d(32_000_000), Currency: entity.CurrencyIDR, Status: entity.StatusActive,
			BillingCycle: entity.CycleOneTime, PurchaseDate: "2024-06-01",
			Capex: true, DepreciationMethod: entity.DepreciationStraightLine,
			SerialNumber: "FVFGH234JK", Location: "Jakarta HQ - 12th Floor", WarrantyExpiry: "2025-06-01",
			Notes:       "Asset Tag: SG-HW-004. High performance unit for video rendering.",
			Documents:   []string{"po-00432.pdf", "warranty-card.pdf"},
			Utilization: 100, RiskScore: 10,
		},
		{
			ID: "4", Name: "Adobe Creative Cloud", Type: entity.AssetTypeSoftware,
			Category: "Design Tools", Vendor: "Adobe", Owner: "Design Team",
			Department: "Design", LegalEntity: "PT SubGuard Tech",
			Amount: d(8_900_000), Currency: entity.CurrencyIDR, Status: entity.StatusActive,
			BillingCycle: entity.CycleMonthly, NextRenewal: "2025-12-01", AutoRenew: true,
			Seats:            10,
			Notes:            "All Apps Plan for Design Team",
			RemindersEnabled: true, ReminderDaysBefore: 3,
			Utilization: 92, RiskScore: 40, RiskFactors: []string{"Price Hike Expected"},
			History: map[string]decimal.Decimal{"sept": d(8_900_000), "oct": d(8_900_000), "nov": d(8_900_000)},
		},
		{
			ID: "5", Name: "Legacy ERP System", Type: entity.AssetTypeSoftware,
			Category: "ERP", Vendor: "Oracle", Owner: "IT Ops",
			Department: "Finance", LegalEntity: "Holding Corp",
			Amount: d(250_000_000), Currency: entity.CurrencyIDR, Status: entity.StatusSuspended,
			BillingCycle: entity.CycleYearly, NextRenewal: "2025-06-30", AutoRenew: true,
			Capex:            true,
			Notes:            "Pending decommission approval. High cost.",
			RemindersEnabled: true, ReminderDaysBefore: 90,
			Documents:   []string{"oracle-legacy-contract.pdf"},
			Utilization: 10, RiskScore: 90, RiskFactors: []string{"End of Life", "High Cost", "No Support"},
		},
	}
}

// SeedRequests cola inicial de solicitudes.
func SeedRequests() []entity.Request {
	return []entity.Request{
		{ID: "r1", Type: entity.RequestNewAsset, Item: "Jira Premium License", Requester: "Tech Lead",
			Department: "Engineering", Status: entity.RequestPending, Cost: d(15_000_000), Date: "2025-11-10"},
		{ID: "r2", Type: entity.RequestRenewal, Item: "Zoom Enterprise", Requester: "Ops Manager",
			Department: "Operations", Status: entity.RequestPending, Cost: d(5_500_000), Date: "2025-11-12"},
		{ID: "r3", Type: entity.RequestAccess, Item: "Tableau Seat", Requester: "Data Analyst",
			Department: "Marketing", Status: entity.RequestApproved, Cost: d(1_200_000), Date: "2025-11-01"},
	}
}

// SeedLogs historial inicial, más reciente primero.
func SeedLogs() []entity.AuditLog {
	return []entity.AuditLog{
		{ID: "l1", Action: "Asset Created", Actor: "System Admin", Target: "AWS Production Env",
			Timestamp: "2024-01-15T09:00:00Z", Details: "Initial registration of cloud infrastructure."},
		{ID: "l2", Action: "Document Uploaded", Actor: "Sarah Connor", Target: "Salesforce Enterprise",
			Timestamp: "2024-02-10T14:30:00Z", Details: "Uploaded signed contract SF-2024-992.pdf"},
		{ID: "l3", Action: "Utilization Updated", Actor: "System Job", Target: "Adobe Creative Cloud",
			Timestamp: "2024-11-01T00:00:00Z", Details: "Auto-scan detected 92% seat usage."},
		{ID: "l4", Action: "Risk Alert", Actor: entity.SystemActor, Target: "Legacy ERP System",
			Timestamp: "2024-11-05T08:00:00Z", Details: "Asset flagged as High Risk (Score: 90)."},
	}
}

// SeedTeam miembros iniciales del equipo.
func SeedTeam() []entity.TeamMember {
	return []entity.TeamMember{
		{ID: "u1", Name: "Sarah Connor", Email: "sarah@subguard.io", RoleID: "admin",
			Department: "Executive", Status: entity.MemberActive, LastActive: "2025-01-20T10:30:00"},
		{ID: "u2", Name: "John Doe", Email: "john@subguard.io", RoleID: "manager",
			Department: "IT Ops", Status: entity.MemberActive, LastActive: "2025-01-19T14:20:00"},
		{ID: "u3", Name: "Mike Ross", Email: "mike@subguard.io", RoleID: "viewer",
			Department: "Legal", Status: entity.MemberInactive, LastActive: "2024-12-15T09:00:00"},
	}
}

// SeedRoles roles iniciales.
func SeedRoles() []entity.Role {
	all := make([]string, 0, len(entity.Permissions))
	for _, p := range entity.Permissions {
		all = append(all, p.ID)
	}
	return []entity.Role{
		{ID: "admin", Name: "Administrator",
			Description: "Full access to all system features and settings.", Permissions: all},
		{ID: "manager", Name: "Asset Manager",
			Description: "Can manage assets and view financials, but cannot change system settings.",
			Permissions: []string{entity.PermViewAssets, entity.PermEditAssets, entity.PermViewFinance, entity.PermApproveRequests}},
		{ID: "viewer", Name: "Viewer",
			Description: "Read-only access to the asset registry.", Permissions: []string{entity.PermViewAssets}},
	}
}
