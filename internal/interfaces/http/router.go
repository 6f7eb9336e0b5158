package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/subguard-api/internal/application/analytics"
	"github.com/jhoicas/subguard-api/internal/application/audit"
	"github.com/jhoicas/subguard-api/internal/application/auth"
	"github.com/jhoicas/subguard-api/internal/application/usecase"
	"github.com/jhoicas/subguard-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	AssetUC     *usecase.AssetUseCase
	RequestUC   *usecase.RequestUseCase
	ConfigUC    *usecase.ConfigUseCase
	VendorUC    *usecase.VendorUseCase
	TeamUC      *usecase.TeamUseCase
	ProfileUC   *usecase.ProfileUseCase
	AIUC        *usecase.AIUseCase
	ExportUC    *usecase.ExportUseCase
	DashboardUC *analytics.DashboardUseCase
	Audit       *audit.Writer
	Metrics     *Metrics
	SeedAssets  func() []entity.Asset
	JWTSecret   string
	// AIRatePerMinute límite de llamadas al asistente por usuario; 0 lo desactiva.
	AIRatePerMinute int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/signup", authHandler.SignUp)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/guest", authHandler.Guest)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Assets: las rutas fijas van antes de /:id
	assetHandler := NewAssetHandler(deps.AssetUC, deps.SeedAssets)
	exportHandler := NewExportHandler(deps.ExportUC)
	assets := protected.Group("/assets")
	assets.Get("/", assetHandler.List)
	assets.Post("/", assetHandler.Create)
	assets.Get("/export", exportHandler.Formats)
	assets.Get("/export/:format", exportHandler.Export)
	assets.Post("/bulk-delete", assetHandler.BulkDelete)
	assets.Post("/bulk-status", assetHandler.BulkStatus)
	assets.Post("/reset", assetHandler.Reset)
	assets.Get("/:id", assetHandler.GetByID)
	assets.Put("/:id", assetHandler.Update)
	assets.Delete("/:id", assetHandler.Delete)
	assets.Post("/:id/renew", assetHandler.Renew)
	assets.Get("/:id/renewal-preview", assetHandler.RenewalPreview)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard := protected.Group("/dashboard")
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/stats", dashboardHandler.GetStats)
	dashboard.Get("/projection", dashboardHandler.GetProjection)
	dashboard.Get("/alerts", dashboardHandler.GetAlerts)

	// Solicitudes
	requestHandler := NewRequestHandler(deps.RequestUC)
	protected.Get("/requests", requestHandler.List)
	protected.Post("/requests/:id/decision", requestHandler.Decide)

	// Historial
	protected.Get("/logs", NewAuditHandler(deps.Audit).List)

	// IA (limitada por usuario)
	aiHandler := NewAIHandler(deps.AIUC, deps.Metrics)
	ai := protected.Group("/ai", RateLimit(deps.AIRatePerMinute, deps.AIRatePerMinute))
	ai.Post("/chat", aiHandler.Chat)
	ai.Post("/asset-profile", aiHandler.AssetProfile)

	// Configuración
	configHandler := NewConfigHandler(deps.ConfigUC)
	protected.Get("/config", configHandler.Get)
	protected.Put("/config", configHandler.Update)

	// Proveedores
	vendorHandler := NewVendorHandler(deps.VendorUC)
	protected.Get("/vendors", vendorHandler.Hub)
	protected.Put("/vendors/profile", vendorHandler.SaveProfile)

	// Equipo y roles
	teamHandler := NewTeamHandler(deps.TeamUC)
	protected.Get("/team", teamHandler.ListMembers)
	protected.Post("/team", teamHandler.AddMember)
	protected.Delete("/team/:id", teamHandler.RemoveMember)
	protected.Get("/roles", teamHandler.ListRoles)
	protected.Post("/roles", teamHandler.CreateRole)
	protected.Put("/roles/:id/permissions", teamHandler.SetPermissions)
	protected.Get("/permissions", teamHandler.Permissions)

	// Perfil
	protected.Put("/profile", NewProfileHandler(deps.ProfileUC, deps.AuthUC).Update)
}
