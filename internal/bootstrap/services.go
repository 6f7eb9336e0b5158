// Package bootstrap arma los casos de uso sobre un BlobStore. Lo comparten el
// servidor HTTP y la CLI para que ambos vean el mismo registro.
package bootstrap

import (
	"time"

	"github.com/jhoicas/subguard-api/internal/application/analytics"
	"github.com/jhoicas/subguard-api/internal/application/audit"
	"github.com/jhoicas/subguard-api/internal/application/auth"
	"github.com/jhoicas/subguard-api/internal/application/ports"
	"github.com/jhoicas/subguard-api/internal/application/usecase"
	"github.com/jhoicas/subguard-api/internal/domain/repository"
	"github.com/jhoicas/subguard-api/internal/infrastructure/pdf"
	"github.com/jhoicas/subguard-api/internal/infrastructure/storage"
	"github.com/jhoicas/subguard-api/internal/infrastructure/xmlreport"
	"github.com/jhoicas/subguard-api/pkg/logger"
)

// Options colaboradores opcionales. Los valores cero usan reloj del sistema,
// logger nulo, sin IA y el timeout de IA por defecto.
type Options struct {
	Clock     ports.Clock
	Log       *logger.Logger
	LLM       ports.TextCompleter
	AITimeout time.Duration
	Auth      auth.Config
}

// Services casos de uso listos para los adaptadores de entrada.
type Services struct {
	Audit     *audit.Writer
	Auth      *auth.AuthUseCase
	Assets    *usecase.AssetUseCase
	Requests  *usecase.RequestUseCase
	Config    *usecase.ConfigUseCase
	Vendors   *usecase.VendorUseCase
	Team      *usecase.TeamUseCase
	Profile   *usecase.ProfileUseCase
	AI        *usecase.AIUseCase
	Export    *usecase.ExportUseCase
	Dashboard *analytics.DashboardUseCase
}

// Build crea repositorios y casos de uso sobre store.
func Build(store repository.BlobStore, opts Options) *Services {
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	if opts.AITimeout <= 0 {
		opts.AITimeout = usecase.DefaultAITimeout
	}

	assetRepo := storage.NewAssetRepository(store)
	requestRepo := storage.NewRequestRepository(store)
	configRepo := storage.NewConfigRepository(store)
	credentialRepo := storage.NewCredentialRepository(store)
	sessionRepo := storage.NewSessionRepository(store)

	auditWriter := audit.NewWriter(storage.NewAuditLogRepository(store), opts.Clock)
	assetUC := usecase.NewAssetUseCase(assetRepo, auditWriter)

	return &Services{
		Audit:    auditWriter,
		Auth:     auth.NewAuthUseCase(credentialRepo, sessionRepo, opts.Auth),
		Assets:   assetUC,
		Requests: usecase.NewRequestUseCase(requestRepo, assetUC, auditWriter, opts.Clock, opts.Log),
		Config:   usecase.NewConfigUseCase(configRepo, auditWriter),
		Vendors:  usecase.NewVendorUseCase(storage.NewVendorRepository(store), assetRepo, auditWriter),
		Team: usecase.NewTeamUseCase(
			storage.NewTeamRepository(store), storage.NewRoleRepository(store),
			configRepo, auditWriter, opts.Clock,
		),
		Profile: usecase.NewProfileUseCase(credentialRepo, sessionRepo, auditWriter),
		AI:      usecase.NewAIUseCase(opts.LLM, assetRepo, opts.AITimeout, opts.Log),
		Export: usecase.NewExportUseCase(assetRepo, configRepo, opts.Clock,
			pdf.NewMarotoPDFGenerator(), xmlreport.NewRenderer()),
		Dashboard: analytics.NewDashboardUseCase(assetRepo, requestRepo, configRepo, opts.Clock),
	}
}
