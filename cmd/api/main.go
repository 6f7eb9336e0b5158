package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/subguard-api/internal/application/auth"
	"github.com/jhoicas/subguard-api/internal/bootstrap"
	"github.com/jhoicas/subguard-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/subguard-api/internal/interfaces/http"
	"github.com/jhoicas/subguard-api/pkg/config"
	"github.com/jhoicas/subguard-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	defer log.Close()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Backend).
		Str("ai_provider", cfg.AI.Provider).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	store, closeStore, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer closeStore()

	llm, closeLLM := bootstrap.NewCompleter(ctx, cfg.AI, log)
	defer closeLLM()

	svc := bootstrap.Build(store, bootstrap.Options{
		Log:       log,
		LLM:       llm,
		AITimeout: bootstrap.AITimeout(cfg.AI),
		Auth: auth.Config{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
			ResetCode:  cfg.Auth.ResetCode,
		},
	})

	metrics := httpRouter.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.AccessLog(log))
	app.Use(metrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SubGuard API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          svc.Auth,
		AssetUC:         svc.Assets,
		RequestUC:       svc.Requests,
		ConfigUC:        svc.Config,
		VendorUC:        svc.Vendors,
		TeamUC:          svc.Team,
		ProfileUC:       svc.Profile,
		AIUC:            svc.AI,
		ExportUC:        svc.Export,
		DashboardUC:     svc.Dashboard,
		Audit:           svc.Audit,
		Metrics:         metrics,
		SeedAssets:      storage.SeedAssets,
		JWTSecret:       cfg.JWT.Secret,
		AIRatePerMinute: cfg.AI.RatePerMinute,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
