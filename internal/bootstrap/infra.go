package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/subguard-api/internal/application/ports"
	"github.com/jhoicas/subguard-api/internal/domain/repository"
	infraai "github.com/jhoicas/subguard-api/internal/infrastructure/ai"
	"github.com/jhoicas/subguard-api/internal/infrastructure/blobstore"
	"github.com/jhoicas/subguard-api/internal/infrastructure/postgres"
	"github.com/jhoicas/subguard-api/pkg/config"
	"github.com/jhoicas/subguard-api/pkg/logger"
)

// OpenStore abre el backend de STORAGE_BACKEND con el prefijo de claves aplicado.
// closeFn libera conexiones y siempre es invocable.
func OpenStore(ctx context.Context, cfg *config.Config) (store repository.BlobStore, closeFn func(), err error) {
	closeFn = func() {}
	var inner repository.BlobStore

	switch cfg.Storage.Backend {
	case config.StorageMemory:
		inner = blobstore.NewMemoryStore()
	case config.StorageFile:
		fs, err := blobstore.NewFileStore(cfg.Storage.Dir)
		if err != nil {
			return nil, closeFn, err
		}
		inner = fs
	case config.StorageRedis:
		rs, err := blobstore.NewRedisStore(ctx, blobstore.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, closeFn, err
		}
		inner = rs
		closeFn = func() { _ = rs.Close() }
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, closeFn, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		ps := postgres.NewBlobStore(pool)
		if err := ps.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, closeFn, err
		}
		inner = ps
		closeFn = pool.Close
	default:
		return nil, closeFn, fmt.Errorf("STORAGE_BACKEND desconocido: %q", cfg.Storage.Backend)
	}
	return blobstore.WithPrefix(inner, cfg.Storage.Prefix), closeFn, nil
}

// NewCompleter construye el adaptador de IA de AI_PROVIDER. Sin credenciales
// devuelve nil: el asistente responde 503 y el resto de la API sigue operando.
func NewCompleter(ctx context.Context, cfg config.AIConfig, log *logger.Logger) (ports.TextCompleter, func()) {
	noop := func() {}
	switch cfg.Provider {
	case config.AIProviderGemini:
		svc, err := infraai.NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Warn().Err(err).Msg("asistente IA deshabilitado")
			return nil, noop
		}
		return svc, func() { _ = svc.Close() }
	case config.AIProviderAnthropic:
		if cfg.AnthropicKey == "" {
			log.Warn().Msg("asistente IA deshabilitado: ANTHROPIC_API_KEY vacío")
			return nil, noop
		}
		return infraai.NewAnthropicService(cfg.AnthropicKey, cfg.AnthropicModel), noop
	default:
		log.Info().Str("provider", cfg.Provider).Msg("asistente IA deshabilitado")
		return nil, noop
	}
}

// AITimeout convierte AI_TIMEOUT_SECONDS.
func AITimeout(cfg config.AIConfig) time.Duration {
	return time.Duration(cfg.TimeoutSeconds) * time.Second
}
