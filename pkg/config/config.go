package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Backends de persistencia soportados por STORAGE_BACKEND.
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Proveedores de IA soportados por AI_PROVIDER.
const (
	AIProviderGemini    = "gemini"
	AIProviderAnthropic = "anthropic"
	AIProviderNone      = "none"
)

// Config agrupa la configuración de la aplicación (env vars, .env y config.env vía Viper).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Log     LogConfig
	JWT     JWTConfig
	Storage StorageConfig
	Redis   RedisConfig
	DB      DBConfig
	AI      AIConfig
	Auth    AuthConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig nivel y archivo opcional de logs (rotado con lumberjack).
type LogConfig struct {
	Level string
	File  string
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// StorageConfig selecciona dónde viven los documentos JSON del registro.
type StorageConfig struct {
	Backend string // memory | file | redis | postgres
	Dir     string // solo backend file
	Prefix  string // prefijo de claves, por defecto subguard_
}

// RedisConfig conexión al backend redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
}

// ConnectionString devuelve DATABASE_URL si está definido; si no, el DSN construido.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN arma el connection string escapando usuario y contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// AIConfig proveedor de IA y sus credenciales.
type AIConfig struct {
	Provider       string
	GeminiAPIKey   string
	GeminiModel    string
	AnthropicKey   string
	AnthropicModel string
	TimeoutSeconds int
	RatePerMinute  int
}

// AuthConfig parámetros del flujo de autenticación simulado.
type AuthConfig struct {
	ResetCode string
}

// Load lee la configuración. Prioridad: env vars > .env > config.env > defaults.
func Load() (*Config, error) {
	// godotenv no sobreescribe variables ya exportadas.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	geminiKey := getString(v, "GEMINI_API_KEY", "")
	if geminiKey == "" {
		geminiKey = getString(v, "API_KEY", "")
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "subguard"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
			File:  getString(v, "LOG_FILE", ""),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "subguard"),
		},
		Storage: StorageConfig{
			Backend: strings.ToLower(getString(v, "STORAGE_BACKEND", StorageMemory)),
			Dir:     getString(v, "STORAGE_DIR", "./data"),
			Prefix:  getString(v, "STORAGE_PREFIX", "subguard_"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "subguard"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    getInt(v, "DB_MAX_CONNS", 5),
		},
		AI: AIConfig{
			Provider:       strings.ToLower(getString(v, "AI_PROVIDER", AIProviderGemini)),
			GeminiAPIKey:   geminiKey,
			GeminiModel:    getString(v, "GEMINI_MODEL", "gemini-3-flash-preview"),
			AnthropicKey:   getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel: getString(v, "ANTHROPIC_MODEL", "claude-3-haiku-20240307"),
			TimeoutSeconds: getInt(v, "AI_TIMEOUT_SECONDS", 15),
			RatePerMinute:  getInt(v, "AI_RATE_PER_MINUTE", 20),
		},
		Auth: AuthConfig{
			ResetCode: getString(v, "AUTH_RESET_CODE", "1234"),
		},
	}

	switch cfg.Storage.Backend {
	case StorageMemory, StorageFile, StorageRedis, StoragePostgres:
	default:
		return nil, fmt.Errorf("STORAGE_BACKEND desconocido: %q", cfg.Storage.Backend)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	if s, ok := v.Get(key).(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return def
		}
		return n
	}
	return v.GetInt(key)
}
