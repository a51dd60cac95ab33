// Package config loads the service configuration from a YAML file overlaid by
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr              string        `env:"HTTP_ADDR"                env-default:":8080" yaml:"addr"`
		ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT"        env-default:"1m"    yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s"   yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT"       env-default:"2m"    yaml:"writeTimeout"`
		IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT"        env-default:"2m"    yaml:"idleTimeout"`
		// RequestTimeout bounds the handling of a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT"  env-default:"30s"      yaml:"requestTimeout"`
		MaxHeaderBytes int           `env:"HTTP_MAX_HEADER_BYTES" env-default:"0"        yaml:"maxHeaderBytes"`
		MetricsPath    string        `env:"HTTP_METRICS_PATH"     env-default:"/metrics" yaml:"metricsPath"`
		// EnableDebug mounts pprof and the River UI
		EnableDebug bool `env:"HTTP_ENABLE_DEBUG" env-default:"false" yaml:"enableDebug"`
	} `yaml:"http"`

	Database struct {
		Username           string        `env:"DATABASE_USERNAME"                 env-default:"catconnect" yaml:"username"`
		Password           string        `env:"DATABASE_PASSWORD"                 env-default:"catconnect" yaml:"password"`
		Host               string        `env:"DATABASE_HOST"                     env-default:"localhost"  yaml:"host"`
		Port               int           `env:"DATABASE_PORT"                     env-default:"5432"       yaml:"port"`
		SslMode            string        `env:"DATABASE_SSL_MODE"                 env-default:"disable"    yaml:"sslMode"`
		DatabaseName       string        `env:"DATABASE_NAME"                     env-default:"catconnect" yaml:"name"`
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS"     env-default:"20"         yaml:"maxOpenConnections"`
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS"     env-default:"4"          yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME"  env-default:"3m"         yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m"         yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	JWT struct {
		// PublicKey is the PEM encoded RSA key used to verify bearer tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA key used to sign tokens at login
		PrivateKey string        `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		Issuer     string        `env:"JWT_ISSUER"      env-default:"catconnect" yaml:"issuer"`
		TTL        time.Duration `env:"JWT_TTL"         env-default:"24h"        yaml:"ttl"`
	} `yaml:"jwt"`

	Tasks struct {
		// Workers is the concurrency of the default River queue
		Workers     int `env:"TASKS_WORKERS"      env-default:"10" yaml:"workers"`
		MaxAttempts int `env:"TASKS_MAX_ATTEMPTS" env-default:"5"  yaml:"maxAttempts"`
		// FallbackTimeout bounds a task executed in-process when enqueueing fails
		FallbackTimeout time.Duration `env:"TASKS_FALLBACK_TIMEOUT" env-default:"30s" yaml:"fallbackTimeout"`
	} `yaml:"tasks"`

	Mail struct {
		Host     string `env:"MAIL_HOST"      env-default:"localhost"                yaml:"host"`
		Port     int    `env:"MAIL_PORT"      env-default:"1025"                     yaml:"port"`
		Username string `env:"MAIL_USERNAME"                                         yaml:"username"`
		Password string `env:"MAIL_PASSWORD"                                         yaml:"password"`
		From     string `env:"MAIL_FROM"      env-default:"no-reply@catconnect.ph"   yaml:"from"`
		FromName string `env:"MAIL_FROM_NAME" env-default:"Catanduanes Connect"      yaml:"fromName"`
		StartTLS bool   `env:"MAIL_STARTTLS"  env-default:"false"                    yaml:"startTLS"`
	} `yaml:"mail"`

	Geocoder struct {
		BaseURL   string `env:"GEOCODER_BASE_URL"   env-default:"https://nominatim.openstreetmap.org" yaml:"baseURL"`
		UserAgent string `env:"GEOCODER_USER_AGENT" env-default:"catconnect/1.0"                      yaml:"userAgent"`
		// RequestsPerSecond is the budget of business geocoding and
		// SuggestRequestsPerSecond the one of public location suggestions. Each
		// has its own limiter and breaker; together they stay within the
		// Nominatim usage policy by default.
		RequestsPerSecond        float64       `env:"GEOCODER_RPS"         env-default:"0.5" yaml:"requestsPerSecond"`
		SuggestRequestsPerSecond float64       `env:"GEOCODER_SUGGEST_RPS" env-default:"0.5" yaml:"suggestRequestsPerSecond"`
		Timeout                  time.Duration `env:"GEOCODER_TIMEOUT"     env-default:"10s" yaml:"timeout"`
		// ViewBox bounds searches to Catanduanes: min lon, max lat, max lon, min lat
		ViewBox string `env:"GEOCODER_VIEWBOX" env-default:"124.00,14.12,124.45,13.50" yaml:"viewBox"`
	} `yaml:"geocoder"`

	LLM struct {
		// BaseURL of an OpenAI compatible API. An empty APIKey disables the assistant.
		BaseURL     string        `env:"LLM_BASE_URL"    env-default:"https://api.openai.com/v1" yaml:"baseURL"`
		APIKey      string        `env:"LLM_API_KEY"                                           yaml:"apiKey"`
		Model       string        `env:"LLM_MODEL"       env-default:"gpt-4o-mini"             yaml:"model"`
		Timeout     time.Duration `env:"LLM_TIMEOUT"     env-default:"30s"                     yaml:"timeout"`
		MaxTokens   int           `env:"LLM_MAX_TOKENS"  env-default:"512"                     yaml:"maxTokens"`
		Temperature float64       `env:"LLM_TEMPERATURE" env-default:"0.4"                     yaml:"temperature"`
	} `yaml:"llm"`

	KV struct {
		// Dir is the badger directory. Empty keeps the store in memory.
		Dir string `env:"KV_DIR" yaml:"dir"`
	} `yaml:"kv"`

	Marketplace struct {
		OTPTTL            time.Duration `env:"MARKETPLACE_OTP_TTL"             env-default:"10m" yaml:"otpTTL"`
		OTPMaxAttempts    int           `env:"MARKETPLACE_OTP_MAX_ATTEMPTS"    env-default:"5"   yaml:"otpMaxAttempts"`
		OTPResendCooldown time.Duration `env:"MARKETPLACE_OTP_RESEND_COOLDOWN" env-default:"60s" yaml:"otpResendCooldown"`
		BcryptCost        int           `env:"MARKETPLACE_BCRYPT_COST"         env-default:"10"  yaml:"bcryptCost"`
		ChatHistoryTTL    time.Duration `env:"MARKETPLACE_CHAT_HISTORY_TTL"    env-default:"2h"  yaml:"chatHistoryTTL"`
		ChatMaxTurns      int           `env:"MARKETPLACE_CHAT_MAX_TURNS"      env-default:"20"  yaml:"chatMaxTurns"`
		DefaultPageSize   uint          `env:"MARKETPLACE_DEFAULT_PAGE_SIZE"   env-default:"20"  yaml:"defaultPageSize"`
		// PublicURL prefixes links sent in emails
		PublicURL string `env:"MARKETPLACE_PUBLIC_URL" env-default:"http://localhost:8080" yaml:"publicURL"`
	} `yaml:"marketplace"`

	RateLimit struct {
		// AuthRequests per AuthWindow per client IP on login, registration and OTP endpoints
		AuthRequests int           `env:"RATE_LIMIT_AUTH_REQUESTS" env-default:"10" yaml:"authRequests"`
		AuthWindow   time.Duration `env:"RATE_LIMIT_AUTH_WINDOW"   env-default:"1m" yaml:"authWindow"`
	} `yaml:"rateLimit"`

	CORS struct {
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"cors"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing work to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"15s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads an optional .env file into the process environment, then the
// YAML file at configPath overlaid by environment variables. An empty
// configPath reads the environment only.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not read .env file: %w", err)
	}

	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}

		return &cfg, nil
	}

	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
