package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete application configuration, loadable from
// environment variables (STORE_ prefix), flags, or YAML config files.
type Config struct {
	Addr         string `default:"0.0.0.0:8080" usage:"API server listen address"`
	DatabaseURL  string `usage:"PostgreSQL connection URL (STORE_DATABASE_URL or DATABASE_URL)" flag:"database-url"`
	ImageBaseURL string `default:"" usage:"Base URL prepended to relative image paths" flag:"image-base-url"`
	APIKeyPepper string `usage:"HMAC pepper for admin API key hashing (STORE_API_KEY_PEPPER)" flag:"api-key-pepper"`
	SMTP         SMTPConfig
	Notify       NotifyConfig
	Reconcile    ReconcileConfig
	RateLimit    RateLimitConfig
	CORS         CORSConfig
	Graceful     GracefulConfig
}

// SMTPConfig configures order confirmation mail. An empty Host logs
// messages instead of sending them.
type SMTPConfig struct {
	Host     string `default:"" usage:"SMTP relay host"`
	Port     int    `default:"587" usage:"SMTP relay port"`
	Username string `default:"" usage:"SMTP username"`
	Password string `default:"" usage:"SMTP password"`
	From     string `default:"" usage:"Sender address, defaults to the username"`
}

// NotifyConfig bounds background notification delivery.
type NotifyConfig struct {
	Workers int           `default:"4" usage:"Concurrent notification deliveries"`
	Queue   int           `default:"1024" usage:"Notifications waiting for a worker before new ones are dropped"`
	Timeout time.Duration `default:"30s" usage:"Timeout of a single delivery"`
}

// ReconcileConfig schedules brand/category counter reconciliation.
type ReconcileConfig struct {
	Schedule string `default:"@every 1h" usage:"Cron schedule of counter reconciliation"`
}

// RateLimitConfig limits checkout requests per client.
type RateLimitConfig struct {
	Max    int           `default:"30" usage:"Max checkout requests per window, 0 disables"`
	Window time.Duration `default:"1m" usage:"Rate limit window duration"`
}

// CORSConfig controls Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	Origins []string `default:"*" usage:"Allowed CORS origins"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// LoadConfig loads configuration from environment variables and YAML config
// files, then applies platform defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "STORE",
		Files:     []string{"config.yaml", "/etc/storefront/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if cfg.DatabaseURL == "" {
		return nil, errors.New("database URL is required: set STORE_DATABASE_URL or DATABASE_URL")
	}
	return &cfg, nil
}

// applyPlatformDefaults maps DATABASE_URL and PORT, as provided by hosting
// platforms, onto the STORE_ configuration.
func (c *Config) applyPlatformDefaults() {
	if c.DatabaseURL == "" {
		if v := os.Getenv("DATABASE_URL"); v != "" {
			c.DatabaseURL = v
		}
	}
	if port := os.Getenv("PORT"); port != "" && c.Addr == "0.0.0.0:8080" {
		c.Addr = "0.0.0.0:" + port
	}
}
