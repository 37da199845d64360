package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Global singleton for components that cannot take injected config
var globalConfig *Config

// Config holds all environment backed configuration for store-api.
type Config struct {
	// HTTP Server
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"9091"`
	DatabaseURL string `env:"DATABASE_URL,notEmpty"`

	// Auth
	JWKSURL             string        `env:"JWKS_URL"`
	OIDCDiscoveryURL    string        `env:"OIDC_DISCOVERY_URL"`
	Issuer              string        `env:"ISSUER"`
	Audience            string        `env:"AUDIENCE"`
	GuestRole           string        `env:"GUEST_ROLE" envDefault:"guest"`
	RefreshJWKSInterval time.Duration `env:"JWKS_REFRESH_INTERVAL" envDefault:"5m"`
	AuthEnabled         bool          `env:"AUTH_ENABLED" envDefault:"false"`

	// PostgreSQL
	DBPostgresqlWriteDSN string `env:"DB_POSTGRESQL_WRITE_DSN"`
	DBPostgresqlRead1DSN string `env:"DB_POSTGRESQL_READ1_DSN"`

	// Payman payment gateway
	PaymanBaseURL      string        `env:"PAYMAN_BASE_URL" envDefault:"https://agent.payman.ai/api"`
	PaymanOAuthURL     string        `env:"PAYMAN_OAUTH_URL" envDefault:"https://agent.payman.ai/api/oauth2/token"`
	PaymanClientID     string        `env:"PAYMAN_CLIENT_ID"`
	PaymanClientSecret string        `env:"PAYMAN_CLIENT_SECRET"`
	PaymanScopes       string        `env:"PAYMAN_SCOPES" envDefault:"read_balance read_list_payees write_create_payee write_send_payment"`
	PaymanTimeout      time.Duration `env:"PAYMAN_TIMEOUT" envDefault:"15s"`

	// Assistant engine
	ProductPageSize int    `env:"PRODUCT_PAGE_SIZE" envDefault:"3"`
	StoreDomain     string `env:"STORE_DOMAIN" envDefault:"autocart.com"`
	CatalogSeedFile string `env:"CATALOG_SEED_FILE" envDefault:"config/catalog.yaml"`

	// Conversation retention sweep
	RetentionEnabled       bool `env:"CONVERSATION_RETENTION_ENABLED" envDefault:"false"`
	RetentionDays          int  `env:"CONVERSATION_RETENTION_DAYS" envDefault:"90"`
	RetentionSweepInterval int  `env:"CONVERSATION_RETENTION_SWEEP_MINUTES" envDefault:"60"`

	// Copywriter (optional LLM rewrite of fallback replies)
	CopywriterEnabled bool   `env:"COPYWRITER_ENABLED" envDefault:"false"`
	CopywriterAPIKey  string `env:"COPYWRITER_API_KEY"`
	CopywriterBaseURL string `env:"COPYWRITER_BASE_URL"`
	CopywriterModel   string `env:"COPYWRITER_MODEL" envDefault:"gpt-4o-mini"`

	// Observability / Logging
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	OTLPEndpoint     string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders      string        `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName      string        `env:"SERVICE_NAME" envDefault:"store-api"`
	ServiceNamespace string        `env:"SERVICE_NAMESPACE" envDefault:"autocart"`
	Environment      string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"console"`

	// Features
	AutoMigrate bool `env:"AUTO_MIGRATE" envDefault:"true"`

	// Internal
	EnvReloadedAt time.Time
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.AuthEnabled {
		if cfg.JWKSURL == "" && cfg.OIDCDiscoveryURL == "" {
			return nil, errors.New("either JWKS_URL or OIDC_DISCOVERY_URL must be provided when AUTH_ENABLED is true")
		}
		if cfg.Issuer == "" || cfg.Audience == "" {
			return nil, errors.New("ISSUER and AUDIENCE must be provided when AUTH_ENABLED is true")
		}
	}

	if cfg.JWKSURL != "" {
		if _, err := url.ParseRequestURI(cfg.JWKSURL); err != nil {
			return nil, fmt.Errorf("invalid JWKS_URL: %w", err)
		}
	}

	if cfg.OIDCDiscoveryURL != "" {
		if _, err := url.ParseRequestURI(cfg.OIDCDiscoveryURL); err != nil {
			return nil, fmt.Errorf("invalid OIDC_DISCOVERY_URL: %w", err)
		}
	}

	if cfg.ProductPageSize <= 0 {
		return nil, fmt.Errorf("PRODUCT_PAGE_SIZE must be positive, got %d", cfg.ProductPageSize)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.EnvReloadedAt = time.Now()

	globalConfig = cfg

	return cfg, nil
}

// ResolveJWKSURL returns the JWKS endpoint using either the explicit JWKS_URL or the OIDC discovery document.
func (c *Config) ResolveJWKSURL(ctx context.Context) (string, error) {
	if c.JWKSURL != "" {
		return c.JWKSURL, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.OIDCDiscoveryURL, nil)
	if err != nil {
		return "", fmt.Errorf("oidc discovery request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch oidc discovery: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oidc discovery unexpected status: %s", resp.Status)
	}

	var doc struct {
		JWKSURL string `json:"jwks_uri"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return "", fmt.Errorf("decode oidc discovery: %w", err)
	}

	if doc.JWKSURL == "" {
		return "", errors.New("jwks_uri not found in discovery document")
	}

	return doc.JWKSURL, nil
}

// GetGlobal returns the global config instance.
// Deprecated: Use dependency injection with Load() instead.
func GetGlobal() *Config {
	return globalConfig
}

var Version = "dev"

func IsDev() bool {
	return strings.HasPrefix(Version, "dev")
}
