package infrastructure

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"autocart-server/store-api/internal/config"
	"autocart-server/store-api/internal/domain/chat"
	"autocart-server/store-api/internal/domain/payment"
	"autocart-server/store-api/internal/infrastructure/auth"
	"autocart-server/store-api/internal/infrastructure/copywriter"
	"autocart-server/store-api/internal/infrastructure/crontab"
	"autocart-server/store-api/internal/infrastructure/database"
	"autocart-server/store-api/internal/infrastructure/database/repository"
	"autocart-server/store-api/internal/infrastructure/database/transaction"
	"autocart-server/store-api/internal/infrastructure/logger"
	"autocart-server/store-api/internal/infrastructure/payman"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideDatabase provides a database connection
func ProvideDatabase(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	writeDSN := cfg.DatabaseURL
	if cfg.DBPostgresqlWriteDSN != "" {
		writeDSN = cfg.DBPostgresqlWriteDSN
	}
	db, err := database.NewDB(writeDSN, cfg.DBPostgresqlRead1DSN)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		log.Info().Msg("Running database migrations...")
		if err := database.Migration(db, "store_api."); err != nil {
			log.Error().Err(err).Msg("Failed to run database migrations")
			return nil, err
		}
		log.Info().Msg("Database migrations completed successfully")
	}

	return db, nil
}

// ProvideTransactionDatabase provides a transaction database wrapper
func ProvideTransactionDatabase(db *gorm.DB) *transaction.Database {
	return transaction.NewDatabase(db)
}

// ProvideOIDCValidator provides a JWT validator when auth is enabled.
// When auth is disabled the validator is nil and requests fall back to
// guest identities.
func ProvideOIDCValidator(cfg *config.Config, log zerolog.Logger) (*auth.OIDCValidator, error) {
	if !cfg.AuthEnabled {
		return nil, nil
	}

	ctx := context.Background()
	jwksURL, err := cfg.ResolveJWKSURL(ctx)
	if err != nil {
		return nil, err
	}

	return auth.NewOIDCValidator(
		ctx,
		jwksURL,
		cfg.Issuer,
		cfg.Audience,
		cfg.RefreshJWKSInterval,
		log,
	)
}

// ProvideCopywriter wires the optional reply rewriter. The concrete nil
// must be dropped here so the engine's nil check still works.
func ProvideCopywriter(cfg *config.Config, log zerolog.Logger) chat.Copywriter {
	if rewriter := copywriter.New(cfg, log); rewriter != nil {
		return rewriter
	}
	return nil
}

// Infrastructure holds all infrastructure dependencies
type Infrastructure struct {
	DB            *gorm.DB
	OIDCValidator *auth.OIDCValidator
	Logger        zerolog.Logger
}

// NewInfrastructure creates a new infrastructure instance
func NewInfrastructure(
	db *gorm.DB,
	oidcValidator *auth.OIDCValidator,
	logger zerolog.Logger,
) *Infrastructure {
	return &Infrastructure{
		DB:            db,
		OIDCValidator: oidcValidator,
		Logger:        logger,
	}
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Database
	ProvideDatabase,
	ProvideTransactionDatabase,

	// Repositories
	repository.RepositoryProvider,

	// Logger
	logger.GetLogger,

	// Auth
	ProvideOIDCValidator,

	// Payment gateway
	payman.NewClient,
	wire.Bind(new(payment.Initiator), new(*payman.Client)),

	// Copywriter
	ProvideCopywriter,

	// Crontab for conversation retention
	crontab.NewCrontab,

	// Infrastructure struct
	NewInfrastructure,
)
