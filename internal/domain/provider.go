package domain

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"autocart-server/store-api/internal/config"
	"autocart-server/store-api/internal/domain/catalog"
	"autocart-server/store-api/internal/domain/chat"
	"autocart-server/store-api/internal/domain/conversation"
	"autocart-server/store-api/internal/domain/order"
	"autocart-server/store-api/internal/domain/payment"
	"autocart-server/store-api/internal/domain/user"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	// Catalog domain
	catalog.NewService,

	// Order domain
	order.NewService,

	// User domain
	user.NewService,

	// Conversation domain
	conversation.NewConversationService,

	// Assistant engine
	chat.NewSessions,
	ProvideEngine,
)

// ProvideEngine builds the assistant dispatcher from config-backed tuning.
func ProvideEngine(
	cfg *config.Config,
	catalogSvc *catalog.Service,
	orderSvc *order.Service,
	userSvc *user.Service,
	payments payment.Initiator,
	sessions *chat.Sessions,
	copywriter chat.Copywriter,
	log zerolog.Logger,
) *chat.Engine {
	return chat.NewEngine(
		catalogSvc,
		orderSvc,
		userSvc,
		payments,
		sessions,
		copywriter,
		cfg.ProductPageSize,
		cfg.StoreDomain,
		log,
	)
}
