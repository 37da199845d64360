package handlers

import (
	"github.com/google/wire"

	"autocart-server/store-api/internal/interfaces/httpserver/handlers/cataloghandler"
	"autocart-server/store-api/internal/interfaces/httpserver/handlers/chathandler"
	"autocart-server/store-api/internal/interfaces/httpserver/handlers/conversationhandler"
	"autocart-server/store-api/internal/interfaces/httpserver/handlers/orderhandler"
	"autocart-server/store-api/internal/interfaces/httpserver/handlers/paymenthandler"
)

var HandlerProvider = wire.NewSet(
	chathandler.NewChatHandler,
	conversationhandler.NewConversationHandler,
	cataloghandler.NewCatalogHandler,
	orderhandler.NewOrderHandler,
	paymenthandler.NewPaymentHandler,
)
