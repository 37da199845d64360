package routes

import (
	"github.com/google/wire"

	v1 "autocart-server/store-api/internal/interfaces/httpserver/routes/v1"
	"autocart-server/store-api/internal/interfaces/httpserver/routes/v1/catalog"
	"autocart-server/store-api/internal/interfaces/httpserver/routes/v1/chat"
	"autocart-server/store-api/internal/interfaces/httpserver/routes/v1/conversation"
	"autocart-server/store-api/internal/interfaces/httpserver/routes/v1/order"
	"autocart-server/store-api/internal/interfaces/httpserver/routes/v1/payment"
)

var RouteProvider = wire.NewSet(
	v1.NewV1Route,
	chat.NewChatRoute,
	conversation.NewConversationRoute,
	catalog.NewCatalogRoute,
	order.NewOrderRoute,
	payment.NewPaymentRoute,
)
