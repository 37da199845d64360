package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autocart-server/store-api/internal/config"
	"autocart-server/store-api/internal/interfaces/httpserver/routes/v1/catalog"
	"autocart-server/store-api/internal/interfaces/httpserver/routes/v1/chat"
	"autocart-server/store-api/internal/interfaces/httpserver/routes/v1/conversation"
	"autocart-server/store-api/internal/interfaces/httpserver/routes/v1/order"
	"autocart-server/store-api/internal/interfaces/httpserver/routes/v1/payment"
)

type V1Route struct {
	chat         *chat.ChatRoute
	conversation *conversation.ConversationRoute
	catalog      *catalog.CatalogRoute
	order        *order.OrderRoute
	payment      *payment.PaymentRoute
}

func NewV1Route(
	chat *chat.ChatRoute,
	conversation *conversation.ConversationRoute,
	catalog *catalog.CatalogRoute,
	order *order.OrderRoute,
	payment *payment.PaymentRoute,
) *V1Route {
	return &V1Route{
		chat,
		conversation,
		catalog,
		order,
		payment,
	}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")

	v1Route.chat.RegisterRouter(v1Router)
	v1Route.conversation.RegisterRouter(v1Router)
	v1Route.catalog.RegisterRouter(v1Router)
	v1Route.order.RegisterRouter(v1Router)
	v1Route.payment.RegisterRouter(v1Router)
}

// RegisterPublicRouter registers endpoints that do not require authentication
func (v1Route *V1Route) RegisterPublicRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Router.GET("/version", GetVersion)
	v1Router.GET("/healthz", GetHealthz)
	v1Router.GET("/readyz", GetReadyz)
}

// GetVersion returns the current build version of the API server.
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": config.Version})
}

// GetHealthz reports liveness for orchestrators and monitoring.
func GetHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetReadyz reports whether the service is ready to accept traffic.
func GetReadyz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
