package order

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autocart-server/store-api/internal/interfaces/httpserver/handlers/orderhandler"
	"autocart-server/store-api/internal/interfaces/httpserver/middlewares"
	"autocart-server/store-api/internal/interfaces/httpserver/requests"
	"autocart-server/store-api/internal/interfaces/httpserver/responses"
	"autocart-server/store-api/internal/utils/platformerrors"
)

type OrderRoute struct {
	handler *orderhandler.OrderHandler
}

func NewOrderRoute(handler *orderhandler.OrderHandler) *OrderRoute {
	return &OrderRoute{handler: handler}
}

func (route *OrderRoute) RegisterRouter(router gin.IRouter) {
	orderRouter := router.Group("/orders")
	orderRouter.GET("", route.listOrders)
	orderRouter.GET("/:order_public_id", route.getOrder)

	router.GET("/packages/:tracking_number", route.trackPackage)
}

func (route *OrderRoute) listOrders(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	user, ok := middlewares.CurrentUser(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "authentication required", "7f9a1c3e-5b7d-4f9a-1c3e-5b7d9f1a3c5e")
		return
	}

	pagination, err := requests.GetPaginationFromQuery(reqCtx)
	if err != nil {
		responses.HandleError(reqCtx, err, "invalid pagination parameters")
		return
	}

	response, err := route.handler.ListOrders(ctx, user.ID, pagination)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to list orders")
		return
	}

	reqCtx.JSON(http.StatusOK, response)
}

func (route *OrderRoute) getOrder(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	user, ok := middlewares.CurrentUser(reqCtx)
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "authentication required", "9a1c3e5b-7d9f-4a1c-3e5b-7d9f1a3c5e7b")
		return
	}

	response, err := route.handler.GetOrder(ctx, user.ID, reqCtx.Param("order_public_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "order not found")
		return
	}

	reqCtx.JSON(http.StatusOK, response)
}

func (route *OrderRoute) trackPackage(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	response, err := route.handler.TrackPackage(ctx, reqCtx.Param("tracking_number"))
	if err != nil {
		responses.HandleError(reqCtx, err, "package not found")
		return
	}

	reqCtx.JSON(http.StatusOK, response)
}
