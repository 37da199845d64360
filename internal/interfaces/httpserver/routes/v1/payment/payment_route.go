package payment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autocart-server/store-api/internal/interfaces/httpserver/handlers/paymenthandler"
	paymentrequests "autocart-server/store-api/internal/interfaces/httpserver/requests/payment"
	"autocart-server/store-api/internal/interfaces/httpserver/responses"
	"autocart-server/store-api/internal/utils/platformerrors"
)

type PaymentRoute struct {
	handler *paymenthandler.PaymentHandler
}

func NewPaymentRoute(handler *paymenthandler.PaymentHandler) *PaymentRoute {
	return &PaymentRoute{handler: handler}
}

func (route *PaymentRoute) RegisterRouter(router gin.IRouter) {
	paymentRouter := router.Group("/payments")
	paymentRouter.POST("/oauth/exchange", route.exchangeCode)
	paymentRouter.GET("/session", route.getSession)
	paymentRouter.DELETE("/session", route.disconnect)
}

// exchangeCode trades an OAuth authorization code for a wallet session.
func (route *PaymentRoute) exchangeCode(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req paymentrequests.ExchangeCodeRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "code is required", "1c3e5b7d-9f1a-4c3e-5b7d-9f1a3c5e7b9d")
		return
	}

	response, err := route.handler.ExchangeCode(ctx, req)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to connect wallet")
		return
	}

	reqCtx.JSON(http.StatusOK, response)
}

func (route *PaymentRoute) getSession(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	reqCtx.JSON(http.StatusOK, route.handler.GetSession(ctx))
}

func (route *PaymentRoute) disconnect(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	response, err := route.handler.Disconnect(ctx)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to disconnect wallet")
		return
	}

	reqCtx.JSON(http.StatusOK, response)
}
