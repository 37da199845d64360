package paymenthandler

import (
	"context"
	"time"

	"autocart-server/store-api/internal/infrastructure/payman"
	paymentrequests "autocart-server/store-api/internal/interfaces/httpserver/requests/payment"
	paymentresponses "autocart-server/store-api/internal/interfaces/httpserver/responses/payment"
	"autocart-server/store-api/internal/utils/platformerrors"
)

// PaymentHandler manages the wallet connection lifecycle
type PaymentHandler struct {
	gateway *payman.Client
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(gateway *payman.Client) *PaymentHandler {
	return &PaymentHandler{gateway: gateway}
}

// ExchangeCode trades an OAuth authorization code for a wallet session
func (h *PaymentHandler) ExchangeCode(
	ctx context.Context,
	req paymentrequests.ExchangeCodeRequest,
) (*paymentresponses.SessionResponse, error) {
	token, err := h.gateway.ExchangeCode(ctx, req.Code)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to connect wallet")
	}
	return paymentresponses.NewSessionResponse(true, token.ExpiresAt), nil
}

// GetSession reports whether a wallet is currently connected
func (h *PaymentHandler) GetSession(ctx context.Context) *paymentresponses.SessionResponse {
	connected, expiresAt := h.gateway.Status(ctx)
	return paymentresponses.NewSessionResponse(connected, expiresAt)
}

// Disconnect drops the wallet connection
func (h *PaymentHandler) Disconnect(ctx context.Context) (*paymentresponses.SessionResponse, error) {
	if err := h.gateway.Disconnect(ctx); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to disconnect wallet")
	}
	return paymentresponses.NewSessionResponse(false, time.Time{}), nil
}
