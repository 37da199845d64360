package orderhandler

import (
	"context"

	"autocart-server/store-api/internal/domain/order"
	"autocart-server/store-api/internal/domain/query"
	orderresponses "autocart-server/store-api/internal/interfaces/httpserver/responses/order"
	"autocart-server/store-api/internal/utils/platformerrors"
)

// OrderHandler handles order and package tracking HTTP requests
type OrderHandler struct {
	orderService *order.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *order.Service) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// ListOrders lists the user's orders
func (h *OrderHandler) ListOrders(
	ctx context.Context,
	userID uint,
	pagination *query.Pagination,
) (*orderresponses.OrderListResponse, error) {
	orders, total, err := h.orderService.FindOrdersByUser(ctx, userID, pagination)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list orders")
	}

	hasMore := false
	if pagination != nil && pagination.Limit != nil {
		hasMore = int64(pagination.OffsetOrZero()+len(orders)) < total
	}

	return orderresponses.NewOrderListResponse(orders, hasMore, total), nil
}

// GetOrder returns a single order owned by the user
func (h *OrderHandler) GetOrder(
	ctx context.Context,
	userID uint,
	orderID string,
) (*orderresponses.OrderResponse, error) {
	ord, err := h.orderService.GetOrderByPublicIDAndUser(ctx, orderID, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "order not found")
	}
	return orderresponses.NewOrderResponse(ord), nil
}

// TrackPackage resolves a shipment by tracking number
func (h *OrderHandler) TrackPackage(
	ctx context.Context,
	trackingNumber string,
) (*orderresponses.PackageResponse, error) {
	pkg, err := h.orderService.TrackPackage(ctx, trackingNumber)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "package not found")
	}
	return orderresponses.NewPackageResponse(pkg), nil
}
