package orderresponses

import (
	"time"

	"autocart-server/store-api/internal/domain/order"
)

// PackageResponse represents the shipment attached to an order
type PackageResponse struct {
	TrackingNumber string `json:"tracking_number"`
	Carrier        string `json:"carrier"`
	Location       string `json:"location"`
	ETA            string `json:"eta"`
	Status         string `json:"status"`
}

// OrderResponse represents a completed purchase
type OrderResponse struct {
	ID          string           `json:"id"`
	Object      string           `json:"object"`
	OrderRef    string           `json:"order_ref"`
	ProductName string           `json:"product_name"`
	Seller      string           `json:"seller"`
	Amount      string           `json:"amount"`
	Currency    string           `json:"currency"`
	Status      string           `json:"status"`
	Package     *PackageResponse `json:"package,omitempty"`
	CreatedAt   int64            `json:"created_at"`
}

// OrderListResponse represents a paginated list of orders
type OrderListResponse struct {
	Object  string          `json:"object"`
	Data    []OrderResponse `json:"data"`
	HasMore bool            `json:"has_more"`
	Total   int64           `json:"total"`
}

// NewPackageResponse creates a response from a domain package
func NewPackageResponse(p *order.Package) *PackageResponse {
	return &PackageResponse{
		TrackingNumber: p.TrackingNumber,
		Carrier:        p.Carrier,
		Location:       p.Location,
		ETA:            p.ETA.Format(time.RFC3339),
		Status:         string(p.Status),
	}
}

// NewOrderResponse creates a response from a domain order
func NewOrderResponse(o *order.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:          o.PublicID,
		Object:      "order",
		OrderRef:    o.OrderRef,
		ProductName: o.ProductName,
		Seller:      o.Seller,
		Amount:      o.Amount.StringFixed(2),
		Currency:    o.Currency,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt.Unix(),
	}
	if o.Package != nil {
		resp.Package = NewPackageResponse(o.Package)
	}
	return resp
}

// NewOrderListResponse creates an order list response
func NewOrderListResponse(orders []*order.Order, hasMore bool, total int64) *OrderListResponse {
	data := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		if o == nil {
			continue
		}
		data = append(data, *NewOrderResponse(o))
	}
	return &OrderListResponse{
		Object:  "list",
		Data:    data,
		HasMore: hasMore,
		Total:   total,
	}
}
