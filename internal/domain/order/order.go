// Package order provides order and shipment tracking domain models.
package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"autocart-server/store-api/internal/domain/query"
)

type OrderStatus string

const (
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type PackageStatus string

const (
	PackageStatusPreparing PackageStatus = "preparing"
	PackageStatusShipped   PackageStatus = "shipped"
	PackageStatusDelivered PackageStatus = "delivered"
)

// Order records a completed purchase. Amount is the price actually charged,
// which is the offer price when the product was discounted.
type Order struct {
	ID          uint            `json:"-"`
	PublicID    string          `json:"id"`
	OrderRef    string          `json:"order_ref"`
	UserID      uint            `json:"-"`
	ProductID   uint            `json:"-"`
	ProductName string          `json:"product_name"`
	Seller      string          `json:"seller"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Status      OrderStatus     `json:"status"`
	PaymentRef  string          `json:"payment_ref,omitempty"`
	Package     *Package        `json:"package,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Package tracks the shipment created for an order. TrackingNumber equals
// the order reference.
type Package struct {
	ID             uint          `json:"-"`
	OrderID        uint          `json:"-"`
	TrackingNumber string        `json:"tracking_number"`
	Carrier        string        `json:"carrier"`
	Location       string        `json:"location"`
	ETA            time.Time     `json:"eta"`
	Status         PackageStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type OrderFilter struct {
	UserID   *uint
	OrderRef *string
}

type Repository interface {
	Create(ctx context.Context, order *Order) error
	FindByFilter(ctx context.Context, filter OrderFilter, pagination *query.Pagination) ([]*Order, error)
	Count(ctx context.Context, filter OrderFilter) (int64, error)
	FindByPublicID(ctx context.Context, publicID string) (*Order, error)
	FindPackageByTracking(ctx context.Context, trackingNumber string) (*Package, error)
}
