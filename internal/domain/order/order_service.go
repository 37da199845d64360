package order

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"autocart-server/store-api/internal/domain/query"
	"autocart-server/store-api/internal/utils/idgen"
	"autocart-server/store-api/internal/utils/platformerrors"
)

const (
	defaultCarrier  = "AutoCart Logistics"
	defaultLocation = "Warehouse"
	deliveryWindow  = 7 * 24 * time.Hour
	defaultCurrency = "TSD"
)

// Service handles order creation and lookups.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateFromPurchaseInput carries everything needed to record a paid order.
type CreateFromPurchaseInput struct {
	UserID      uint
	ProductID   uint
	ProductName string
	Seller      string
	Amount      decimal.Decimal
	PaymentRef  string
}

// CreateFromPurchase records a paid order together with its shipment. The
// order reference doubles as the package tracking number, and the estimated
// delivery is one week out.
func (s *Service) CreateFromPurchase(ctx context.Context, input CreateFromPurchaseInput) (*Order, error) {
	publicID, err := idgen.GenerateSecureID("ord", 16)
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal, "failed to generate order ID", err, "e028d7c4-5f91-4ab3-8d62-70b1c9e4f5a8")
	}

	orderRef := fmt.Sprintf("ORD%d%03d", time.Now().UnixMilli(), rand.Intn(1000))

	ord := &Order{
		PublicID:    publicID,
		OrderRef:    orderRef,
		UserID:      input.UserID,
		ProductID:   input.ProductID,
		ProductName: input.ProductName,
		Seller:      input.Seller,
		Amount:      input.Amount,
		Currency:    defaultCurrency,
		Status:      OrderStatusPaid,
		PaymentRef:  input.PaymentRef,
		Package: &Package{
			TrackingNumber: orderRef,
			Carrier:        defaultCarrier,
			Location:       defaultLocation,
			ETA:            time.Now().Add(deliveryWindow),
			Status:         PackageStatusPreparing,
		},
	}

	if err := s.repo.Create(ctx, ord); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create order")
	}

	return ord, nil
}

// FindOrdersByUser lists a user's orders with pagination.
func (s *Service) FindOrdersByUser(ctx context.Context, userID uint, pagination *query.Pagination) ([]*Order, int64, error) {
	filter := OrderFilter{UserID: &userID}

	orders, err := s.repo.FindByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list orders")
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to count orders")
	}

	return orders, total, nil
}

// GetOrderByPublicIDAndUser resolves an order and verifies ownership.
func (s *Service) GetOrderByPublicIDAndUser(ctx context.Context, publicID string, userID uint) (*Order, error) {
	ord, err := s.repo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "order not found")
	}

	if ord.UserID != userID {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound, "order not found", nil, "4bd61f2e-9a80-43c7-b5d4-e1f83a62c097")
	}

	return ord, nil
}

// TrackPackage resolves a shipment by tracking number.
func (s *Service) TrackPackage(ctx context.Context, trackingNumber string) (*Package, error) {
	pkg, err := s.repo.FindPackageByTracking(ctx, trackingNumber)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "package not found")
	}
	return pkg, nil
}
