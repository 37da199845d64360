// Package catalog provides the product catalog domain: products, categories,
// and current offers that the shopping assistant searches and presents.
package catalog

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Product models a single catalog entry. Price and OfferPrice are exact
// decimals so money never travels through floats.
type Product struct {
	ID         uint
	PublicID   string
	Name       string
	Category   string
	Seller     string
	Price      decimal.Decimal
	OfferPrice *decimal.Decimal
	Quantity   int
	Rating     float64
	Tags       []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasOffer reports whether the product currently has a discounted price.
func (p *Product) HasOffer() bool {
	return p.OfferPrice != nil
}

// EffectivePrice returns the offer price when present, otherwise the list
// price. This is the amount charged on purchase.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.OfferPrice != nil {
		return *p.OfferPrice
	}
	return p.Price
}

// ProductFilter narrows catalog queries.
type ProductFilter struct {
	Category  *string
	OnlyOffer bool
}

// Repository defines storage operations for products.
type Repository interface {
	Create(ctx context.Context, product *Product) error
	BulkCreate(ctx context.Context, products []*Product) error
	FindAll(ctx context.Context) ([]*Product, error)
	FindByFilter(ctx context.Context, filter ProductFilter) ([]*Product, error)
	FindByPublicID(ctx context.Context, publicID string) (*Product, error)
	Count(ctx context.Context) (int64, error)
	DecrementQuantity(ctx context.Context, id uint) error
}
