package catalog

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"autocart-server/store-api/internal/utils/idgen"
	"autocart-server/store-api/internal/utils/platformerrors"
)

// Service exposes catalog reads used by the assistant and the HTTP API.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// All returns every product ordered by insertion.
func (s *Service) All(ctx context.Context) ([]*Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "list products")
	}
	return products, nil
}

// Categories returns distinct category names in first-seen catalog order.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "list categories")
	}

	seen := make(map[string]struct{}, len(products))
	categories := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories, nil
}

// Offers returns products that currently carry a discounted price.
func (s *Service) Offers(ctx context.Context) ([]*Product, error) {
	products, err := s.repo.FindByFilter(ctx, ProductFilter{OnlyOffer: true})
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "list offers")
	}
	return products, nil
}

// ByCategory returns products in the given category, matched case-insensitively.
func (s *Service) ByCategory(ctx context.Context, category string) ([]*Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "list products by category")
	}

	wanted := strings.ToLower(strings.TrimSpace(category))
	out := make([]*Product, 0)
	for _, p := range products {
		if strings.ToLower(p.Category) == wanted {
			out = append(out, p)
		}
	}
	return out, nil
}

// Get resolves a product by its public ID.
func (s *Service) Get(ctx context.Context, publicID string) (*Product, error) {
	product, err := s.repo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "get product")
	}
	return product, nil
}

// ReserveUnit decrements stock after a completed purchase.
func (s *Service) ReserveUnit(ctx context.Context, id uint) error {
	if err := s.repo.DecrementQuantity(ctx, id); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "reserve product unit")
	}
	return nil
}

type seedProduct struct {
	Name       string   `yaml:"name"`
	Category   string   `yaml:"category"`
	Seller     string   `yaml:"seller"`
	Price      string   `yaml:"price"`
	OfferPrice *string  `yaml:"offer_price"`
	Quantity   int      `yaml:"quantity"`
	Rating     float64  `yaml:"rating"`
	Tags       []string `yaml:"tags"`
}

type seedFile struct {
	Products []seedProduct `yaml:"products"`
}

// SeedFromFile loads the catalog from a YAML seed file. It is a no-op when
// the catalog already contains products, so restarts do not duplicate rows.
func (s *Service) SeedFromFile(ctx context.Context, path string) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "count products")
	}
	if count > 0 {
		return 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read catalog seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("parse catalog seed file: %w", err)
	}

	products := make([]*Product, 0, len(file.Products))
	for _, entry := range file.Products {
		price, err := decimal.NewFromString(entry.Price)
		if err != nil {
			return 0, fmt.Errorf("invalid price for %q: %w", entry.Name, err)
		}

		var offerPrice *decimal.Decimal
		if entry.OfferPrice != nil {
			offer, err := decimal.NewFromString(*entry.OfferPrice)
			if err != nil {
				return 0, fmt.Errorf("invalid offer price for %q: %w", entry.Name, err)
			}
			offerPrice = &offer
		}

		publicID, err := idgen.GenerateSecureID("prod", 16)
		if err != nil {
			return 0, fmt.Errorf("generate product id: %w", err)
		}

		products = append(products, &Product{
			PublicID:   publicID,
			Name:       entry.Name,
			Category:   entry.Category,
			Seller:     entry.Seller,
			Price:      price,
			OfferPrice: offerPrice,
			Quantity:   entry.Quantity,
			Rating:     entry.Rating,
			Tags:       entry.Tags,
		})
	}

	if err := s.repo.BulkCreate(ctx, products); err != nil {
		return 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "seed products")
	}
	return len(products), nil
}
