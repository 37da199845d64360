package cataloghandler

import (
	"context"

	"autocart-server/store-api/internal/domain/catalog"
	catalogresponses "autocart-server/store-api/internal/interfaces/httpserver/responses/catalog"
	"autocart-server/store-api/internal/utils/platformerrors"
)

// CatalogHandler handles product catalog HTTP requests
type CatalogHandler struct {
	catalogService *catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts returns the catalog, optionally narrowed to a category or
// to discounted products only.
func (h *CatalogHandler) ListProducts(
	ctx context.Context,
	category string,
	onlyOffers bool,
) (*catalogresponses.ProductListResponse, error) {
	var (
		products []*catalog.Product
		err      error
	)

	switch {
	case onlyOffers:
		products, err = h.catalogService.Offers(ctx)
	case category != "":
		products, err = h.catalogService.ByCategory(ctx, category)
	default:
		products, err = h.catalogService.All(ctx)
	}
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list products")
	}

	return catalogresponses.NewProductListResponse(products), nil
}

// ListCategories returns the distinct product categories in catalog order
func (h *CatalogHandler) ListCategories(ctx context.Context) (*catalogresponses.CategoryListResponse, error) {
	categories, err := h.catalogService.Categories(ctx)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list categories")
	}
	return catalogresponses.NewCategoryListResponse(categories), nil
}

// GetProduct returns a single product by public ID
func (h *CatalogHandler) GetProduct(ctx context.Context, productID string) (*catalogresponses.ProductResponse, error) {
	product, err := h.catalogService.Get(ctx, productID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "product not found")
	}
	return catalogresponses.NewProductResponse(product), nil
}
