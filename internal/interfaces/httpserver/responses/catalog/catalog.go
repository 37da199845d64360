package catalogresponses

import (
	"autocart-server/store-api/internal/domain/catalog"
)

// ProductResponse represents a catalog product
type ProductResponse struct {
	ID         string   `json:"id"`
	Object     string   `json:"object"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Seller     string   `json:"seller"`
	Price      string   `json:"price"`
	OfferPrice *string  `json:"offer_price,omitempty"`
	Quantity   int      `json:"quantity"`
	Rating     float64  `json:"rating"`
	Tags       []string `json:"tags,omitempty"`
}

// ProductListResponse represents a list of products
type ProductListResponse struct {
	Object string            `json:"object"`
	Data   []ProductResponse `json:"data"`
	Total  int               `json:"total"`
}

// CategoryListResponse represents the distinct catalog categories
type CategoryListResponse struct {
	Object string   `json:"object"`
	Data   []string `json:"data"`
}

// NewProductResponse creates a response from a domain product
func NewProductResponse(p *catalog.Product) *ProductResponse {
	resp := &ProductResponse{
		ID:       p.PublicID,
		Object:   "product",
		Name:     p.Name,
		Category: p.Category,
		Seller:   p.Seller,
		Price:    p.Price.StringFixed(2),
		Quantity: p.Quantity,
		Rating:   p.Rating,
		Tags:     p.Tags,
	}
	if p.OfferPrice != nil {
		offer := p.OfferPrice.StringFixed(2)
		resp.OfferPrice = &offer
	}
	return resp
}

// NewProductListResponse creates a product list response
func NewProductListResponse(products []*catalog.Product) *ProductListResponse {
	data := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		data = append(data, *NewProductResponse(p))
	}
	return &ProductListResponse{
		Object: "list",
		Data:   data,
		Total:  len(data),
	}
}

// NewCategoryListResponse creates a category list response
func NewCategoryListResponse(categories []string) *CategoryListResponse {
	if categories == nil {
		categories = []string{}
	}
	return &CategoryListResponse{
		Object: "list",
		Data:   categories,
	}
}
