package dbschema

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"autocart-server/store-api/internal/domain/catalog"
	"autocart-server/store-api/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Product{})
}

// Product represents the persisted catalog entry. Prices use numeric
// columns so no precision is lost; tags are stored as a JSON array.
type Product struct {
	BaseModel
	PublicID   string           `gorm:"type:varchar(50);uniqueIndex;not null"`
	Name       string           `gorm:"type:varchar(255);not null;index"`
	Category   string           `gorm:"type:varchar(100);not null;index"`
	Seller     string           `gorm:"type:varchar(255);not null"`
	Price      decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	OfferPrice *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity   int              `gorm:"not null;default:0"`
	Rating     float64          `gorm:"not null;default:0"`
	Tags       datatypes.JSON   `gorm:"type:jsonb"`
}

// NewSchemaProduct converts a domain product into a schema instance.
func NewSchemaProduct(p *catalog.Product) (*Product, error) {
	if p == nil {
		return nil, nil
	}

	var tags datatypes.JSON
	if len(p.Tags) > 0 {
		data, err := json.Marshal(p.Tags)
		if err != nil {
			return nil, err
		}
		tags = datatypes.JSON(data)
	}

	return &Product{
		BaseModel: BaseModel{
			ID:        p.ID,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		},
		PublicID:   p.PublicID,
		Name:       p.Name,
		Category:   p.Category,
		Seller:     p.Seller,
		Price:      p.Price,
		OfferPrice: p.OfferPrice,
		Quantity:   p.Quantity,
		Rating:     p.Rating,
		Tags:       tags,
	}, nil
}

// EtoD converts a schema product back to the domain representation.
func (p *Product) EtoD() (*catalog.Product, error) {
	if p == nil {
		return nil, nil
	}

	var tags []string
	if len(p.Tags) > 0 {
		if err := json.Unmarshal(p.Tags, &tags); err != nil {
			return nil, err
		}
	}

	return &catalog.Product{
		ID:         p.ID,
		PublicID:   p.PublicID,
		Name:       p.Name,
		Category:   p.Category,
		Seller:     p.Seller,
		Price:      p.Price,
		OfferPrice: p.OfferPrice,
		Quantity:   p.Quantity,
		Rating:     p.Rating,
		Tags:       tags,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}, nil
}
