package dbschema

import (
	"time"

	"github.com/shopspring/decimal"

	"autocart-server/store-api/internal/domain/order"
	"autocart-server/store-api/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Order{})
	database.RegisterSchemaForAutoMigrate(Package{})
}

// Order represents the database schema for completed purchases
type Order struct {
	BaseModel
	PublicID    string            `gorm:"type:varchar(50);uniqueIndex;not null"`
	OrderRef    string            `gorm:"type:varchar(50);uniqueIndex;not null"`
	UserID      uint              `gorm:"index;not null"`
	User        User              `gorm:"foreignKey:UserID"`
	ProductID   uint              `gorm:"index;not null"`
	ProductName string            `gorm:"type:varchar(256);not null"`
	Seller      string            `gorm:"type:varchar(256);not null"`
	Amount      decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	Currency    string            `gorm:"type:varchar(10);not null"`
	Status      order.OrderStatus `gorm:"type:varchar(20);not null"`
	PaymentRef  string            `gorm:"type:varchar(100)"`

	Package *Package `gorm:"foreignKey:OrderID"`
}

// Package represents the database schema for order shipments
type Package struct {
	BaseModel
	OrderID        uint                `gorm:"uniqueIndex;not null"`
	TrackingNumber string              `gorm:"type:varchar(50);uniqueIndex;not null"`
	Carrier        string              `gorm:"type:varchar(100);not null"`
	Location       string              `gorm:"type:varchar(256);not null"`
	ETA            time.Time           `gorm:"not null"`
	Status         order.PackageStatus `gorm:"type:varchar(20);not null"`
}

// NewSchemaOrder creates a database schema from the domain order
func NewSchemaOrder(o *order.Order) *Order {
	schema := &Order{
		BaseModel: BaseModel{
			ID:        o.ID,
			CreatedAt: o.CreatedAt,
			UpdatedAt: o.UpdatedAt,
		},
		PublicID:    o.PublicID,
		OrderRef:    o.OrderRef,
		UserID:      o.UserID,
		ProductID:   o.ProductID,
		ProductName: o.ProductName,
		Seller:      o.Seller,
		Amount:      o.Amount,
		Currency:    o.Currency,
		Status:      o.Status,
		PaymentRef:  o.PaymentRef,
	}

	if o.Package != nil {
		schema.Package = NewSchemaPackage(o.Package)
	}

	return schema
}

// EtoD converts the database schema to the domain order (Entity to Domain)
func (o *Order) EtoD() *order.Order {
	domainOrder := &order.Order{
		ID:          o.ID,
		PublicID:    o.PublicID,
		OrderRef:    o.OrderRef,
		UserID:      o.UserID,
		ProductID:   o.ProductID,
		ProductName: o.ProductName,
		Seller:      o.Seller,
		Amount:      o.Amount,
		Currency:    o.Currency,
		Status:      o.Status,
		PaymentRef:  o.PaymentRef,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}

	if o.Package != nil {
		domainOrder.Package = o.Package.EtoD()
	}

	return domainOrder
}

// NewSchemaPackage creates a database schema from the domain package
func NewSchemaPackage(p *order.Package) *Package {
	return &Package{
		BaseModel: BaseModel{
			ID:        p.ID,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		},
		OrderID:        p.OrderID,
		TrackingNumber: p.TrackingNumber,
		Carrier:        p.Carrier,
		Location:       p.Location,
		ETA:            p.ETA,
		Status:         p.Status,
	}
}

// EtoD converts the database schema to the domain package (Entity to Domain)
func (p *Package) EtoD() *order.Package {
	return &order.Package{
		ID:             p.ID,
		OrderID:        p.OrderID,
		TrackingNumber: p.TrackingNumber,
		Carrier:        p.Carrier,
		Location:       p.Location,
		ETA:            p.ETA,
		Status:         p.Status,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
