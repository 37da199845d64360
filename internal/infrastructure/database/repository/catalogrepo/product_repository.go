package catalogrepo

import (
	"context"

	"gorm.io/gorm"

	"autocart-server/store-api/internal/domain/catalog"
	"autocart-server/store-api/internal/infrastructure/database/dbschema"
	"autocart-server/store-api/internal/infrastructure/database/transaction"
	"autocart-server/store-api/internal/utils/platformerrors"
)

type ProductGormRepository struct {
	db *transaction.Database
}

var _ catalog.Repository = (*ProductGormRepository)(nil)

func NewProductGormRepository(db *transaction.Database) catalog.Repository {
	return &ProductGormRepository{db: db}
}

// Create implements catalog.Repository.
func (repo *ProductGormRepository) Create(ctx context.Context, product *catalog.Product) error {
	model, err := dbschema.NewSchemaProduct(product)
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to encode product")
	}
	if err := repo.db.GetTx(ctx).WithContext(ctx).Create(model).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create product")
	}
	product.ID = model.ID
	product.CreatedAt = model.CreatedAt
	product.UpdatedAt = model.UpdatedAt
	return nil
}

// BulkCreate implements catalog.Repository.
func (repo *ProductGormRepository) BulkCreate(ctx context.Context, products []*catalog.Product) error {
	if len(products) == 0 {
		return nil
	}

	models := make([]*dbschema.Product, 0, len(products))
	for _, product := range products {
		model, err := dbschema.NewSchemaProduct(product)
		if err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to encode product")
		}
		models = append(models, model)
	}

	if err := repo.db.GetTx(ctx).WithContext(ctx).CreateInBatches(models, 100).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to bulk create products")
	}

	for i, model := range models {
		products[i].ID = model.ID
		products[i].CreatedAt = model.CreatedAt
		products[i].UpdatedAt = model.UpdatedAt
	}
	return nil
}

// FindAll implements catalog.Repository. Results keep insertion order so
// the storefront lists products in the order they were seeded.
func (repo *ProductGormRepository) FindAll(ctx context.Context) ([]*catalog.Product, error) {
	var entities []*dbschema.Product
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Order("id ASC").
		Find(&entities).
		Error
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to list products")
	}
	return repo.toDomain(ctx, entities)
}

// FindByFilter implements catalog.Repository.
func (repo *ProductGormRepository) FindByFilter(ctx context.Context, filter catalog.ProductFilter) ([]*catalog.Product, error) {
	sql := repo.db.GetTx(ctx).WithContext(ctx).Model(&dbschema.Product{})
	if filter.Category != nil {
		sql = sql.Where("LOWER(category) = LOWER(?)", *filter.Category)
	}
	if filter.OnlyOffer {
		sql = sql.Where("offer_price IS NOT NULL AND offer_price < price")
	}

	var entities []*dbschema.Product
	if err := sql.Order("id ASC").Find(&entities).Error; err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find products by filter")
	}
	return repo.toDomain(ctx, entities)
}

// FindByPublicID implements catalog.Repository.
func (repo *ProductGormRepository) FindByPublicID(ctx context.Context, publicID string) (*catalog.Product, error) {
	var entity dbschema.Product
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&entity).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"product not found",
			err,
			"0f6e2d8a-4b1c-4e9f-a3d5-7c8b9e0f1a2d",
		)
	}
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find product by public ID")
	}
	product, err := entity.EtoD()
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to decode product")
	}
	return product, nil
}

// Count implements catalog.Repository.
func (repo *ProductGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Model(&dbschema.Product{}).
		Count(&count).
		Error
	if err != nil {
		return 0, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to count products")
	}
	return count, nil
}

// DecrementQuantity implements catalog.Repository. The guard keeps the
// quantity from going negative under concurrent purchases.
func (repo *ProductGormRepository) DecrementQuantity(ctx context.Context, id uint) error {
	result := repo.db.GetTx(ctx).WithContext(ctx).
		Model(&dbschema.Product{}).
		Where("id = ? AND quantity > 0", id).
		Update("quantity", gorm.Expr("quantity - 1"))
	if result.Error != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, result.Error, "failed to decrement product quantity")
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeConflict,
			"product out of stock",
			gorm.ErrRecordNotFound,
			"8d3c5a7f-9e1b-4d6a-b8c0-2f4e6a8c0d1e",
		)
	}
	return nil
}

func (repo *ProductGormRepository) toDomain(ctx context.Context, entities []*dbschema.Product) ([]*catalog.Product, error) {
	products := make([]*catalog.Product, 0, len(entities))
	for _, entity := range entities {
		product, err := entity.EtoD()
		if err != nil {
			return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to decode product")
		}
		products = append(products, product)
	}
	return products, nil
}
