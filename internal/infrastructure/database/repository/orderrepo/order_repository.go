package orderrepo

import (
	"context"

	"gorm.io/gorm"

	"autocart-server/store-api/internal/domain/order"
	"autocart-server/store-api/internal/domain/query"
	"autocart-server/store-api/internal/infrastructure/database/dbschema"
	"autocart-server/store-api/internal/infrastructure/database/transaction"
	"autocart-server/store-api/internal/utils/functional"
	"autocart-server/store-api/internal/utils/platformerrors"
)

type OrderGormRepository struct {
	db *transaction.Database
}

var _ order.Repository = (*OrderGormRepository)(nil)

func NewOrderGormRepository(db *transaction.Database) order.Repository {
	return &OrderGormRepository{db}
}

// Create implements order.Repository. The order and its package are
// written in one transaction so a tracking record never dangles.
func (repo *OrderGormRepository) Create(ctx context.Context, ord *order.Order) error {
	model := dbschema.NewSchemaOrder(ord)
	err := repo.db.RunInTx(ctx, func(ctx context.Context) error {
		if err := repo.db.GetTx(ctx).WithContext(ctx).Create(model).Error; err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create order")
		}
		return nil
	})
	if err != nil {
		return err
	}

	ord.ID = model.ID
	ord.CreatedAt = model.CreatedAt
	ord.UpdatedAt = model.UpdatedAt
	if ord.Package != nil && model.Package != nil {
		ord.Package.ID = model.Package.ID
		ord.Package.OrderID = model.Package.OrderID
		ord.Package.CreatedAt = model.Package.CreatedAt
		ord.Package.UpdatedAt = model.Package.UpdatedAt
	}
	return nil
}

// FindByFilter implements order.Repository.
func (repo *OrderGormRepository) FindByFilter(ctx context.Context, filter order.OrderFilter, pagination *query.Pagination) ([]*order.Order, error) {
	sql := repo.applyFilter(repo.db.GetTx(ctx).WithContext(ctx), filter).
		Preload("Package")
	sql = applyPagination(sql, pagination)

	var rows []*dbschema.Order
	if err := sql.Find(&rows).Error; err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find orders")
	}

	result := functional.Map(rows, func(item *dbschema.Order) *order.Order {
		return item.EtoD()
	})
	return result, nil
}

// Count implements order.Repository.
func (repo *OrderGormRepository) Count(ctx context.Context, filter order.OrderFilter) (int64, error) {
	var count int64
	sql := repo.applyFilter(repo.db.GetTx(ctx).WithContext(ctx), filter)
	if err := sql.Count(&count).Error; err != nil {
		return 0, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to count orders")
	}
	return count, nil
}

// FindByPublicID implements order.Repository.
func (repo *OrderGormRepository) FindByPublicID(ctx context.Context, publicID string) (*order.Order, error) {
	var entity dbschema.Order
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Preload("Package").
		Where("public_id = ?", publicID).
		First(&entity).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"order not found",
			err,
			"6a8c0e2d-4f6b-4a8d-9c1e-3b5d7f9a1c0e",
		)
	}
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find order by public ID")
	}
	return entity.EtoD(), nil
}

// FindPackageByTracking implements order.Repository.
func (repo *OrderGormRepository) FindPackageByTracking(ctx context.Context, trackingNumber string) (*order.Package, error) {
	var entity dbschema.Package
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Where("tracking_number = ?", trackingNumber).
		First(&entity).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"package not found",
			err,
			"2c4e6a8b-0d1f-4c6e-8a0b-5d7f9b1d3f5a",
		)
	}
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find package by tracking number")
	}
	return entity.EtoD(), nil
}

func (repo *OrderGormRepository) applyFilter(sql *gorm.DB, filter order.OrderFilter) *gorm.DB {
	sql = sql.Model(&dbschema.Order{})
	if filter.UserID != nil {
		sql = sql.Where("user_id = ?", *filter.UserID)
	}
	if filter.OrderRef != nil {
		sql = sql.Where("order_ref = ?", *filter.OrderRef)
	}
	return sql
}

func applyPagination(sql *gorm.DB, pagination *query.Pagination) *gorm.DB {
	if pagination == nil {
		return sql
	}
	if pagination.After != nil {
		sql = sql.Where("id > ?", *pagination.After)
	}
	if pagination.Order != "" {
		sql = sql.Order("id " + pagination.Order)
	}
	if pagination.Limit != nil {
		sql = sql.Limit(*pagination.Limit)
	}
	if pagination.Offset != nil {
		sql = sql.Offset(*pagination.Offset)
	}
	return sql
}
