package paymanrepo

import (
	"context"

	"gorm.io/gorm"

	"autocart-server/store-api/internal/domain/payment"
	"autocart-server/store-api/internal/infrastructure/database/dbschema"
	"autocart-server/store-api/internal/infrastructure/database/transaction"
	"autocart-server/store-api/internal/utils/platformerrors"
)

// TokenGormRepository persists the single active gateway token. Saving a
// new token replaces whatever was stored before.
type TokenGormRepository struct {
	db *transaction.Database
}

var _ payment.TokenStore = (*TokenGormRepository)(nil)

func NewTokenGormRepository(db *transaction.Database) payment.TokenStore {
	return &TokenGormRepository{db}
}

// Load implements payment.TokenStore.
func (repo *TokenGormRepository) Load(ctx context.Context) (*payment.StoredToken, error) {
	var entity dbschema.PaymanToken
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Order("id DESC").
		First(&entity).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to load gateway token")
	}
	return entity.EtoD(), nil
}

// Save implements payment.TokenStore.
func (repo *TokenGormRepository) Save(ctx context.Context, token *payment.StoredToken) error {
	return repo.db.RunInTx(ctx, func(ctx context.Context) error {
		tx := repo.db.GetTx(ctx).WithContext(ctx)
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().
			Delete(&dbschema.PaymanToken{}).Error; err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to clear previous gateway token")
		}
		if err := tx.Create(dbschema.NewSchemaPaymanToken(token)).Error; err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to save gateway token")
		}
		return nil
	})
}

// Clear implements payment.TokenStore.
func (repo *TokenGormRepository) Clear(ctx context.Context) error {
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().
		Delete(&dbschema.PaymanToken{}).
		Error
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to clear gateway token")
	}
	return nil
}
