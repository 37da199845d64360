package conversationrepo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"autocart-server/store-api/internal/domain/conversation"
	"autocart-server/store-api/internal/domain/query"
	"autocart-server/store-api/internal/infrastructure/database/dbschema"
	"autocart-server/store-api/internal/infrastructure/database/transaction"
	"autocart-server/store-api/internal/utils/functional"
	"autocart-server/store-api/internal/utils/platformerrors"
)

type ConversationGormRepository struct {
	db *transaction.Database
}

var _ conversation.ConversationRepository = (*ConversationGormRepository)(nil)

func NewConversationGormRepository(db *transaction.Database) conversation.ConversationRepository {
	return &ConversationGormRepository{db}
}

// Create implements conversation.ConversationRepository.
func (repo *ConversationGormRepository) Create(ctx context.Context, conv *conversation.Conversation) error {
	model := dbschema.NewSchemaConversation(conv)
	if err := repo.db.GetTx(ctx).WithContext(ctx).Create(model).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create conversation")
	}
	// Update the domain object with generated ID and timestamps
	conv.ID = model.ID
	conv.CreatedAt = model.CreatedAt
	conv.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByFilter implements conversation.ConversationRepository.
func (repo *ConversationGormRepository) FindByFilter(ctx context.Context, filter conversation.ConversationFilter, pagination *query.Pagination) ([]*conversation.Conversation, error) {
	sql := repo.applyFilter(repo.db.GetTx(ctx).WithContext(ctx), filter)
	sql = applyPagination(sql, pagination)

	var rows []*dbschema.Conversation
	if err := sql.Find(&rows).Error; err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find conversations")
	}

	result := functional.Map(rows, func(item *dbschema.Conversation) *conversation.Conversation {
		return item.EtoD()
	})
	return result, nil
}

// Count implements conversation.ConversationRepository.
func (repo *ConversationGormRepository) Count(ctx context.Context, filter conversation.ConversationFilter) (int64, error) {
	var count int64
	sql := repo.applyFilter(repo.db.GetTx(ctx).WithContext(ctx), filter)
	if err := sql.Count(&count).Error; err != nil {
		return 0, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to count conversations")
	}
	return count, nil
}

// FindByID implements conversation.ConversationRepository.
func (repo *ConversationGormRepository) FindByID(ctx context.Context, id uint) (*conversation.Conversation, error) {
	var entity dbschema.Conversation
	err := repo.applyFilter(repo.db.GetTx(ctx).WithContext(ctx), conversation.ConversationFilter{ID: &id}).
		First(&entity).
		Error
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find conversation by ID")
	}
	return entity.EtoD(), nil
}

// FindByPublicID implements conversation.ConversationRepository.
func (repo *ConversationGormRepository) FindByPublicID(ctx context.Context, publicID string) (*conversation.Conversation, error) {
	var entity dbschema.Conversation
	err := repo.applyFilter(repo.db.GetTx(ctx).WithContext(ctx), conversation.ConversationFilter{PublicID: &publicID}).
		First(&entity).
		Error
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find conversation by public ID")
	}
	return entity.EtoD(), nil
}

// Update implements conversation.ConversationRepository.
func (repo *ConversationGormRepository) Update(ctx context.Context, conv *conversation.Conversation) error {
	model := dbschema.NewSchemaConversation(conv)
	if err := repo.db.GetTx(ctx).WithContext(ctx).
		Where("id = ?", conv.ID).
		Save(model).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to update conversation")
	}
	conv.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete implements conversation.ConversationRepository. Messages are
// soft deleted with their conversation.
func (repo *ConversationGormRepository) Delete(ctx context.Context, id uint) error {
	return repo.db.RunInTx(ctx, func(ctx context.Context) error {
		tx := repo.db.GetTx(ctx).WithContext(ctx)
		if err := tx.Where("conversation_id = ?", id).Delete(&dbschema.Message{}).Error; err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to delete conversation messages")
		}
		if err := tx.Delete(&dbschema.Conversation{}, id).Error; err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to delete conversation")
		}
		return nil
	})
}

// AddMessage implements conversation.ConversationRepository.
func (repo *ConversationGormRepository) AddMessage(ctx context.Context, conversationID uint, message *conversation.Message) error {
	message.ConversationID = conversationID

	model := dbschema.NewSchemaMessage(message)
	if err := repo.db.GetTx(ctx).WithContext(ctx).Create(model).Error; err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to create message")
	}

	message.ID = model.ID
	message.CreatedAt = model.CreatedAt
	return nil
}

// ListMessages implements conversation.ConversationRepository. Messages
// come back in conversation order.
func (repo *ConversationGormRepository) ListMessages(ctx context.Context, conversationID uint, pagination *query.Pagination) ([]*conversation.Message, error) {
	sql := repo.db.GetTx(ctx).WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("sequence_number ASC")
	sql = applyPagination(sql, pagination)

	var rows []*dbschema.Message
	if err := sql.Find(&rows).Error; err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to list messages")
	}

	result := functional.Map(rows, func(item *dbschema.Message) *conversation.Message {
		return item.EtoD()
	})
	return result, nil
}

// CountMessages implements conversation.ConversationRepository.
func (repo *ConversationGormRepository) CountMessages(ctx context.Context, conversationID uint) (int64, error) {
	var count int64
	err := repo.db.GetTx(ctx).WithContext(ctx).
		Model(&dbschema.Message{}).
		Where("conversation_id = ?", conversationID).
		Count(&count).
		Error
	if err != nil {
		return 0, platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to count messages")
	}
	return count, nil
}

// DeleteOlderThan implements conversation.ConversationRepository.
func (repo *ConversationGormRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	err := repo.db.RunInTx(ctx, func(ctx context.Context) error {
		tx := repo.db.GetTx(ctx).WithContext(ctx)

		var ids []uint
		if err := tx.Model(&dbschema.Conversation{}).
			Where("updated_at < ?", cutoff).
			Pluck("id", &ids).Error; err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to find expired conversations")
		}
		if len(ids) == 0 {
			return nil
		}

		if err := tx.Where("conversation_id IN ?", ids).Delete(&dbschema.Message{}).Error; err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerRepository, err, "failed to delete expired messages")
		}

		result := tx.Delete(&dbschema.Conversation{}, ids)
		if result.Error != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerRepository, result.Error, "failed to delete expired conversations")
		}
		deleted = result.RowsAffected
		return nil
	})
	return deleted, err
}

func (repo *ConversationGormRepository) applyFilter(sql *gorm.DB, filter conversation.ConversationFilter) *gorm.DB {
	sql = sql.Model(&dbschema.Conversation{})
	if filter.ID != nil {
		sql = sql.Where("id = ?", *filter.ID)
	}
	if filter.PublicID != nil {
		sql = sql.Where("public_id = ?", *filter.PublicID)
	}
	if filter.UserID != nil {
		sql = sql.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		sql = sql.Where("status = ?", *filter.Status)
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
