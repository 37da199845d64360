package conversation

import (
	"context"
	"fmt"
	"time"

	"autocart-server/store-api/internal/domain/query"
	"autocart-server/store-api/internal/utils/idgen"
	"autocart-server/store-api/internal/utils/platformerrors"
	"autocart-server/store-api/internal/utils/stringutils"
)

const (
	publicIDLength = 16
	titleMaxLen    = 30
)

// ConversationService handles business logic for conversations
type ConversationService struct {
	repo ConversationRepository
}

// NewConversationService creates a new conversation service
func NewConversationService(repo ConversationRepository) *ConversationService {
	return &ConversationService{repo: repo}
}

// CreateConversationInput represents the input for creating a conversation
type CreateConversationInput struct {
	UserID         uint
	Title          *string
	WelcomeMessage string
}

// CreateConversation opens a new conversation. When WelcomeMessage is set,
// it is appended as the first assistant message.
func (s *ConversationService) CreateConversation(ctx context.Context, input CreateConversationInput) (*Conversation, error) {
	publicID, err := idgen.GenerateSecureID("conv", publicIDLength)
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal, "failed to generate conversation ID", err, "3f1c8a27-9b6e-4d05-8a41-2c7e5f90d1b4")
	}

	conv := &Conversation{
		PublicID: publicID,
		Title:    input.Title,
		UserID:   input.UserID,
		Status:   ConversationStatusActive,
	}

	if err := s.repo.Create(ctx, conv); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create conversation")
	}

	if input.WelcomeMessage != "" {
		msg, err := s.AppendMessage(ctx, conv, MessageRoleAssistant, input.WelcomeMessage, nil)
		if err != nil {
			return nil, err
		}
		conv.Messages = append(conv.Messages, *msg)
	}

	return conv, nil
}

// GetConversationByPublicIDAndUserID retrieves a conversation by public ID and validates ownership
func (s *ConversationService) GetConversationByPublicIDAndUserID(ctx context.Context, publicID string, userID uint) (*Conversation, error) {
	if !idgen.ValidateIDFormat(publicID, "conv") {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "invalid conversation ID", nil, "7d42b9f0-1e35-4c86-a2d9-6b08e3f4c571")
	}

	conv, err := s.repo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "conversation not found")
	}

	// Verify ownership
	if conv.UserID != userID {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound, "conversation not found", nil, "91ac5e83-07df-4b29-b6f1-d45a20c8e396")
	}

	return conv, nil
}

// FindConversationsByFilter retrieves conversations using filter criteria with pagination
func (s *ConversationService) FindConversationsByFilter(ctx context.Context, filter ConversationFilter, pagination *query.Pagination) ([]*Conversation, int64, error) {
	conversations, err := s.repo.FindByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list conversations")
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to count conversations")
	}

	return conversations, total, nil
}

// UpdateConversation persists conversation changes
func (s *ConversationService) UpdateConversation(ctx context.Context, conv *Conversation) (*Conversation, error) {
	if err := s.repo.Update(ctx, conv); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update conversation")
	}
	return conv, nil
}

// DeleteConversation marks a conversation as deleted
func (s *ConversationService) DeleteConversation(ctx context.Context, conv *Conversation) error {
	if err := s.repo.Delete(ctx, conv.ID); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to delete conversation")
	}
	return nil
}

// AppendMessage adds a message to the conversation with the next sequence number
func (s *ConversationService) AppendMessage(ctx context.Context, conv *Conversation, role MessageRole, content string, intent *string) (*Message, error) {
	publicID, err := idgen.GenerateSecureID("msg", publicIDLength)
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeInternal, "failed to generate message ID", err, "b5e9f218-3a70-4dc6-95b2-8c1d4e6a0f37")
	}

	count, err := s.repo.CountMessages(ctx, conv.ID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to count messages")
	}

	msg := &Message{
		ConversationID: conv.ID,
		PublicID:       publicID,
		Role:           role,
		Content:        content,
		Intent:         intent,
		SequenceNumber: int(count) + 1,
	}

	if err := s.repo.AddMessage(ctx, conv.ID, msg); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to append message")
	}

	return msg, nil
}

// ListMessages returns conversation messages in sequence order
func (s *ConversationService) ListMessages(ctx context.Context, conv *Conversation, pagination *query.Pagination) ([]*Message, int64, error) {
	messages, err := s.repo.ListMessages(ctx, conv.ID, pagination)
	if err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list messages")
	}

	total, err := s.repo.CountMessages(ctx, conv.ID)
	if err != nil {
		return nil, 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to count messages")
	}

	return messages, total, nil
}

// EnsureTitle derives the conversation title from the first user message.
// Titles longer than 30 characters are cut with a trailing ellipsis; blank
// input falls back to a timestamp-based default.
func (s *ConversationService) EnsureTitle(ctx context.Context, conv *Conversation, firstUserMessage string) error {
	if conv.Title != nil && *conv.Title != "" {
		return nil
	}

	title := stringutils.GenerateTitle(firstUserMessage, titleMaxLen)
	if title == "" {
		title = fmt.Sprintf("Chat: %s", time.Now().Format(time.RFC3339))
	}

	conv.Title = &title
	if err := s.repo.Update(ctx, conv); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to set conversation title")
	}
	return nil
}

// PurgeExpired deletes conversations older than the retention window.
func (s *ConversationService) PurgeExpired(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	deleted, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to purge expired conversations")
	}
	return deleted, nil
}
