package conversationhandler

import (
	"context"

	"autocart-server/store-api/internal/domain/chat"
	"autocart-server/store-api/internal/domain/conversation"
	"autocart-server/store-api/internal/domain/query"
	"autocart-server/store-api/internal/infrastructure/metrics"
	conversationrequests "autocart-server/store-api/internal/interfaces/httpserver/requests/conversation"
	conversationresponses "autocart-server/store-api/internal/interfaces/httpserver/responses/conversation"
	"autocart-server/store-api/internal/utils/platformerrors"
)

// ConversationHandler handles conversation-related HTTP requests
type ConversationHandler struct {
	conversationService *conversation.ConversationService
	engine              *chat.Engine
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(
	conversationService *conversation.ConversationService,
	engine *chat.Engine,
) *ConversationHandler {
	return &ConversationHandler{
		conversationService: conversationService,
		engine:              engine,
	}
}

// CreateConversation creates a new conversation
func (h *ConversationHandler) CreateConversation(
	ctx context.Context,
	userID uint,
	req conversationrequests.CreateConversationRequest,
) (*conversationresponses.ConversationResponse, error) {
	input := conversation.CreateConversationInput{
		UserID: userID,
		Title:  req.Title,
	}
	if req.Welcome {
		input.WelcomeMessage = chat.WelcomeMessage
	}

	conv, err := h.conversationService.CreateConversation(ctx, input)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to create conversation")
	}

	metrics.ConversationsCreatedTotal.Inc()
	return conversationresponses.NewConversationResponse(conv), nil
}

// GetConversation retrieves a conversation by ID
func (h *ConversationHandler) GetConversation(
	ctx context.Context,
	userID uint,
	conversationID string,
) (*conversationresponses.ConversationResponse, error) {
	conv, err := h.conversationService.GetConversationByPublicIDAndUserID(ctx, conversationID, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to get conversation")
	}

	return conversationresponses.NewConversationResponse(conv), nil
}

// ListConversations lists the user's conversations
func (h *ConversationHandler) ListConversations(
	ctx context.Context,
	userID uint,
	pagination *query.Pagination,
) (*conversationresponses.ConversationListResponse, error) {
	status := conversation.ConversationStatusActive
	filter := conversation.ConversationFilter{
		UserID: &userID,
		Status: &status,
	}

	conversations, total, err := h.conversationService.FindConversationsByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list conversations")
	}

	hasMore := false
	if pagination != nil && pagination.Limit != nil {
		hasMore = int64(pagination.OffsetOrZero()+len(conversations)) < total
	}

	return conversationresponses.NewConversationListResponse(conversations, hasMore, total), nil
}

// UpdateConversation updates a conversation's title
func (h *ConversationHandler) UpdateConversation(
	ctx context.Context,
	userID uint,
	conversationID string,
	req conversationrequests.UpdateConversationRequest,
) (*conversationresponses.ConversationResponse, error) {
	conv, err := h.conversationService.GetConversationByPublicIDAndUserID(ctx, conversationID, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to get conversation")
	}

	if req.Title != nil {
		conv.Title = req.Title
	}

	updated, err := h.conversationService.UpdateConversation(ctx, conv)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to update conversation")
	}

	return conversationresponses.NewConversationResponse(updated), nil
}

// DeleteConversation deletes a conversation and drops its dialogue context
func (h *ConversationHandler) DeleteConversation(
	ctx context.Context,
	userID uint,
	conversationID string,
) (*conversationresponses.ConversationDeletedResponse, error) {
	conv, err := h.conversationService.GetConversationByPublicIDAndUserID(ctx, conversationID, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to get conversation")
	}

	if err := h.conversationService.DeleteConversation(ctx, conv); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to delete conversation")
	}

	// The in-memory dialogue context dies with the conversation
	h.engine.Sessions().Drop(conv.PublicID)

	return conversationresponses.NewConversationDeletedResponse(conv.PublicID), nil
}

// ListMessages lists the messages of a conversation in order
func (h *ConversationHandler) ListMessages(
	ctx context.Context,
	userID uint,
	conversationID string,
	pagination *query.Pagination,
) (*conversationresponses.MessageListResponse, error) {
	conv, err := h.conversationService.GetConversationByPublicIDAndUserID(ctx, conversationID, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to get conversation")
	}

	messages, total, err := h.conversationService.ListMessages(ctx, conv, pagination)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list messages")
	}

	hasMore := false
	if pagination != nil && pagination.Limit != nil {
		hasMore = int64(pagination.OffsetOrZero()+len(messages)) < total
	}

	return conversationresponses.NewMessageListResponse(messages, hasMore, total), nil
}
