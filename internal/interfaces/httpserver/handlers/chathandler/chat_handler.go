package chathandler

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"autocart-server/store-api/internal/domain/chat"
	"autocart-server/store-api/internal/domain/conversation"
	"autocart-server/store-api/internal/infrastructure/metrics"
	"autocart-server/store-api/internal/infrastructure/observability"
	chatrequests "autocart-server/store-api/internal/interfaces/httpserver/requests/chat"
	chatresponses "autocart-server/store-api/internal/interfaces/httpserver/responses/chat"
	"autocart-server/store-api/internal/utils/platformerrors"
)

// ChatHandler drives assistant turns: it resolves the conversation, runs
// the engine and persists both sides of the exchange.
type ChatHandler struct {
	engine              *chat.Engine
	conversationService *conversation.ConversationService
	logger              zerolog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(
	engine *chat.Engine,
	conversationService *conversation.ConversationService,
	logger zerolog.Logger,
) *ChatHandler {
	return &ChatHandler{
		engine:              engine,
		conversationService: conversationService,
		logger:              logger,
	}
}

// SendMessage processes one user message and returns the assistant's turn.
func (h *ChatHandler) SendMessage(
	ctx context.Context,
	userID uint,
	conversationID string,
	req chatrequests.SendMessageRequest,
) (*chatresponses.TurnResponse, error) {
	ctx, span := observability.StartSpan(ctx, "store-api", "ChatHandler.SendMessage")
	defer span.End()

	conv, err := h.conversationService.GetConversationByPublicIDAndUserID(ctx, conversationID, userID)
	if err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
			return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "invalid conversation id")
		}
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "conversation not found")
	}

	turn, err := h.engine.Respond(ctx, conv.PublicID, userID, req.Message)
	if err != nil {
		observability.RecordError(ctx, err)
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to process message")
	}

	observability.AddSpanAttributes(ctx, attribute.String("chat.intent", string(turn.Intent)))
	metrics.RecordChatTurn(string(turn.Intent))

	// Persistence is best effort from here on: the engine has already
	// advanced the session, so a failed write must not swallow the turn.
	intent := string(turn.Intent)
	if _, err := h.conversationService.AppendMessage(ctx, conv, conversation.MessageRoleUser, req.Message, &intent); err != nil {
		observability.RecordError(ctx, err)
		h.logger.Warn().Err(err).Str("conversation_id", conv.PublicID).Msg("failed to store user message")
	}

	// First user message names the conversation
	if err := h.conversationService.EnsureTitle(ctx, conv, req.Message); err != nil {
		h.logger.Warn().Err(err).Str("conversation_id", conv.PublicID).Msg("failed to set conversation title")
	}

	replies := make([]*conversation.Message, 0, len(turn.Replies))
	for _, reply := range turn.Replies {
		msg, err := h.conversationService.AppendMessage(ctx, conv, conversation.MessageRoleAssistant, reply, nil)
		if err != nil {
			observability.RecordError(ctx, err)
			h.logger.Warn().Err(err).Str("conversation_id", conv.PublicID).Msg("failed to store assistant message")
			msg = &conversation.Message{
				Role:      conversation.MessageRoleAssistant,
				Content:   reply,
				CreatedAt: time.Now(),
			}
		}
		replies = append(replies, msg)
	}

	return chatresponses.NewTurnResponse(conv.PublicID, turn, replies), nil
}
