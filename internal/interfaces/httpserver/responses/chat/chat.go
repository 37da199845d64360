package chatresponses

import (
	"autocart-server/store-api/internal/domain/chat"
	"autocart-server/store-api/internal/domain/conversation"
	conversationresponses "autocart-server/store-api/internal/interfaces/httpserver/responses/conversation"
)

// TurnResponse is the assistant's answer to one user message. A turn can
// carry more than one reply, for example a processing notice followed by
// the payment confirmation.
type TurnResponse struct {
	Object         string                                  `json:"object"`
	ConversationID string                                  `json:"conversation_id"`
	Intent         string                                  `json:"intent"`
	Messages       []conversationresponses.MessageResponse `json:"messages"`
}

// NewTurnResponse builds the turn response from the resolved intent and
// the persisted assistant messages.
func NewTurnResponse(conversationPublicID string, turn *chat.Turn, replies []*conversation.Message) *TurnResponse {
	messages := make([]conversationresponses.MessageResponse, 0, len(replies))
	for _, msg := range replies {
		if msg == nil {
			continue
		}
		messages = append(messages, *conversationresponses.NewMessageResponse(msg))
	}

	return &TurnResponse{
		Object:         "chat.turn",
		ConversationID: conversationPublicID,
		Intent:         string(turn.Intent),
		Messages:       messages,
	}
}
