package conversationresponses

import (
	"autocart-server/store-api/internal/domain/conversation"
)

// ConversationResponse represents a single conversation
type ConversationResponse struct {
	ID        string  `json:"id"`
	Object    string  `json:"object"`
	Title     *string `json:"title,omitempty"`
	Status    string  `json:"status"`
	CreatedAt int64   `json:"created_at"`
}

// ConversationListResponse represents a paginated list of conversations
type ConversationListResponse struct {
	Object  string                 `json:"object"`
	Data    []ConversationResponse `json:"data"`
	FirstID string                 `json:"first_id"`
	LastID  string                 `json:"last_id"`
	HasMore bool                   `json:"has_more"`
	Total   int64                  `json:"total"`
}

// ConversationDeletedResponse represents the delete confirmation response
type ConversationDeletedResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// MessageResponse represents a single message in a conversation
type MessageResponse struct {
	ID        string  `json:"id"`
	Object    string  `json:"object"`
	Role      string  `json:"role"`
	Content   string  `json:"content"`
	Intent    *string `json:"intent,omitempty"`
	CreatedAt int64   `json:"created_at"`
}

// MessageListResponse represents the message list of a conversation
type MessageListResponse struct {
	Object  string            `json:"object"`
	Data    []MessageResponse `json:"data"`
	FirstID string            `json:"first_id"`
	LastID  string            `json:"last_id"`
	HasMore bool              `json:"has_more"`
	Total   int64             `json:"total"`
}

// NewConversationResponse creates a response from a domain conversation
func NewConversationResponse(conv *conversation.Conversation) *ConversationResponse {
	return &ConversationResponse{
		ID:        conv.PublicID,
		Object:    "conversation",
		Title:     conv.Title,
		Status:    string(conv.Status),
		CreatedAt: conv.CreatedAt.Unix(),
	}
}

// NewConversationListResponse creates a conversation list response
func NewConversationListResponse(conversations []*conversation.Conversation, hasMore bool, total int64) *ConversationListResponse {
	data := make([]ConversationResponse, 0, len(conversations))
	for _, conv := range conversations {
		if conv == nil {
			continue
		}
		data = append(data, *NewConversationResponse(conv))
	}

	firstID := ""
	lastID := ""
	if len(data) > 0 {
		firstID = data[0].ID
		lastID = data[len(data)-1].ID
	}

	return &ConversationListResponse{
		Object:  "list",
		Data:    data,
		FirstID: firstID,
		LastID:  lastID,
		HasMore: hasMore,
		Total:   total,
	}
}

// NewConversationDeletedResponse creates a delete response
func NewConversationDeletedResponse(publicID string) *ConversationDeletedResponse {
	return &ConversationDeletedResponse{
		ID:      publicID,
		Object:  "conversation.deleted",
		Deleted: true,
	}
}

// NewMessageResponse creates a response from a domain message
func NewMessageResponse(msg *conversation.Message) *MessageResponse {
	return &MessageResponse{
		ID:        msg.PublicID,
		Object:    "conversation.message",
		Role:      string(msg.Role),
		Content:   msg.Content,
		Intent:    msg.Intent,
		CreatedAt: msg.CreatedAt.Unix(),
	}
}

// NewMessageListResponse creates a message list response
func NewMessageListResponse(messages []*conversation.Message, hasMore bool, total int64) *MessageListResponse {
	data := make([]MessageResponse, 0, len(messages))
	for _, msg := range messages {
		if msg == nil {
			continue
		}
		data = append(data, *NewMessageResponse(msg))
	}

	firstID := ""
	lastID := ""
	if len(data) > 0 {
		firstID = data[0].ID
		lastID = data[len(data)-1].ID
	}

	return &MessageListResponse{
		Object:  "list",
		Data:    data,
		FirstID: firstID,
		LastID:  lastID,
		HasMore: hasMore,
		Total:   total,
	}
}
