// Package conversation provides conversation and message domain models for
// the shopping assistant.
package conversation

import (
	"context"
	"time"

	"autocart-server/store-api/internal/domain/query"
)

type ConversationStatus string

const (
	ConversationStatusActive  ConversationStatus = "active"
	ConversationStatusDeleted ConversationStatus = "deleted"
)

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// Conversation is one assistant chat session. The assistant's dialogue
// context (pending selection, last query, purchase progress) is held
// in memory by the chat engine and deliberately not persisted here.
type Conversation struct {
	ID        uint               `json:"-"`
	PublicID  string             `json:"id"`
	Title     *string            `json:"title,omitempty"`
	UserID    uint               `json:"-"`
	Status    ConversationStatus `json:"status"`
	Messages  []Message          `json:"messages,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// Message is a single utterance in a conversation. Intent records the
// assistant's classification of a user message, nil for assistant replies.
type Message struct {
	ID             uint        `json:"-"`
	ConversationID uint        `json:"-"`
	PublicID       string      `json:"id"`
	Role           MessageRole `json:"role"`
	Content        string      `json:"content"`
	Intent         *string     `json:"intent,omitempty"`
	SequenceNumber int         `json:"-"`
	CreatedAt      time.Time   `json:"created_at"`
}

type ConversationFilter struct {
	ID       *uint
	PublicID *string
	UserID   *uint
	Status   *ConversationStatus
}

type ConversationRepository interface {
	Create(ctx context.Context, conversation *Conversation) error
	FindByFilter(ctx context.Context, filter ConversationFilter, pagination *query.Pagination) ([]*Conversation, error)
	Count(ctx context.Context, filter ConversationFilter) (int64, error)
	FindByID(ctx context.Context, id uint) (*Conversation, error)
	FindByPublicID(ctx context.Context, publicID string) (*Conversation, error)
	Update(ctx context.Context, conversation *Conversation) error
	Delete(ctx context.Context, id uint) error

	AddMessage(ctx context.Context, conversationID uint, message *Message) error
	ListMessages(ctx context.Context, conversationID uint, pagination *query.Pagination) ([]*Message, error)
	CountMessages(ctx context.Context, conversationID uint) (int64, error)

	// DeleteOlderThan removes conversations (and their messages) whose last
	// update predates the cutoff. Used by the retention sweep.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
