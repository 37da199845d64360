package dbschema

import (
	"autocart-server/store-api/internal/domain/conversation"
	"autocart-server/store-api/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Conversation{})
	database.RegisterSchemaForAutoMigrate(Message{})
}

// Conversation represents the database schema for assistant conversations
type Conversation struct {
	BaseModel
	PublicID string                          `gorm:"type:varchar(50);uniqueIndex;not null"`
	Title    *string                         `gorm:"type:varchar(256)"`
	UserID   uint                            `gorm:"index:idx_conversation_user_status;not null"`
	User     User                            `gorm:"foreignKey:UserID"`
	Status   conversation.ConversationStatus `gorm:"type:varchar(20);index:idx_conversation_user_status;not null;default:'active'"`

	Messages []Message `gorm:"foreignKey:ConversationID"`
}

// Message represents the database schema for conversation messages
type Message struct {
	BaseModel
	ConversationID uint                     `gorm:"index:idx_message_conversation_sequence;not null"`
	Conversation   Conversation             `gorm:"foreignKey:ConversationID"`
	PublicID       string                   `gorm:"type:varchar(50);uniqueIndex;not null"`
	Role           conversation.MessageRole `gorm:"type:varchar(20);not null"`
	Content        string                   `gorm:"type:text;not null"`
	Intent         *string                  `gorm:"type:varchar(50)"`
	SequenceNumber int                      `gorm:"index:idx_message_conversation_sequence;not null"`
}

// NewSchemaConversation creates a database schema from the domain conversation
func NewSchemaConversation(c *conversation.Conversation) *Conversation {
	return &Conversation{
		BaseModel: BaseModel{
			ID:        c.ID,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		},
		PublicID: c.PublicID,
		Title:    c.Title,
		UserID:   c.UserID,
		Status:   c.Status,
	}
}

// EtoD converts the database schema to the domain conversation (Entity to Domain)
func (c *Conversation) EtoD() *conversation.Conversation {
	conv := &conversation.Conversation{
		ID:        c.ID,
		PublicID:  c.PublicID,
		Title:     c.Title,
		UserID:    c.UserID,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}

	if len(c.Messages) > 0 {
		conv.Messages = make([]conversation.Message, 0, len(c.Messages))
		for _, msg := range c.Messages {
			conv.Messages = append(conv.Messages, *msg.EtoD())
		}
	}

	return conv
}

// NewSchemaMessage creates a database schema from the domain message
func NewSchemaMessage(m *conversation.Message) *Message {
	return &Message{
		BaseModel: BaseModel{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
		},
		ConversationID: m.ConversationID,
		PublicID:       m.PublicID,
		Role:           m.Role,
		Content:        m.Content,
		Intent:         m.Intent,
		SequenceNumber: m.SequenceNumber,
	}
}

// EtoD converts the database schema to the domain message (Entity to Domain)
func (m *Message) EtoD() *conversation.Message {
	return &conversation.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		PublicID:       m.PublicID,
		Role:           m.Role,
		Content:        m.Content,
		Intent:         m.Intent,
		SequenceNumber: m.SequenceNumber,
		CreatedAt:      m.CreatedAt,
	}
}
