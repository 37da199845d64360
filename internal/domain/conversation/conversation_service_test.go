package conversation

import (
	"context"
	"strings"
	"testing"
	"time"

	"autocart-server/store-api/internal/domain/query"
)

type fakeRepo struct {
	conversations map[uint]*Conversation
	messages      map[uint][]*Message
	nextID        uint
	deleted       []uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		conversations: make(map[uint]*Conversation),
		messages:      make(map[uint][]*Message),
		nextID:        1,
	}
}

func (f *fakeRepo) Create(ctx context.Context, conv *Conversation) error {
	conv.ID = f.nextID
	f.nextID++
	conv.UpdatedAt = time.Now()
	f.conversations[conv.ID] = conv
	return nil
}
func (f *fakeRepo) FindByFilter(ctx context.Context, filter ConversationFilter, pagination *query.Pagination) ([]*Conversation, error) {
	out := make([]*Conversation, 0)
	for _, conv := range f.conversations {
		if filter.UserID != nil && conv.UserID != *filter.UserID {
			continue
		}
		out = append(out, conv)
	}
	return out, nil
}
func (f *fakeRepo) Count(ctx context.Context, filter ConversationFilter) (int64, error) {
	convs, _ := f.FindByFilter(ctx, filter, nil)
	return int64(len(convs)), nil
}
func (f *fakeRepo) FindByID(ctx context.Context, id uint) (*Conversation, error) {
	return f.conversations[id], nil
}
func (f *fakeRepo) FindByPublicID(ctx context.Context, publicID string) (*Conversation, error) {
	for _, conv := range f.conversations {
		if conv.PublicID == publicID {
			return conv, nil
		}
	}
	return nil, nil
}
func (f *fakeRepo) Update(ctx context.Context, conv *Conversation) error {
	f.conversations[conv.ID] = conv
	return nil
}
func (f *fakeRepo) Delete(ctx context.Context, id uint) error {
	delete(f.conversations, id)
	delete(f.messages, id)
	f.deleted = append(f.deleted, id)
	return nil
}
func (f *fakeRepo) AddMessage(ctx context.Context, conversationID uint, msg *Message) error {
	f.messages[conversationID] = append(f.messages[conversationID], msg)
	return nil
}
func (f *fakeRepo) ListMessages(ctx context.Context, conversationID uint, pagination *query.Pagination) ([]*Message, error) {
	return f.messages[conversationID], nil
}
func (f *fakeRepo) CountMessages(ctx context.Context, conversationID uint) (int64, error) {
	return int64(len(f.messages[conversationID])), nil
}
func (f *fakeRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	for id, conv := range f.conversations {
		if conv.UpdatedAt.Before(cutoff) {
			delete(f.conversations, id)
			delete(f.messages, id)
			deleted++
		}
	}
	return deleted, nil
}

func TestCreateConversationWithWelcome(t *testing.T) {
	svc := NewConversationService(newFakeRepo())

	conv, err := svc.CreateConversation(context.Background(), CreateConversationInput{
		UserID:         1,
		WelcomeMessage: "Welcome!",
	})
	if err != nil {
		t.Fatalf("CreateConversation failed: %v", err)
	}

	if !strings.HasPrefix(conv.PublicID, "conv_") {
		t.Fatalf("unexpected public ID: %q", conv.PublicID)
	}
	if conv.Status != ConversationStatusActive {
		t.Fatalf("expected active status, got %s", conv.Status)
	}
	if len(conv.Messages) != 1 || conv.Messages[0].Role != MessageRoleAssistant {
		t.Fatalf("expected one assistant welcome message, got %+v", conv.Messages)
	}
	if conv.Messages[0].SequenceNumber != 1 {
		t.Fatalf("welcome message must be sequence 1, got %d", conv.Messages[0].SequenceNumber)
	}
}

func TestGetConversationValidatesIDAndOwnership(t *testing.T) {
	svc := NewConversationService(newFakeRepo())

	conv, err := svc.CreateConversation(context.Background(), CreateConversationInput{UserID: 1})
	if err != nil {
		t.Fatalf("CreateConversation failed: %v", err)
	}

	if _, err := svc.GetConversationByPublicIDAndUserID(context.Background(), "bogus", 1); err == nil {
		t.Fatal("malformed ID must be rejected")
	}
	if _, err := svc.GetConversationByPublicIDAndUserID(context.Background(), conv.PublicID, 2); err == nil {
		t.Fatal("another user must not see the conversation")
	}
	got, err := svc.GetConversationByPublicIDAndUserID(context.Background(), conv.PublicID, 1)
	if err != nil || got.ID != conv.ID {
		t.Fatalf("owner lookup failed: %v", err)
	}
}

func TestAppendMessageSequencing(t *testing.T) {
	svc := NewConversationService(newFakeRepo())

	conv, err := svc.CreateConversation(context.Background(), CreateConversationInput{UserID: 1})
	if err != nil {
		t.Fatalf("CreateConversation failed: %v", err)
	}

	intent := "greeting"
	first, err := svc.AppendMessage(context.Background(), conv, MessageRoleUser, "hello", &intent)
	if err != nil {
		t.Fatalf("AppendMessage failed: %v", err)
	}
	second, err := svc.AppendMessage(context.Background(), conv, MessageRoleAssistant, "Hello User!", nil)
	if err != nil {
		t.Fatalf("AppendMessage failed: %v", err)
	}

	if first.SequenceNumber != 1 || second.SequenceNumber != 2 {
		t.Fatalf("expected sequence 1,2 got %d,%d", first.SequenceNumber, second.SequenceNumber)
	}
	if !strings.HasPrefix(first.PublicID, "msg_") {
		t.Fatalf("unexpected message ID: %q", first.PublicID)
	}
	if first.Intent == nil || *first.Intent != "greeting" {
		t.Fatal("user message must record its classified intent")
	}
	if second.Intent != nil {
		t.Fatal("assistant replies carry no intent")
	}
}

func TestEnsureTitle(t *testing.T) {
	repo := newFakeRepo()
	svc := NewConversationService(repo)

	conv, err := svc.CreateConversation(context.Background(), CreateConversationInput{UserID: 1})
	if err != nil {
		t.Fatalf("CreateConversation failed: %v", err)
	}

	long := "show me everything you have in the electronics category please"
	if err := svc.EnsureTitle(context.Background(), conv, long); err != nil {
		t.Fatalf("EnsureTitle failed: %v", err)
	}
	if conv.Title == nil {
		t.Fatal("title must be set")
	}
	if len(*conv.Title) > 33 {
		t.Fatalf("title must be cut to the limit, got %q", *conv.Title)
	}
	if !strings.HasSuffix(*conv.Title, "...") {
		t.Fatalf("cut title must end with ellipsis, got %q", *conv.Title)
	}

	// A second call must not overwrite an existing title.
	before := *conv.Title
	if err := svc.EnsureTitle(context.Background(), conv, "different message"); err != nil {
		t.Fatalf("EnsureTitle failed: %v", err)
	}
	if *conv.Title != before {
		t.Fatal("existing title must be preserved")
	}
}

func TestPurgeExpired(t *testing.T) {
	repo := newFakeRepo()
	svc := NewConversationService(repo)

	old, err := svc.CreateConversation(context.Background(), CreateConversationInput{UserID: 1})
	if err != nil {
		t.Fatalf("CreateConversation failed: %v", err)
	}
	repo.conversations[old.ID].UpdatedAt = time.Now().Add(-48 * time.Hour)

	if _, err := svc.CreateConversation(context.Background(), CreateConversationInput{UserID: 1}); err != nil {
		t.Fatalf("CreateConversation failed: %v", err)
	}

	deleted, err := svc.PurgeExpired(context.Background(), 24*time.Hour)
	if err != nil {
		t.Fatalf("PurgeExpired failed: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected one purged conversation, got %d", deleted)
	}
	if len(repo.conversations) != 1 {
		t.Fatalf("expected one surviving conversation, got %d", len(repo.conversations))
	}
}
