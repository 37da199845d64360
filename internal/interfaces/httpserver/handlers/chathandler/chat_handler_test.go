package chathandler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"autocart-server/store-api/internal/domain/catalog"
	"autocart-server/store-api/internal/domain/chat"
	"autocart-server/store-api/internal/domain/conversation"
	"autocart-server/store-api/internal/domain/order"
	"autocart-server/store-api/internal/domain/query"
	"autocart-server/store-api/internal/domain/user"
	chatrequests "autocart-server/store-api/internal/interfaces/httpserver/requests/chat"
)

type stubCatalogRepo struct{}

func (stubCatalogRepo) Create(ctx context.Context, p *catalog.Product) error { return nil }
func (stubCatalogRepo) BulkCreate(ctx context.Context, products []*catalog.Product) error {
	return nil
}
func (stubCatalogRepo) FindAll(ctx context.Context) ([]*catalog.Product, error) { return nil, nil }
func (stubCatalogRepo) FindByFilter(ctx context.Context, filter catalog.ProductFilter) ([]*catalog.Product, error) {
	return nil, nil
}
func (stubCatalogRepo) FindByPublicID(ctx context.Context, publicID string) (*catalog.Product, error) {
	return nil, nil
}
func (stubCatalogRepo) Count(ctx context.Context) (int64, error) { return 0, nil }
func (stubCatalogRepo) DecrementQuantity(ctx context.Context, id uint) error {
	return nil
}

type stubOrderRepo struct{}

func (stubOrderRepo) Create(ctx context.Context, ord *order.Order) error { return nil }
func (stubOrderRepo) FindByFilter(ctx context.Context, filter order.OrderFilter, pagination *query.Pagination) ([]*order.Order, error) {
	return nil, nil
}
func (stubOrderRepo) Count(ctx context.Context, filter order.OrderFilter) (int64, error) {
	return 0, nil
}
func (stubOrderRepo) FindByPublicID(ctx context.Context, publicID string) (*order.Order, error) {
	return nil, nil
}
func (stubOrderRepo) FindPackageByTracking(ctx context.Context, trackingNumber string) (*order.Package, error) {
	return nil, nil
}

type stubUserRepo struct{}

func (stubUserRepo) FindByIssuerAndSubject(ctx context.Context, issuer, subject string) (*user.User, error) {
	return nil, nil
}
func (stubUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) { return nil, nil }
func (stubUserRepo) Upsert(ctx context.Context, u *user.User) (*user.User, error) {
	return u, nil
}
func (stubUserRepo) UpdateName(ctx context.Context, id uint, name string) error { return nil }

type stubPayments struct{}

func (stubPayments) Connected(ctx context.Context) bool { return false }
func (stubPayments) EnsurePayee(ctx context.Context, name, email string) (string, error) {
	return "", nil
}
func (stubPayments) SendPayment(ctx context.Context, payeeID string, amount decimal.Decimal, memo string) (string, error) {
	return "", nil
}

// brokenMessageStore resolves the conversation fine but fails every write.
type brokenMessageStore struct {
	conv     *conversation.Conversation
	addCalls int
}

func (f *brokenMessageStore) Create(ctx context.Context, conv *conversation.Conversation) error {
	return nil
}
func (f *brokenMessageStore) FindByFilter(ctx context.Context, filter conversation.ConversationFilter, pagination *query.Pagination) ([]*conversation.Conversation, error) {
	return nil, nil
}
func (f *brokenMessageStore) Count(ctx context.Context, filter conversation.ConversationFilter) (int64, error) {
	return 0, nil
}
func (f *brokenMessageStore) FindByID(ctx context.Context, id uint) (*conversation.Conversation, error) {
	return f.conv, nil
}
func (f *brokenMessageStore) FindByPublicID(ctx context.Context, publicID string) (*conversation.Conversation, error) {
	return f.conv, nil
}
func (f *brokenMessageStore) Update(ctx context.Context, conv *conversation.Conversation) error {
	return errors.New("database unavailable")
}
func (f *brokenMessageStore) Delete(ctx context.Context, id uint) error { return nil }
func (f *brokenMessageStore) AddMessage(ctx context.Context, conversationID uint, message *conversation.Message) error {
	f.addCalls++
	return errors.New("database unavailable")
}
func (f *brokenMessageStore) ListMessages(ctx context.Context, conversationID uint, pagination *query.Pagination) ([]*conversation.Message, error) {
	return nil, nil
}
func (f *brokenMessageStore) CountMessages(ctx context.Context, conversationID uint) (int64, error) {
	return 0, nil
}
func (f *brokenMessageStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

func TestSendMessageSurvivesMessageStoreFailure(t *testing.T) {
	repo := &brokenMessageStore{
		conv: &conversation.Conversation{ID: 1, PublicID: "conv_test1", UserID: 1},
	}
	convService := conversation.NewConversationService(repo)

	engine := chat.NewEngine(
		catalog.NewService(stubCatalogRepo{}),
		order.NewService(stubOrderRepo{}),
		user.NewService(stubUserRepo{}),
		stubPayments{},
		chat.NewSessions(),
		nil,
		3,
		"autocart.com",
		zerolog.Nop(),
	)

	handler := NewChatHandler(engine, convService, zerolog.Nop())

	resp, err := handler.SendMessage(context.Background(), 1, "conv_test1", chatrequests.SendMessageRequest{Message: "hello"})
	if err != nil {
		t.Fatalf("turn must survive a failing message store, got error: %v", err)
	}
	if resp.Intent != string(chat.IntentGreeting) {
		t.Fatalf("expected greeting intent, got %s", resp.Intent)
	}
	if len(resp.Messages) != 1 {
		t.Fatalf("expected the computed reply to be returned, got %d messages", len(resp.Messages))
	}
	if resp.Messages[0].Content != "Hello User! How can I help you today?" {
		t.Fatalf("unexpected reply content: %q", resp.Messages[0].Content)
	}
	if repo.addCalls == 0 {
		t.Fatal("expected the handler to attempt message persistence")
	}
}
