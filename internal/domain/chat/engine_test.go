package chat

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"autocart-server/store-api/internal/domain/catalog"
	"autocart-server/store-api/internal/domain/order"
	"autocart-server/store-api/internal/domain/query"
	"autocart-server/store-api/internal/domain/user"
)

type fakeCatalogRepo struct {
	products    []*catalog.Product
	decremented []uint
}

func (f *fakeCatalogRepo) Create(ctx context.Context, p *catalog.Product) error { return nil }
func (f *fakeCatalogRepo) BulkCreate(ctx context.Context, products []*catalog.Product) error {
	f.products = append(f.products, products...)
	return nil
}
func (f *fakeCatalogRepo) FindAll(ctx context.Context) ([]*catalog.Product, error) {
	return f.products, nil
}
func (f *fakeCatalogRepo) FindByFilter(ctx context.Context, filter catalog.ProductFilter) ([]*catalog.Product, error) {
	out := make([]*catalog.Product, 0)
	for _, p := range f.products {
		if filter.OnlyOffer && !p.HasOffer() {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
func (f *fakeCatalogRepo) FindByPublicID(ctx context.Context, publicID string) (*catalog.Product, error) {
	return nil, nil
}
func (f *fakeCatalogRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.products)), nil
}
func (f *fakeCatalogRepo) DecrementQuantity(ctx context.Context, id uint) error {
	f.decremented = append(f.decremented, id)
	return nil
}

type fakeOrderRepo struct {
	created []*order.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, ord *order.Order) error {
	ord.ID = uint(len(f.created) + 1)
	f.created = append(f.created, ord)
	return nil
}
func (f *fakeOrderRepo) FindByFilter(ctx context.Context, filter order.OrderFilter, pagination *query.Pagination) ([]*order.Order, error) {
	return f.created, nil
}
func (f *fakeOrderRepo) Count(ctx context.Context, filter order.OrderFilter) (int64, error) {
	return int64(len(f.created)), nil
}
func (f *fakeOrderRepo) FindByPublicID(ctx context.Context, publicID string) (*order.Order, error) {
	return nil, nil
}
func (f *fakeOrderRepo) FindPackageByTracking(ctx context.Context, trackingNumber string) (*order.Package, error) {
	return nil, nil
}

type fakeUserRepo struct {
	names map[uint]string
}

func (f *fakeUserRepo) FindByIssuerAndSubject(ctx context.Context, issuer, subject string) (*user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if name, ok := f.names[id]; ok {
		return &user.User{ID: id, Name: &name}, nil
	}
	return nil, nil
}
func (f *fakeUserRepo) Upsert(ctx context.Context, u *user.User) (*user.User, error) {
	return u, nil
}
func (f *fakeUserRepo) UpdateName(ctx context.Context, id uint, name string) error {
	if f.names == nil {
		f.names = make(map[uint]string)
	}
	f.names[id] = name
	return nil
}

type fakePayments struct {
	connected   bool
	payeeCalls  int
	sendCalls   int
	lastAmount  decimal.Decimal
	lastMemo    string
	lastPayee   string
	lastPayeeID string
}

func (f *fakePayments) Connected(ctx context.Context) bool { return f.connected }
func (f *fakePayments) EnsurePayee(ctx context.Context, name, email string) (string, error) {
	f.payeeCalls++
	f.lastPayee = name
	f.lastPayeeID = "payee_1"
	return "payee_1", nil
}
func (f *fakePayments) SendPayment(ctx context.Context, payeeID string, amount decimal.Decimal, memo string) (string, error) {
	f.sendCalls++
	f.lastAmount = amount
	f.lastMemo = memo
	return "pay_1", nil
}

func testCatalog() []*catalog.Product {
	mouseOffer := decimal.NewFromFloat(27.99)
	headphoneOffer := decimal.NewFromFloat(69.99)
	return []*catalog.Product{
		{ID: 1, Name: "Wireless Mouse", Category: "Electronics", Seller: "Hayes-Mitchell", Price: decimal.NewFromFloat(34.99), OfferPrice: &mouseOffer, Quantity: 240, Rating: 4.4, Tags: []string{"wireless", "mouse", "electronics"}},
		{ID: 2, Name: "Bluetooth Headphones", Category: "Electronics", Seller: "Vargas Group", Price: decimal.NewFromFloat(89.99), OfferPrice: &headphoneOffer, Quantity: 310, Rating: 4.2, Tags: []string{"bluetooth", "headphones", "electronics"}},
		{ID: 3, Name: "Yoga Mat", Category: "Fitness", Seller: "Core Balance", Price: decimal.NewFromFloat(34.99), Quantity: 280, Rating: 4.4, Tags: []string{"yoga", "mat", "fitness"}},
		{ID: 4, Name: "Laptop Stand", Category: "Office", Seller: "Brennan and Sons", Price: decimal.NewFromFloat(45.00), Quantity: 180, Rating: 4.5, Tags: []string{"laptop", "stand", "office"}},
		{ID: 5, Name: "Smart Watch", Category: "Wearables", Seller: "Orbit Labs", Price: decimal.NewFromFloat(199.99), Quantity: 95, Rating: 4.3, Tags: []string{"smart", "watch", "wearables"}},
	}
}

func newTestEngine(t *testing.T, connected bool) (*Engine, *fakeCatalogRepo, *fakeOrderRepo, *fakeUserRepo, *fakePayments) {
	t.Helper()
	catalogRepo := &fakeCatalogRepo{products: testCatalog()}
	orderRepo := &fakeOrderRepo{}
	userRepo := &fakeUserRepo{}
	payments := &fakePayments{connected: connected}

	engine := NewEngine(
		catalog.NewService(catalogRepo),
		order.NewService(orderRepo),
		user.NewService(userRepo),
		payments,
		NewSessions(),
		nil,
		3,
		"autocart.com",
		zerolog.Nop(),
	)
	return engine, catalogRepo, orderRepo, userRepo, payments
}

func respond(t *testing.T, e *Engine, conv, msg string) *Turn {
	t.Helper()
	turn, err := e.Respond(context.Background(), conv, 1, msg)
	if err != nil {
		t.Fatalf("Respond(%q) failed: %v", msg, err)
	}
	return turn
}

func TestRespondEmptyMessage(t *testing.T) {
	engine, _, _, _, _ := newTestEngine(t, false)
	if _, err := engine.Respond(context.Background(), "conv_1", 1, "   "); err == nil {
		t.Fatal("expected validation error for blank message")
	}
}

func TestRespondBanned(t *testing.T) {
	engine, _, _, _, _ := newTestEngine(t, false)
	turn := respond(t, engine, "conv_1", "how do I hack this store")
	if turn.Intent != IntentBanned || turn.Replies[0] != msgBanned {
		t.Fatalf("unexpected turn: %+v", turn)
	}
}

func TestRespondGreetingDefaultName(t *testing.T) {
	engine, _, _, _, _ := newTestEngine(t, false)
	turn := respond(t, engine, "conv_1", "hello")
	if turn.Intent != IntentGreeting {
		t.Fatalf("expected greeting, got %s", turn.Intent)
	}
	if turn.Replies[0] != "Hello User! How can I help you today?" {
		t.Fatalf("unexpected greeting copy: %q", turn.Replies[0])
	}
}

func TestRespondSetAndAskName(t *testing.T) {
	engine, _, _, userRepo, _ := newTestEngine(t, false)

	turn := respond(t, engine, "conv_1", "my name is alice")
	if turn.Intent != IntentSetName {
		t.Fatalf("expected set_name, got %s", turn.Intent)
	}
	if turn.Replies[0] != "Nice to meet you, Alice! How can I help you today?" {
		t.Fatalf("unexpected reply: %q", turn.Replies[0])
	}
	if userRepo.names[1] != "Alice" {
		t.Fatalf("name must be persisted capitalized, got %q", userRepo.names[1])
	}

	turn = respond(t, engine, "conv_1", "what is my name?")
	if turn.Intent != IntentAskName || turn.Replies[0] != "Your name is Alice." {
		t.Fatalf("unexpected ask_name turn: %+v", turn)
	}
}

func TestRespondListProductsAndPagination(t *testing.T) {
	engine, _, _, _, _ := newTestEngine(t, false)

	turn := respond(t, engine, "conv_1", "show me products")
	if turn.Intent != IntentListProducts {
		t.Fatalf("expected list_products, got %s", turn.Intent)
	}
	list := turn.Replies[0]
	if !strings.Contains(list, "1. Wireless Mouse") || !strings.Contains(list, "3. Yoga Mat") {
		t.Fatalf("expected first page of three, got %q", list)
	}
	if strings.Contains(list, "Laptop Stand") {
		t.Fatal("page size must cap the first page at three products")
	}

	turn = respond(t, engine, "conv_1", "2 more")
	if turn.Intent != IntentPagination {
		t.Fatalf("expected pagination, got %s", turn.Intent)
	}
	more := turn.Replies[0]
	if !strings.Contains(more, "Laptop Stand") || !strings.Contains(more, "Smart Watch") {
		t.Fatalf("expected the next two products, got %q", more)
	}
	if strings.Contains(more, "Wireless Mouse") {
		t.Fatal("pagination must not repeat the first page")
	}

	turn = respond(t, engine, "conv_1", "more")
	if turn.Replies[0] != msgNoMore {
		t.Fatalf("expected end of results, got %q", turn.Replies[0])
	}
}

func TestRespondCategoryListing(t *testing.T) {
	engine, _, _, _, _ := newTestEngine(t, false)

	turn := respond(t, engine, "conv_1", "which categories do you have?")
	if turn.Intent != IntentListCategories {
		t.Fatalf("expected list_categories, got %s", turn.Intent)
	}
	if !strings.Contains(turn.Replies[0], "Electronics") || !strings.Contains(turn.Replies[0], "Fitness") {
		t.Fatalf("expected category names, got %q", turn.Replies[0])
	}

	turn = respond(t, engine, "conv_1", "electronics")
	if turn.Intent != IntentListByCategory {
		t.Fatalf("expected list_products_by_category, got %s", turn.Intent)
	}
	if !strings.Contains(turn.Replies[0], "Wireless Mouse") || strings.Contains(turn.Replies[0], "Yoga Mat") {
		t.Fatalf("expected only electronics, got %q", turn.Replies[0])
	}
}

func TestRespondOffersThenCategoryNarrows(t *testing.T) {
	engine, _, _, _, _ := newTestEngine(t, false)

	turn := respond(t, engine, "conv_1", "any offers today?")
	if turn.Intent != IntentOffers {
		t.Fatalf("expected offers, got %s", turn.Intent)
	}
	if !strings.Contains(turn.Replies[0], "special offers in these categories") {
		t.Fatalf("unexpected offers copy: %q", turn.Replies[0])
	}

	// Only discounted electronics after the offers prompt.
	turn = respond(t, engine, "conv_1", "electronics")
	if !strings.Contains(turn.Replies[0], "Wireless Mouse") {
		t.Fatalf("expected discounted electronics, got %q", turn.Replies[0])
	}
}

func TestRespondSelectionAndPitch(t *testing.T) {
	engine, _, _, _, _ := newTestEngine(t, false)

	respond(t, engine, "conv_1", "show me products")
	turn := respond(t, engine, "conv_1", "second one")
	if turn.Intent != IntentSelectProduct {
		t.Fatalf("expected select_product, got %s", turn.Intent)
	}
	if !strings.HasPrefix(turn.Replies[0], "Product: Bluetooth Headphones") {
		t.Fatalf("expected headphones pitch, got %q", turn.Replies[0])
	}
}

func TestRespondSelectionWithoutListing(t *testing.T) {
	engine, _, _, _, _ := newTestEngine(t, false)
	turn := respond(t, engine, "conv_1", "second one")
	if turn.Replies[0] != msgCantIdentify {
		t.Fatalf("expected identification failure, got %q", turn.Replies[0])
	}
}

func TestRespondSelectionOutOfRangeKeepsState(t *testing.T) {
	engine, _, _, _, _ := newTestEngine(t, false)

	respond(t, engine, "conv_1", "show me products")
	turn := respond(t, engine, "conv_1", "the ninth one")
	if turn.Replies[0] != msgCantIdentify {
		t.Fatalf("expected identification failure, got %q", turn.Replies[0])
	}

	sctx, release := engine.sessions.Acquire("conv_1")
	defer release()
	if sctx.LastIntent != IntentListProducts {
		t.Fatalf("recovery reply must not record an intent, got %q", sctx.LastIntent)
	}
	if sctx.LastSelected != nil || sctx.Stage != StageIdle {
		t.Fatalf("recovery reply must leave the selection untouched, got stage %q", sctx.Stage)
	}
}

func TestRespondDeicticPitchesProductInView(t *testing.T) {
	engine, _, _, _, _ := newTestEngine(t, false)

	respond(t, engine, "conv_1", "show me products")
	turn := respond(t, engine, "conv_1", "buy it")
	if turn.Intent != IntentSelectProduct {
		t.Fatalf("expected deictic selection, got %s", turn.Intent)
	}
	if !strings.HasPrefix(turn.Replies[0], "Product: Wireless Mouse") {
		t.Fatalf("expected first product pitch, got %q", turn.Replies[0])
	}
}

func TestRespondYesWithNothingSelected(t *testing.T) {
	engine, _, _, _, _ := newTestEngine(t, false)
	turn := respond(t, engine, "conv_1", "yes")
	if turn.Replies[0] != msgNoSelection {
		t.Fatalf("expected no-selection message, got %q", turn.Replies[0])
	}
}

func TestRespondYesWithoutWalletKeepsPitch(t *testing.T) {
	engine, _, orderRepo, _, payments := newTestEngine(t, false)

	respond(t, engine, "conv_1", "show me products")
	respond(t, engine, "conv_1", "second one")

	turn := respond(t, engine, "conv_1", "yes")
	if turn.Replies[0] != msgWalletMissing {
		t.Fatalf("expected wallet prompt, got %q", turn.Replies[0])
	}
	if payments.sendCalls != 0 || len(orderRepo.created) != 0 {
		t.Fatal("no payment may fire while disconnected")
	}

	// Connect and retry: the pitch must still be pending.
	payments.connected = true
	turn = respond(t, engine, "conv_1", "yes")
	if payments.sendCalls != 1 {
		t.Fatalf("expected exactly one payment, got %d", payments.sendCalls)
	}
	if len(turn.Replies) != 2 {
		t.Fatalf("expected processing and receipt replies, got %v", turn.Replies)
	}
}

func TestRespondPurchaseSettlement(t *testing.T) {
	engine, catalogRepo, orderRepo, _, payments := newTestEngine(t, true)

	respond(t, engine, "conv_1", "show me products")
	respond(t, engine, "conv_1", "first one")
	turn := respond(t, engine, "conv_1", "yes")

	if payments.sendCalls != 1 {
		t.Fatalf("expected exactly one payment, got %d", payments.sendCalls)
	}
	// The charged amount is the offer price, not the list price.
	if !payments.lastAmount.Equal(decimal.NewFromFloat(27.99)) {
		t.Fatalf("expected offer price charged, got %s", payments.lastAmount)
	}
	if payments.lastPayee != "Hayes-Mitchell" {
		t.Fatalf("expected seller payee, got %q", payments.lastPayee)
	}

	if len(orderRepo.created) != 1 {
		t.Fatalf("expected one order, got %d", len(orderRepo.created))
	}
	ord := orderRepo.created[0]
	if ord.Status != order.OrderStatusPaid || ord.Currency != "TSD" {
		t.Fatalf("unexpected order: %+v", ord)
	}
	if ord.Package == nil || ord.Package.TrackingNumber != ord.OrderRef {
		t.Fatal("package tracking number must equal the order reference")
	}

	if len(catalogRepo.decremented) != 1 || catalogRepo.decremented[0] != 1 {
		t.Fatalf("expected stock decrement for product 1, got %v", catalogRepo.decremented)
	}

	if len(turn.Replies) != 2 {
		t.Fatalf("expected processing and receipt replies, got %v", turn.Replies)
	}
	if !strings.Contains(turn.Replies[1], ord.OrderRef) {
		t.Fatalf("receipt must carry the tracking ID, got %q", turn.Replies[1])
	}

	sctx, release := engine.sessions.Acquire("conv_1")
	stage, selected := sctx.Stage, sctx.LastSelected
	release()
	if stage != StagePaid {
		t.Fatalf("settlement must park the stage at paid, got %q", stage)
	}
	if selected != nil {
		t.Fatal("settlement must clear the pending selection")
	}

	// Paid is terminal; the next utterance starts over from idle.
	respond(t, engine, "conv_1", "hello")
	sctx, release = engine.sessions.Acquire("conv_1")
	stage = sctx.Stage
	release()
	if stage != StageIdle {
		t.Fatalf("expected idle after the receipt turn, got %q", stage)
	}
}

func TestRespondPurchaseBySearch(t *testing.T) {
	engine, _, _, _, _ := newTestEngine(t, true)

	turn := respond(t, engine, "conv_1", "buy wireless mouse")
	if turn.Intent != IntentPurchase {
		t.Fatalf("expected purchase, got %s", turn.Intent)
	}
	if !strings.Contains(turn.Replies[0], "Wireless Mouse") {
		t.Fatalf("expected matching products listed, got %q", turn.Replies[0])
	}
}

func TestRespondPurchaseUnknownProduct(t *testing.T) {
	engine, _, _, _, _ := newTestEngine(t, true)

	turn := respond(t, engine, "conv_1", "buy quantum flux capacitor")
	if !strings.Contains(turn.Replies[0], "couldn't find any products matching") {
		t.Fatalf("expected search miss, got %q", turn.Replies[0])
	}
}

func TestRespondFallbackSearch(t *testing.T) {
	engine, _, _, _, _ := newTestEngine(t, false)

	turn := respond(t, engine, "conv_1", "do you have a yoga mat")
	if turn.Intent != IntentFallback {
		t.Fatalf("expected fallback search, got %s", turn.Intent)
	}
	if !strings.Contains(turn.Replies[0], "Yoga Mat") {
		t.Fatalf("expected yoga mat hit, got %q", turn.Replies[0])
	}

	turn = respond(t, engine, "conv_1", "unobtainium widget")
	if turn.Replies[0] != msgNotFound {
		t.Fatalf("expected not-found copy, got %q", turn.Replies[0])
	}
}

func TestRespondNo(t *testing.T) {
	engine, _, _, _, _ := newTestEngine(t, false)
	turn := respond(t, engine, "conv_1", "no")
	if turn.Intent != IntentNo || turn.Replies[0] != msgDeclined {
		t.Fatalf("unexpected turn: %+v", turn)
	}
}
