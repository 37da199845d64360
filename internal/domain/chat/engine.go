package chat

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"autocart-server/store-api/internal/domain/catalog"
	"autocart-server/store-api/internal/domain/order"
	"autocart-server/store-api/internal/domain/payment"
	"autocart-server/store-api/internal/domain/user"
	"autocart-server/store-api/internal/utils/functional"
	"autocart-server/store-api/internal/utils/platformerrors"
)

// Copywriter optionally rewrites a draft reply in a warmer tone. The engine
// falls back to the draft when rewriting fails or no copywriter is set.
type Copywriter interface {
	Rewrite(ctx context.Context, userQuery, draft string) (string, error)
}

// Turn is the outcome of one utterance: the classified intent and the
// assistant replies to append, in order.
type Turn struct {
	Intent  Intent
	Replies []string
}

// Engine is the response dispatcher. One utterance is processed to
// completion per conversation at a time; the session store's per-context
// lock enforces that.
type Engine struct {
	catalog     *catalog.Service
	orders      *order.Service
	users       *user.Service
	payments    payment.Initiator
	sessions    *Sessions
	copywriter  Copywriter
	pageSize    int
	storeDomain string
	log         zerolog.Logger
}

// NewEngine constructs the dispatcher. copywriter may be nil.
func NewEngine(
	catalogSvc *catalog.Service,
	orderSvc *order.Service,
	userSvc *user.Service,
	payments payment.Initiator,
	sessions *Sessions,
	copywriter Copywriter,
	pageSize int,
	storeDomain string,
	log zerolog.Logger,
) *Engine {
	return &Engine{
		catalog:     catalogSvc,
		orders:      orderSvc,
		users:       userSvc,
		payments:    payments,
		sessions:    sessions,
		copywriter:  copywriter,
		pageSize:    pageSize,
		storeDomain: storeDomain,
		log:         log,
	}
}

// Sessions exposes the session store so the conversation layer can drop
// dialogue state when a conversation is deleted.
func (e *Engine) Sessions() *Sessions {
	return e.sessions
}

// Respond processes one user utterance for a conversation and returns the
// assistant's turn. The catalog snapshot is taken once at the start; the
// dialogue context is locked for the whole turn.
func (e *Engine) Respond(ctx context.Context, conversationID string, userID uint, message string) (*Turn, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, "empty message", nil, "6e81f3a9-2d47-4c05-9b38-a1f62e04d785")
	}

	products, err := e.catalog.All(ctx)
	if err != nil {
		return nil, err
	}
	categories := distinctCategories(products)

	sctx, release := e.sessions.Acquire(conversationID)
	defer release()

	// A settled purchase is terminal; the next utterance starts from idle.
	if sctx.Stage == StagePaid {
		sctx.Stage = StageIdle
	}

	lower := strings.ToLower(trimmed)
	intent := Classify(RuleInput{Lower: lower, Categories: categories, Stage: sctx.Stage})

	// Deictic override: "it"/"that"/"this" with products in view pitches
	// the referenced product directly, bypassing the classifier outcome.
	if IsDeictic(trimmed) && len(sctx.LastShown) > 0 {
		prod := sctx.LastSelected
		if prod == nil {
			prod = sctx.LastShown[0]
		}
		sctx.LastSelected = prod
		sctx.LastIntent = IntentSelectProduct
		return &Turn{Intent: IntentSelectProduct, Replies: []string{ProductCard(prod)}}, nil
	}

	turn, final, err := e.dispatch(ctx, sctx, intent, trimmed, lower, userID, products, categories)
	if err != nil {
		return nil, err
	}

	// A pending pitch survives the turn marker; everything else records the
	// classified intent as the new context.
	if final && sctx.Stage != StagePitched {
		sctx.LastIntent = intent
	}
	return turn, nil
}

// dispatch runs the handler for one classified intent. final reports
// whether the end-of-turn intent recording should apply; handlers that
// fully manage their own state (payment, purchase search) return false.
func (e *Engine) dispatch(ctx context.Context, sctx *Context, intent Intent, trimmed, lower string, userID uint, products []*catalog.Product, categories []string) (*Turn, bool, error) {
	switch intent {
	case IntentBanned:
		return reply(intent, msgBanned), true, nil

	case IntentGreeting:
		return reply(intent, greetingReply(e.displayName(ctx, sctx, userID))), true, nil

	case IntentAskName:
		return reply(intent, askNameReply(e.displayName(ctx, sctx, userID))), true, nil

	case IntentSetName:
		name := ExtractName(trimmed)
		if name == "" {
			name = trimmed
		}
		name = capitalize(name)
		sctx.UserName = name
		if err := e.users.SetName(ctx, userID, name); err != nil {
			e.log.Warn().Err(err).Uint("user_id", userID).Msg("failed to persist user name")
		}
		return reply(intent, setNameReply(name)), true, nil

	case IntentYes:
		return e.handleYes(ctx, sctx, userID)

	case IntentNo:
		return reply(intent, msgDeclined), true, nil

	case IntentSelectProduct:
		idx, _ := OrdinalIndex(lower)
		prod, ok := sctx.SelectByOrdinal(idx)
		if !ok {
			// Recovery reply; the dialogue context stays untouched.
			return reply(intent, msgCantIdentify), false, nil
		}
		return reply(intent, ProductCard(prod)), true, nil

	case IntentOffers:
		discounted := discountedProducts(products)
		if len(discounted) == 0 {
			return reply(intent, msgNoOffers), true, nil
		}
		sctx.LastIntent = IntentOffers
		sctx.LastQuery = QueryOffers
		return reply(intent, offerCategoriesReply(distinctCategories(discounted))), true, nil

	case IntentListCategories:
		return reply(intent, categoriesReply(categories)), true, nil

	case IntentListByCategory:
		return e.handleListByCategory(sctx, lower, products, categories), true, nil

	case IntentListProducts:
		if len(products) == 0 {
			return reply(intent, msgNotFound), true, nil
		}
		page := firstPage(products, e.pageSize)
		sctx.RecordShown(page, QueryAll)
		return reply(intent, ProductList(page, e.pageSize)), true, nil

	case IntentPagination:
		return e.handlePagination(sctx, trimmed, products, categories), true, nil

	case IntentPurchase:
		return e.handlePurchase(ctx, sctx, trimmed, products)

	default:
		return e.handleFallback(ctx, sctx, trimmed, products), true, nil
	}
}

func (e *Engine) handleYes(ctx context.Context, sctx *Context, userID uint) (*Turn, bool, error) {
	if sctx.Stage == StagePitched && sctx.LastSelected != nil {
		if !e.payments.Connected(ctx) {
			// The pitch stays pending; the user can connect and retry.
			return reply(IntentYes, msgWalletMissing), false, nil
		}
		return e.settlePurchase(ctx, sctx, userID)
	}

	if len(sctx.LastShown) > 0 {
		prod := sctx.LastShown[0]
		sctx.LastSelected = prod
		sctx.Stage = StagePitched
		return reply(IntentYes, ProductCard(prod)), true, nil
	}

	return reply(IntentYes, msgNoSelection), true, nil
}

// settlePurchase runs the payment for the pending selection and records the
// order with its shipment. SendPayment fires exactly once per confirmation.
// Failures reset the stage to idle; success parks it at paid until the next
// turn.
func (e *Engine) settlePurchase(ctx context.Context, sctx *Context, userID uint) (*Turn, bool, error) {
	selected := sctx.LastSelected
	amount := selected.EffectivePrice()

	payeeEmail := payment.SellerEmail(selected.Seller, e.storeDomain)
	payeeID, err := e.payments.EnsurePayee(ctx, selected.Seller, payeeEmail)
	if err != nil {
		e.clearPurchaseState(sctx)
		return nil, false, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeExternal, "failed to create payee", err, "d93a51c7-0e86-42fb-b4a1-6c25e8f70d93")
	}

	memo := fmt.Sprintf("AutoCart purchase: %s", selected.Name)
	paymentRef, err := e.payments.SendPayment(ctx, payeeID, amount, memo)
	if err != nil {
		e.clearPurchaseState(sctx)
		return nil, false, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeExternal, "payment failed", err, "f47be062-91d5-4a38-8c70-3e1a2b69d504")
	}

	ord, err := e.orders.CreateFromPurchase(ctx, order.CreateFromPurchaseInput{
		UserID:      userID,
		ProductID:   selected.ID,
		ProductName: selected.Name,
		Seller:      selected.Seller,
		Amount:      amount,
		PaymentRef:  paymentRef,
	})
	if err != nil {
		e.clearPurchaseState(sctx)
		return nil, false, err
	}

	if err := e.catalog.ReserveUnit(ctx, selected.ID); err != nil {
		e.log.Warn().Err(err).Uint("product_id", selected.ID).Msg("failed to decrement stock after purchase")
	}

	replies := []string{processingReply(selected), paymentSuccessReply(ord.OrderRef)}
	sctx.LastSelected = nil
	sctx.LastIntent = ""
	sctx.Stage = StagePaid
	return &Turn{Intent: IntentYes, Replies: replies}, false, nil
}

func (e *Engine) clearPurchaseState(sctx *Context) {
	sctx.LastSelected = nil
	sctx.Stage = StageIdle
	sctx.LastIntent = ""
}

func (e *Engine) handleListByCategory(sctx *Context, lower string, products []*catalog.Product, categories []string) *Turn {
	cat, _ := ExtractCategory(lower, categories)

	inCategory := make([]*catalog.Product, 0)
	for _, p := range products {
		if strings.EqualFold(p.Category, cat) {
			inCategory = append(inCategory, p)
		}
	}

	// After an offers prompt, a category answer narrows to discounted items.
	if sctx.LastIntent == IntentOffers {
		inCategory = discountedProducts(inCategory)
	}

	if len(inCategory) == 0 {
		return reply(IntentListByCategory, msgNotFound)
	}

	page := firstPage(inCategory, e.pageSize)
	sctx.RecordShown(page, cat)
	return reply(IntentListByCategory, ProductList(page, e.pageSize))
}

func (e *Engine) handlePagination(sctx *Context, trimmed string, products []*catalog.Product, categories []string) *Turn {
	// Recompute the full match set from the stored query key rather than
	// holding the result set across turns.
	var matched []*catalog.Product
	switch {
	case sctx.LastQuery == QueryAll:
		matched = products
	case functional.Any(categories, func(c string) bool { return c == sctx.LastQuery }):
		for _, p := range products {
			if p.Category == sctx.LastQuery {
				matched = append(matched, p)
			}
		}
	default:
		matched = SearchByKeyword(sctx.LastQuery, products)
	}

	moreCount, ok := MoreCount(trimmed)
	if !ok {
		moreCount = e.pageSize
	}

	nextPage := sctx.LastPage + 1
	start := nextPage * e.pageSize
	if start >= len(matched) {
		return reply(IntentPagination, msgNoMore)
	}
	end := start + moreCount
	if end > len(matched) {
		end = len(matched)
	}

	page := matched[start:end]
	sctx.LastShown = page
	sctx.LastPage = nextPage
	return reply(IntentPagination, ProductList(page, moreCount))
}

func (e *Engine) handlePurchase(ctx context.Context, sctx *Context, trimmed string, products []*catalog.Product) (*Turn, bool, error) {
	if !e.payments.Connected(ctx) {
		return reply(IntentPurchase, msgWalletMissing), false, nil
	}

	if target := ExtractPurchaseTarget(trimmed); target != "" {
		matched := NormalizedFuzzyMatch(target, products, defaultFuzzyThreshold)
		if len(matched) == 0 {
			return reply(IntentPurchase, noMatchReply(target)), false, nil
		}
		page := firstPage(matched, e.pageSize)
		sctx.RecordShown(page, target)
		return reply(IntentPurchase, ProductList(page, e.pageSize)), false, nil
	}

	if sctx.LastSelected != nil {
		sctx.Stage = StageConfirmed
		return reply(IntentPurchase, confirmPurchaseReply(sctx.LastSelected)), true, nil
	}

	return reply(IntentPurchase, msgPickFirst), true, nil
}

func (e *Engine) handleFallback(ctx context.Context, sctx *Context, trimmed string, products []*catalog.Product) *Turn {
	matched := RefinedFuzzyMatch(trimmed, products, defaultFuzzyThreshold)
	if len(matched) == 0 {
		content := msgNotFound
		if e.copywriter != nil {
			if rewritten, err := e.copywriter.Rewrite(ctx, trimmed, content); err == nil && rewritten != "" {
				content = rewritten
			}
		}
		return reply(IntentFallback, content)
	}

	page := firstPage(matched, e.pageSize)
	sctx.RecordShown(page, trimmed)
	return reply(IntentFallback, ProductList(page, e.pageSize))
}

func (e *Engine) displayName(ctx context.Context, sctx *Context, userID uint) string {
	if sctx.UserName != "" {
		return sctx.UserName
	}
	if u, err := e.users.GetByID(ctx, userID); err == nil && u != nil && u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return "User"
}

func reply(intent Intent, contents ...string) *Turn {
	return &Turn{Intent: intent, Replies: contents}
}

func firstPage(products []*catalog.Product, pageSize int) []*catalog.Product {
	if len(products) > pageSize {
		return products[:pageSize]
	}
	return products
}

func discountedProducts(products []*catalog.Product) []*catalog.Product {
	return functional.Filter(products, func(p *catalog.Product) bool {
		return p.HasOffer() && p.OfferPrice.LessThan(p.Price)
	})
}

func distinctCategories(products []*catalog.Product) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
