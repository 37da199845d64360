package chat

import (
	"sync"

	"autocart-server/store-api/internal/domain/catalog"
)

// PurchaseStage is the purchase state machine for one conversation.
//
//	idle      -> nothing pitched
//	pitched   -> a product card was shown, awaiting yes/no
//	confirmed -> user confirmed a purchase verb on the selection
//	paid      -> terminal, reset to idle at the start of the next turn
type PurchaseStage string

const (
	StageIdle      PurchaseStage = "idle"
	StagePitched   PurchaseStage = "pitched"
	StageConfirmed PurchaseStage = "confirmed"
	StagePaid      PurchaseStage = "paid"
)

// Sentinel values for Context.LastQuery identifying non-free-text result
// sets, so pagination can recompute the match set without storing it.
const (
	QueryAll    = "__all__"
	QueryOffers = "__offers__"
)

// Context is the per-conversation dialogue state. It is mutated only by the
// engine while holding the session lock, and it is never persisted: loading
// an old conversation starts from a fresh Context.
type Context struct {
	LastIntent   Intent
	Stage        PurchaseStage
	LastShown    []*catalog.Product
	LastSelected *catalog.Product
	LastQuery    string
	LastPage     int
	UserName     string

	mu sync.Mutex
}

// RecordShown sets the products currently in view and the query that
// produced them, rewinding the page cursor.
func (c *Context) RecordShown(products []*catalog.Product, query string) {
	c.LastShown = products
	c.LastQuery = query
	c.LastPage = 0
}

// SelectByOrdinal resolves a zero-based index against the products in view.
// On success the product becomes the pending selection and the stage moves
// to pitched.
func (c *Context) SelectByOrdinal(index int) (*catalog.Product, bool) {
	if index < 0 || index >= len(c.LastShown) {
		return nil, false
	}
	c.LastSelected = c.LastShown[index]
	c.Stage = StagePitched
	return c.LastSelected, true
}

// Reset clears all dialogue state. Invoked when the active conversation
// changes and after a terminal payment outcome.
func (c *Context) Reset() {
	c.LastIntent = ""
	c.Stage = StageIdle
	c.LastShown = nil
	c.LastSelected = nil
	c.LastQuery = ""
	c.LastPage = 0
	c.UserName = ""
}

// Sessions holds the in-memory dialogue contexts keyed by conversation
// public ID. Contexts for different conversations are independent; the
// per-context lock serializes turns within one conversation.
type Sessions struct {
	mu       sync.RWMutex
	contexts map[string]*Context
}

// NewSessions constructs an empty session store.
func NewSessions() *Sessions {
	return &Sessions{contexts: make(map[string]*Context)}
}

// Acquire returns the context for a conversation with its turn lock held.
// The caller must call the returned release function when the turn is done.
func (s *Sessions) Acquire(conversationID string) (*Context, func()) {
	s.mu.Lock()
	ctx, ok := s.contexts[conversationID]
	if !ok {
		ctx = &Context{Stage: StageIdle}
		s.contexts[conversationID] = ctx
	}
	s.mu.Unlock()

	ctx.mu.Lock()
	return ctx, ctx.mu.Unlock
}

// Drop removes a conversation's context, e.g. after deletion.
func (s *Sessions) Drop(conversationID string) {
	s.mu.Lock()
	delete(s.contexts, conversationID)
	s.mu.Unlock()
}
