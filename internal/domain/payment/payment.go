// Package payment defines the payment gateway contract the assistant uses
// to settle purchases. The concrete client lives in infrastructure.
package payment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotConnected indicates the gateway has no usable credentials or token.
var ErrNotConnected = errors.New("payment gateway not connected")

// Receipt captures the result of a completed payment.
type Receipt struct {
	PaymentRef string
	PayeeID    string
}

// Initiator is the outbound payment contract. Implementations must be safe
// for concurrent use.
type Initiator interface {
	// Connected reports whether a payment can currently be initiated.
	Connected(ctx context.Context) bool

	// EnsurePayee resolves or creates a payee for the seller and returns
	// its gateway ID.
	EnsurePayee(ctx context.Context, name, email string) (string, error)

	// SendPayment transfers amount to the payee and returns a payment
	// reference.
	SendPayment(ctx context.Context, payeeID string, amount decimal.Decimal, memo string) (string, error)
}

// StoredToken is the persisted OAuth access token for the payment gateway.
// A single token is kept at a time and reloaded on startup so the wallet
// connection survives restarts until the token expires.
type StoredToken struct {
	AccessToken string
	Scopes      string
	ExpiresAt   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Expired reports whether the token is past its expiry at the given time.
func (t *StoredToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// TokenStore persists the gateway token. Load returns nil without error
// when no token has been stored yet.
type TokenStore interface {
	Load(ctx context.Context) (*StoredToken, error)
	Save(ctx context.Context, token *StoredToken) error
	Clear(ctx context.Context) error
}

// SellerEmail derives the payee email for a seller: the seller name
// lowercased with spaces removed, at the store domain.
func SellerEmail(seller, domain string) string {
	local := strings.ReplaceAll(strings.ToLower(seller), " ", "")
	return local + "@" + domain
}
