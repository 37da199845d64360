// Package payman implements the payment gateway contract against the
// Payman REST API. A wallet is connected through an OAuth authorization
// code exchange; the resulting token is persisted so the connection
// survives restarts and is dropped as soon as it expires.
package payman

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"resty.dev/v3"

	"autocart-server/store-api/internal/config"
	"autocart-server/store-api/internal/domain/payment"
	"autocart-server/store-api/internal/infrastructure/metrics"
	"autocart-server/store-api/internal/utils/httpclients"
	"autocart-server/store-api/internal/utils/platformerrors"
)

const payeeType = "TEST_RAILS"

type Client struct {
	http         *resty.Client
	baseURL      string
	oauthURL     string
	clientID     string
	clientSecret string
	scopes       string
	store        payment.TokenStore
	logger       zerolog.Logger

	mu     sync.Mutex
	loaded bool
	token  *payment.StoredToken
}

var _ payment.Initiator = (*Client)(nil)

func NewClient(cfg *config.Config, store payment.TokenStore, logger zerolog.Logger) *Client {
	httpClient := httpclients.NewClient("payman").
		SetTimeout(cfg.PaymanTimeout)

	return &Client{
		http:         httpClient,
		baseURL:      strings.TrimRight(cfg.PaymanBaseURL, "/"),
		oauthURL:     cfg.PaymanOAuthURL,
		clientID:     cfg.PaymanClientID,
		clientSecret: cfg.PaymanClientSecret,
		scopes:       cfg.PaymanScopes,
		store:        store,
		logger:       logger,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope"`
}

// ExchangeCode trades an OAuth authorization code for an access token and
// persists it as the active wallet connection.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*payment.StoredToken, error) {
	start := time.Now()
	var body tokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.clientID, c.clientSecret).
		SetFormData(map[string]string{
			"grant_type": "authorization_code",
			"code":       code,
		}).
		SetResult(&body).
		Post(c.oauthURL)
	metrics.RecordGatewayCall("exchange_code", time.Since(start).Seconds(), err)
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			"gateway token exchange failed",
			err,
			"b1d3f5a7-9c0e-4b2d-8f6a-1e3c5a7b9d0f",
		)
	}
	if resp.IsError() || body.AccessToken == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("gateway token exchange returned status %d", resp.StatusCode()),
			nil,
			"4e6a8c0b-2d4f-4e6a-9c1d-7b9d1f3a5c7e",
		)
	}

	token := &payment.StoredToken{
		AccessToken: body.AccessToken,
		Scopes:      body.Scope,
		ExpiresAt:   time.Now().Add(time.Duration(body.ExpiresIn) * time.Second),
	}
	if token.Scopes == "" {
		token.Scopes = c.scopes
	}

	if err := c.store.Save(ctx, token); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.token = token
	c.loaded = true
	c.mu.Unlock()

	c.logger.Info().Time("expires_at", token.ExpiresAt).Msg("payman wallet connected")
	return token, nil
}

// Disconnect drops the active wallet connection.
func (c *Client) Disconnect(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	c.token = nil
	c.loaded = true
	c.mu.Unlock()
	c.logger.Info().Msg("payman wallet disconnected")
	return nil
}

// Connected implements payment.Initiator.
func (c *Client) Connected(ctx context.Context) bool {
	token, err := c.currentToken(ctx)
	return err == nil && token != nil
}

// Status reports the wallet connection state for the session endpoint.
func (c *Client) Status(ctx context.Context) (connected bool, expiresAt time.Time) {
	token, err := c.currentToken(ctx)
	if err != nil || token == nil {
		return false, time.Time{}
	}
	return true, token.ExpiresAt
}

// currentToken returns the active token, lazily reloading the persisted
// one on first use and clearing it as soon as it has expired.
func (c *Client) currentToken(ctx context.Context) (*payment.StoredToken, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		token, err := c.store.Load(ctx)
		if err != nil {
			return nil, err
		}
		c.token = token
		c.loaded = true
	}

	if c.token == nil {
		return nil, nil
	}
	if c.token.Expired(time.Now()) {
		c.logger.Info().Msg("payman token expired, clearing wallet connection")
		c.token = nil
		if err := c.store.Clear(ctx); err != nil {
			c.logger.Error().Err(err).Msg("failed to clear expired payman token")
		}
		return nil, nil
	}
	return c.token, nil
}

func (c *Client) authorizedRequest(ctx context.Context) (*resty.Request, error) {
	token, err := c.currentToken(ctx)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, payment.ErrNotConnected
	}
	return c.http.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken), nil
}

type payee struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EnsurePayee implements payment.Initiator. An existing payee with the
// same name is reused, otherwise one is created.
func (c *Client) EnsurePayee(ctx context.Context, name, email string) (string, error) {
	req, err := c.authorizedRequest(ctx)
	if err != nil {
		return "", err
	}

	start := time.Now()
	var found []payee
	resp, err := req.
		SetQueryParam("name", name).
		SetResult(&found).
		Get(c.baseURL + "/payments/search-payees")
	metrics.RecordGatewayCall("search_payees", time.Since(start).Seconds(), err)
	if err == nil && !resp.IsError() {
		for _, p := range found {
			if strings.EqualFold(p.Name, name) {
				return p.ID, nil
			}
		}
	}

	req, err = c.authorizedRequest(ctx)
	if err != nil {
		return "", err
	}

	start = time.Now()
	var created payee
	resp, err = req.
		SetBody(map[string]string{
			"type":  payeeType,
			"name":  name,
			"email": email,
		}).
		SetResult(&created).
		Post(c.baseURL + "/payments/payees")
	metrics.RecordGatewayCall("create_payee", time.Since(start).Seconds(), err)
	if err != nil {
		return "", platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			"failed to create payee",
			err,
			"8a0c2e4d-6f8b-4a0c-9e2d-3b5d7f9b1d3e",
		)
	}
	if resp.IsError() || created.ID == "" {
		return "", platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("create payee returned status %d", resp.StatusCode()),
			nil,
			"0c2e4a6b-8d0f-4c2e-a4b6-5d7f9b1d3f5b",
		)
	}
	return created.ID, nil
}

type paymentResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// SendPayment implements payment.Initiator.
func (c *Client) SendPayment(ctx context.Context, payeeID string, amount decimal.Decimal, memo string) (string, error) {
	req, err := c.authorizedRequest(ctx)
	if err != nil {
		return "", err
	}

	start := time.Now()
	var body paymentResponse
	resp, err := req.
		SetBody(map[string]any{
			"payeeId":       payeeID,
			"amountDecimal": amount,
			"memo":          memo,
		}).
		SetResult(&body).
		Post(c.baseURL + "/payments/send-payment")
	metrics.RecordGatewayCall("send_payment", time.Since(start).Seconds(), err)
	if err != nil {
		metrics.RecordPurchase("failed")
		return "", platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			"failed to send payment",
			err,
			"2e4a6c8d-0f2b-4e4a-b6c8-7f9b1d3f5a7c",
		)
	}
	if resp.IsError() {
		metrics.RecordPurchase("failed")
		return "", platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("send payment returned status %d", resp.StatusCode()),
			nil,
			"6c8e0a2b-4d6f-4c8e-8a0b-9b1d3f5a7c9e",
		)
	}
	if body.Status != "" && !strings.EqualFold(body.Status, "completed") {
		metrics.RecordPurchase("failed")
		return "", platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("payment not completed: %s", body.Status),
			nil,
			"a2c4e6f8-1b3d-4a2c-9e6f-1d3f5a7c9e0b",
		)
	}
	metrics.RecordPurchase("settled")
	return body.Reference, nil
}
