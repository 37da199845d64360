package paymentrequests

// ExchangeCodeRequest carries the OAuth authorization code returned by the
// gateway's consent screen.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
