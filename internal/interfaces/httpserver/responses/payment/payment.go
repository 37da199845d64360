package paymentresponses

import "time"

// SessionResponse reports the wallet connection state
type SessionResponse struct {
	Object    string `json:"object"`
	Connected bool   `json:"connected"`
	ExpiresAt *int64 `json:"expires_at,omitempty"`
}

// NewSessionResponse creates a session response
func NewSessionResponse(connected bool, expiresAt time.Time) *SessionResponse {
	resp := &SessionResponse{
		Object:    "payment.session",
		Connected: connected,
	}
	if connected && !expiresAt.IsZero() {
		at := expiresAt.Unix()
		resp.ExpiresAt = &at
	}
	return resp
}
