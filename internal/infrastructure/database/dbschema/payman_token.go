package dbschema

import (
	"time"

	"autocart-server/store-api/internal/domain/payment"
	"autocart-server/store-api/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(PaymanToken{})
}

// PaymanToken stores the single active gateway OAuth token
type PaymanToken struct {
	BaseModel
	AccessToken string    `gorm:"type:text;not null"`
	Scopes      string    `gorm:"type:varchar(256)"`
	ExpiresAt   time.Time `gorm:"not null"`
}

// NewSchemaPaymanToken creates a database schema from the domain token
func NewSchemaPaymanToken(t *payment.StoredToken) *PaymanToken {
	return &PaymanToken{
		AccessToken: t.AccessToken,
		Scopes:      t.Scopes,
		ExpiresAt:   t.ExpiresAt,
	}
}

// EtoD converts the database schema to the domain token (Entity to Domain)
func (t *PaymanToken) EtoD() *payment.StoredToken {
	return &payment.StoredToken{
		AccessToken: t.AccessToken,
		Scopes:      t.Scopes,
		ExpiresAt:   t.ExpiresAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
