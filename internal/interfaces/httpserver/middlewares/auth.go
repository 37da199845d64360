package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"autocart-server/store-api/internal/config"
	"autocart-server/store-api/internal/domain/user"
	authvalidator "autocart-server/store-api/internal/infrastructure/auth"
	"autocart-server/store-api/internal/infrastructure/metrics"
	"autocart-server/store-api/internal/interfaces/httpserver/responses"
)

const (
	userContextKey = "current_user"
	guestIDHeader  = "X-Guest-Id"
	guestIssuer    = "autocart-guest"
)

// AuthMiddleware resolves the shopper for each request. With auth enabled
// a valid bearer token is required; otherwise a guest identity is derived
// from the X-Guest-Id header so each browser keeps its own conversations
// and orders.
func AuthMiddleware(
	cfg *config.Config,
	validator *authvalidator.OIDCValidator,
	userService *user.Service,
	logger zerolog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)

		if token != "" && validator != nil {
			claims, err := validator.Validate(c.Request.Context(), token)
			if err != nil {
				metrics.RecordAuthRequest("jwt", "invalid")
				logger.Warn().Err(err).Msg("jwt validation failed")
				responses.HandleErrorWithStatus(c, http.StatusUnauthorized, err, "unauthorized")
				return
			}

			identity := user.Identity{
				Provider: "oidc",
				Issuer:   claims.Issuer,
				Subject:  claims.Subject,
				Username: optional(claims.PreferredUsername),
				Email:    optional(claims.Email),
				Name:     optional(claims.Name),
			}
			usr, err := userService.EnsureUser(c.Request.Context(), identity)
			if err != nil {
				responses.HandleError(c, err, "failed to resolve user")
				return
			}

			metrics.RecordAuthRequest("jwt", "ok")
			setCurrentUser(c, usr)
			c.Next()
			return
		}

		if cfg.AuthEnabled {
			metrics.RecordAuthRequest("jwt", "missing")
			responses.HandleErrorWithStatus(c, http.StatusUnauthorized, errors.New("authentication required"), "unauthorized")
			return
		}

		// Guest mode. A stable header keeps the guest's data together
		// across requests; without one everything lands on a shared
		// anonymous record.
		guestID := strings.TrimSpace(c.GetHeader(guestIDHeader))
		if guestID == "" {
			guestID = "anonymous"
		}

		identity := user.Identity{
			Provider: "guest",
			Issuer:   guestIssuer,
			Subject:  guestID,
			Username: optional(cfg.GuestRole),
		}
		usr, err := userService.EnsureUser(c.Request.Context(), identity)
		if err != nil {
			responses.HandleError(c, err, "failed to resolve guest user")
			return
		}

		metrics.RecordAuthRequest("guest", "ok")
		setCurrentUser(c, usr)
		c.Next()
	}
}

// CurrentUser returns the resolved shopper for this request.
func CurrentUser(c *gin.Context) (*user.User, bool) {
	val, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	usr, ok := val.(*user.User)
	return usr, ok
}

func setCurrentUser(c *gin.Context, usr *user.User) {
	c.Set(userContextKey, usr)
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
