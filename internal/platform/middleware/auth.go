package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"walletgate/internal/consentflow/models"
)

// JWTValidator defines the interface for validating JWT tokens
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims represents the claims we expect from the JWT validator
type JWTClaims struct {
	User models.User
	JTI  string // JWT ID for log correlation
}

type contextKeyUser struct{}

// ContextKeyUser is exported for use in handler tests
var ContextKeyUser = contextKeyUser{}

// WithUser returns a context carrying the authenticated wallet user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, ContextKeyUser, user)
}

// GetUser retrieves the authenticated wallet user from the context.
func GetUser(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(ContextKeyUser).(models.User)
	if !ok || user.DID == "" {
		return models.User{}, false
	}
	return user, true
}

// GetUserDID retrieves the authenticated holder DID, or "".
func GetUserDID(ctx context.Context) string {
	user, _ := GetUser(ctx)
	return user.DID
}

// AuthOption configures RequireAuth.
type AuthOption func(*authConfig)

type authConfig struct {
	onFailure func()
}

// WithAuthFailureHook runs fn for every rejected request, e.g. to count failures.
func WithAuthFailureHook(fn func()) AuthOption {
	return func(c *authConfig) {
		c.onFailure = fn
	}
}

// RequireAuth rejects requests without a valid bearer token and stores the token's
// user in the request context.
func RequireAuth(validator JWTValidator, logger *slog.Logger, opts ...AuthOption) func(http.Handler) http.Handler {
	cfg := authConfig{onFailure: func() {}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := GetRequestID(ctx)

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
				)
				cfg.onFailure()
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil || claims.User.DID == "" {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestID,
				)
				cfg.onFailure()
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, claims.User)))
		})
	}
}
