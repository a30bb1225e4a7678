package middleware

import (
	"log/slog"
	"net/http"
)

// RequireAdmin lets through only authenticated users whose DID is in adminDIDs.
// It must run after RequireAuth.
func RequireAdmin(adminDIDs []string, logger *slog.Logger) func(http.Handler) http.Handler {
	admins := make(map[string]struct{}, len(adminDIDs))
	for _, did := range adminDIDs {
		if did != "" {
			admins[did] = struct{}{}
		}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			did := GetUserDID(ctx)
			if _, ok := admins[did]; !ok || did == "" {
				logger.WarnContext(ctx, "admin access denied",
					"request_id", GetRequestID(ctx),
				)
				writeJSONError(w, http.StatusForbidden, "forbidden", "admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
