package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/voltkart/storefront-backend/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

// Session binds every request to a session id. A missing or blank
// header mints a fresh id, echoed back so the client can adopt it.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := strings.TrimSpace(r.Header.Get(sessionIDHeader))
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			w.Header().Set(sessionIDHeader, sessionID)

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
