package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/voltkart/storefront-backend/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// RequestID reuses a well-formed inbound X-Request-Id so upstream
// proxies can correlate, and mints a fresh one otherwise. Malformed
// ids are replaced rather than propagated into logs.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(requestIDHeader)
			if _, err := uuid.Parse(reqID); err != nil {
				reqID = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
