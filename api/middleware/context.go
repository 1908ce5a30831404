package middleware

import "context"

type contextKey string

const sessionIDKey contextKey = "session_id"

// SessionIDFromContext returns the session id attached by the Session
// middleware, or "" when absent.
func SessionIDFromContext(ctx context.Context) string {
	if value, ok := ctx.Value(sessionIDKey).(string); ok {
		return value
	}
	return ""
}

// WithSessionID attaches a session id to the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}
