package shared

import (
	"context"

	"github.com/google/uuid"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// CallerIDContextKey is the context key for the authenticated caller's
	// user ID, set by the basic-auth middleware.
	CallerIDContextKey ContextKey = "callerID"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID adds a freshly generated trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SetCallerID records the authenticated caller's user ID in the context.
func SetCallerID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, CallerIDContextKey, userID)
}

// GetCallerID retrieves the authenticated caller's user ID from the context.
// Returns the ID and a boolean indicating whether it was present.
func GetCallerID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(CallerIDContextKey).(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}
