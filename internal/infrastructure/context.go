package infrastructure

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

// traceIDKey is the context key for the per-request trace id.
const traceIDKey contextKey = "trace_id"

// WithTraceID returns a context carrying the given trace id.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// NewTraceID returns a context carrying a freshly generated trace id.
func NewTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, uuid.NewString())
}

// GetTraceID extracts the trace id from the context, or "" when absent.
func GetTraceID(ctx context.Context) string {
	if v, ok := ctx.Value(traceIDKey).(string); ok {
		return v
	}
	return ""
}
