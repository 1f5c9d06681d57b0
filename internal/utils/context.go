// Package utils holds small helpers shared by the server and the client:
// typed context keys, JSON response writing, the resty client, JWT issuing
// and parsing, and UUIDv7 generation.
package utils

import (
	"context"
)

// contextKey keeps values stored by this package apart from string keys of
// other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey holds the authenticated user id (int64).
	UserIDCtxKey = contextKey("userID")
	// TraceIDCtxKey holds the request trace id (string).
	TraceIDCtxKey = contextKey("traceID")
)

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext returns the user id stored by [WithUserID]. ok is false
// when the value is missing or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace id stored by [WithTraceID] or "".
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
