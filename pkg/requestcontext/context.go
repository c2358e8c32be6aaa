// Package requestcontext carries per-request values (caller account, request
// id) through context so handlers and services stay free of transport detail.
package requestcontext

import (
	"context"

	"curio/pkg/domain"
)

type contextKey int

const (
	callerKey contextKey = iota
	requestIDKey
)

// WithCaller returns a context carrying the authenticated caller account.
func WithCaller(ctx context.Context, caller domain.Address) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// Caller returns the authenticated caller account, or the zero address when
// the request is unauthenticated.
func Caller(ctx context.Context) domain.Address {
	if v, ok := ctx.Value(callerKey).(domain.Address); ok {
		return v
	}
	return ""
}

// WithRequestID returns a context carrying the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the request id, or "" when none was assigned.
func RequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
