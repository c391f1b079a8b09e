package tracing

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const (
	traceIDCtxKey ctxKey = iota
	targetCtxKey
)

// WithTraceID tags the context with a watch session id unless it already carries one.
func WithTraceID(ctx context.Context) context.Context {
	if _, ok := ctx.Value(traceIDCtxKey).(string); ok {
		return ctx
	}

	return context.WithValue(ctx, traceIDCtxKey, generateTraceID())
}

func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(traceIDCtxKey).(string)
	if !ok {
		return ""
	}

	return traceID
}

// WithTarget tags the context with the endpoint currently being watched.
func WithTarget(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, targetCtxKey, name)
}

func GetTarget(ctx context.Context) string {
	name, ok := ctx.Value(targetCtxKey).(string)
	if !ok {
		return ""
	}

	return name
}

func generateTraceID() string {
	v, _ := uuid.NewV7()
	return v.String()
}
