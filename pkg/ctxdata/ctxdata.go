package ctxdata

import (
	"context"
)

type requestIDKey struct{}
type adminIDKey struct{}

var (
	requestIDKeyInstance = requestIDKey{}
	adminIDKeyInstance   = adminIDKey{}
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKeyInstance, requestID)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v := ctx.Value(requestIDKeyInstance)
	requestID, ok := v.(string)
	return requestID, ok
}

func WithAdminID(ctx context.Context, adminID string) context.Context {
	return context.WithValue(ctx, adminIDKeyInstance, adminID)
}

func GetAdminID(ctx context.Context) (string, bool) {
	v := ctx.Value(adminIDKeyInstance)
	adminID, ok := v.(string)
	return adminID, ok
}
