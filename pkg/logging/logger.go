package logging

import (
	"context"

	"go.uber.org/zap"

	"github.com/Majormiles/job-portal-sub004/pkg/ctxdata"
)

type loggerKey struct{}

const (
	requestID = "request_id"
	adminID   = "admin_id"
)

var (
	loggerKeyInstance = loggerKey{}
)

type Logger struct {
	l *zap.Logger
}

func New(zapLogger *zap.Logger) *Logger {
	return &Logger{zapLogger}
}

func ContextWithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerKeyInstance, logger)
}

func GetFromContext(ctx context.Context) (*Logger, bool) {
	logger, ok := ctx.Value(loggerKeyInstance).(*Logger)
	return logger, ok
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	fields = fieldsWithRequestID(ctx, fields)
	l.l.Debug(msg, fields...)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	fields = fieldsWithRequestID(ctx, fields)
	l.l.Info(msg, fields...)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	fields = fieldsWithRequestID(ctx, fields)
	l.l.Warn(msg, fields...)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	fields = fieldsWithRequestID(ctx, fields)
	l.l.Error(msg, fields...)
}

func (l *Logger) Fatal(ctx context.Context, msg string, fields ...zap.Field) {
	fields = fieldsWithRequestID(ctx, fields)
	l.l.Fatal(msg, fields...)
}

func fieldsWithRequestID(ctx context.Context, fields []zap.Field) []zap.Field {
	if reqID, ok := ctxdata.GetRequestID(ctx); ok {
		fields = append(fields, zap.String(requestID, reqID))
	}
	if admin, ok := ctxdata.GetAdminID(ctx); ok {
		fields = append(fields, zap.String(adminID, admin))
	}
	return fields
}
