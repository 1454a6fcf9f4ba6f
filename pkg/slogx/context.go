package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the request logger, or slog.Default outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// With returns ctx carrying the current logger extended with args.
func With(ctx context.Context, args ...any) context.Context {
	return WithContext(ctx, FromContext(ctx).With(args...))
}

// WithUser tags the request logger with the operator acting on the panel.
func WithUser(ctx context.Context, userID, role string) context.Context {
	return With(ctx, "user_id", userID, "role", role)
}

// WithDialog tags the logger with the dialog being saved. recordID is empty
// while a dialog creates a new record and is left out then.
func WithDialog(ctx context.Context, kind, recordID string) context.Context {
	if recordID == "" {
		return With(ctx, "dialog", kind)
	}
	return With(ctx, "dialog", kind, "record_id", recordID)
}
