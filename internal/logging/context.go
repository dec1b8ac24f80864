// internal/logging/context.go
package logging

import (
	"context"

	"go.uber.org/zap"
)

// ContextFields extracts correlation data from context.
func ContextFields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, 2)

	if product := ProductFromContext(ctx); product != "" {
		fields = append(fields, zap.String("ide.product", product))
	}
	if file := SourceFileFromContext(ctx); file != "" {
		fields = append(fields, zap.String("source.file", file))
	}

	return fields
}

// Context key types
type productCtxKey struct{}
type sourceFileCtxKey struct{}
type loggerCtxKey struct{}

// WithProduct records the IDE product (e.g. "GoLand2024.2") being processed.
func WithProduct(ctx context.Context, product string) context.Context {
	if product == "" {
		return ctx
	}
	return context.WithValue(ctx, productCtxKey{}, product)
}

// ProductFromContext extracts the IDE product from context.
func ProductFromContext(ctx context.Context) string {
	if p, ok := ctx.Value(productCtxKey{}).(string); ok {
		return p
	}
	return ""
}

// WithSourceFile records the recent projects file being processed.
func WithSourceFile(ctx context.Context, path string) context.Context {
	if path == "" {
		return ctx
	}
	return context.WithValue(ctx, sourceFileCtxKey{}, path)
}

// SourceFileFromContext extracts the recent projects file from context.
func SourceFileFromContext(ctx context.Context) string {
	if f, ok := ctx.Value(sourceFileCtxKey{}).(string); ok {
		return f
	}
	return ""
}

// WithLogger stores logger in context.
func WithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, logger)
}

// FromContext retrieves logger from context.
// Returns a nop logger if not found.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerCtxKey{}).(*Logger); ok && l != nil {
		return l
	}
	return NewNop()
}
