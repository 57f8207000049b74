package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextWithRequestID(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"stores request ID", "req-memorias-123"},
		{"handles empty string", ""},
		{"handles UUID format", "550e8400-e29b-41d4-a716-446655440000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := ContextWithRequestID(context.Background(), tt.id)
			assert.Equal(t, tt.id, RequestIDFromContext(ctx))
		})
	}
}

func TestContextWithCorrelationID(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"stores correlation ID", "corr-memorias-456"},
		{"handles empty string", ""},
		{"handles UUID format", "550e8400-e29b-41d4-a716-446655440000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := ContextWithCorrelationID(context.Background(), tt.id)
			assert.Equal(t, tt.id, CorrelationIDFromContext(ctx))
		})
	}
}

func TestContextWithRequestID_Overwrite(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "primeira")
	ctx = ContextWithRequestID(ctx, "segunda")
	assert.Equal(t, "segunda", RequestIDFromContext(ctx))
}

func TestIDFromContext_NotSet(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, RequestIDFromContext(ctx))
	assert.Empty(t, CorrelationIDFromContext(ctx))
}

func TestBothIDsCanBeStoredTogether(t *testing.T) {
	ctx := context.Background()
	ctx = ContextWithRequestID(ctx, "req-abc")
	ctx = ContextWithCorrelationID(ctx, "corr-xyz")

	assert.Equal(t, "req-abc", RequestIDFromContext(ctx))
	assert.Equal(t, "corr-xyz", CorrelationIDFromContext(ctx))
}
