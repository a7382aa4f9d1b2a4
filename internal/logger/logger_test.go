package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFields(t *testing.T) {
	tests := []struct {
		name     string
		fields   Fields
		expected string
	}{
		{"nil fields", nil, ""},
		{"single string", Fields{"category": "people"}, "{category=people}"},
		{"sorted keys", Fields{"b": 2, "a": "x"}, "{a=x, b=2}"},
		{"float precision", Fields{"ratio": 0.5}, "{ratio=0.50}"},
		{"int64", Fields{"duration_us": int64(12)}, "{duration_us=12}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFields(tt.fields))
		})
	}
}

func TestRequestIDFromContext(t *testing.T) {
	_, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := ContextWithRequestID(context.Background(), "req-1")
	id, ok := RequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "req-1", id)

	_, ok = RequestIDFromContext(ContextWithRequestID(context.Background(), ""))
	assert.False(t, ok)
}
