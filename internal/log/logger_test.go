package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextKeys(t *testing.T) {
	ctx := context.Background()

	ctx = WithRequestID(ctx, "req-1")
	ctx = WithGuestID(ctx, "guest-7")
	ctx = WithHotelID(ctx, "hotel-3")

	assert.Equal(t, "req-1", ctx.Value(RequestIDKey))
	assert.Equal(t, "guest-7", GuestID(ctx))
	assert.Equal(t, "hotel-3", ctx.Value(HotelIDKey))
}

func TestWithAddsRequestScopedFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := WithHotelID(WithRequestID(context.Background(), "req-9"), "hotel-1")

	With(ctx, zap.New(core)).Info("quoted")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-9", fields["request_id"])
	assert.Equal(t, "hotel-1", fields["hotel_id"])
	assert.NotContains(t, fields, "guest_id")
}

func TestInitFallsBackToInfoOnBadLevel(t *testing.T) {
	require.NoError(t, Init("not-a-level"))
	assert.True(t, L(context.Background()).Core().Enabled(zapcore.InfoLevel))
	assert.False(t, L(context.Background()).Core().Enabled(zapcore.DebugLevel))
}
