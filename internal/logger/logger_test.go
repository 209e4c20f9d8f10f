package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	t.Run("returns attached logger", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		l := zap.New(core).Sugar()

		ctx := NewContext(context.Background(), l)
		FromContext(ctx).Infow("hello", "symbol", "AAPL")

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		require.Equal(t, "hello", entry.Message)
		require.Equal(t, "AAPL", entry.ContextMap()["symbol"])
	})

	t.Run("falls back to global logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
		require.Equal(t, zap.S(), FromContext(context.Background()))
	})
}
