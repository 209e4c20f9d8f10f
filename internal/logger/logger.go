package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func New() *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}

	env := os.Getenv("INSIGHT_ENV")
	if strings.EqualFold(env, "dev") || strings.EqualFold(env, "test") {
		logger, err = zap.NewDevelopment(opts...)
	} else {
		opts = append(opts, zap.Fields(zap.Field{
			Key:    "INSIGHT_ENV",
			Type:   zapcore.StringType,
			String: env,
		}))
		logger, err = zap.NewProduction(opts...)
	}

	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}

type contextKey struct{}

func NewContext(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the request scoped logger, or the global one
// if nothing was attached
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey{}).(*zap.SugaredLogger); ok {
			return logger
		}
	}
	return zap.S()
}

func init() {
	logger := New()
	zap.ReplaceGlobals(logger.Desugar())
}
