package common

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// LoggingMiddleware logs one event per request using the logger carried in ctx
func LoggingMiddleware() Middleware {
	return func(ctx context.Context, request Request, next HandlerFunc) (Response, error) {
		logger := zerolog.Ctx(ctx)
		start := time.Now()

		response, err := next(ctx, request)

		event := logger.Debug()
		if err != nil {
			event = logger.Warn().Err(err)
		}
		event.
			Str("request", fmt.Sprintf("%T", request)).
			Dur("duration", time.Since(start)).
			Msg("request handled")

		return response, err
	}
}
