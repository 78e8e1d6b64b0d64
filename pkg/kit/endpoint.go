package kit

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Endpoint is a transport-agnostic action function.
// Annotating text and checking a word are Endpoints; the MCP tools and any
// future transport dispatch to the same functions.
type Endpoint func(ctx context.Context, request any) (response any, err error)

// Middleware wraps an Endpoint with cross-cutting concerns.
type Middleware func(Endpoint) Endpoint

// Chain composes middlewares so the first is outermost.
// Chain(a, b, c)(endpoint) == a(b(c(endpoint)))
func Chain(outer Middleware, others ...Middleware) Middleware {
	return func(next Endpoint) Endpoint {
		for i := len(others) - 1; i >= 0; i-- {
			next = others[i](next)
		}
		return outer(next)
	}
}

// Logging logs each call of the named endpoint at debug level, and failures
// at warn level.
func Logging(logger *slog.Logger, name string) Middleware {
	return func(next Endpoint) Endpoint {
		return func(ctx context.Context, request any) (any, error) {
			start := time.Now()
			resp, err := next(ctx, request)
			if err != nil {
				logger.Warn("endpoint failed", "endpoint", name, "error", err)
				return resp, err
			}
			logger.Debug("endpoint done", "endpoint", name, "elapsed", time.Since(start))
			return resp, nil
		}
	}
}

// Recover turns a panic in the named endpoint into an error.
func Recover(name string) Middleware {
	return func(next Endpoint) Endpoint {
		return func(ctx context.Context, request any) (resp any, err error) {
			defer func() {
				if r := recover(); r != nil {
					resp, err = nil, fmt.Errorf("%s: panic: %v", name, r)
				}
			}()
			return next(ctx, request)
		}
	}
}
