package llm

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/avast/retry-go/v4"

	"codementor/internal/llmclient"
)

// RetryConfig bounds the retry loop around one invocation.
// Attempts of 1 keeps the single-call contract.
type RetryConfig struct {
	Attempts uint
	Delay    time.Duration
	MaxDelay time.Duration
}

func (rc RetryConfig) options(ctx context.Context) []retry.Option {
	return []retry.Option{
		retry.Context(ctx),
		retry.Attempts(rc.Attempts),
		retry.Delay(rc.Delay),
		retry.MaxDelay(rc.MaxDelay),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			var pErr *llmclient.PermanentError
			return !errors.As(err, &pErr)
		}),
	}
}

// Retry retries failed invocations with jittered exponential backoff.
// Permanent errors and context cancellation stop the loop immediately.
func Retry(cfg RetryConfig) Middleware {
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	if cfg.Delay <= 0 {
		cfg.Delay = 300 * time.Millisecond
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = 5 * time.Second
	}
	return func(next llmclient.Client) llmclient.Client {
		return &retrying{next: next, cfg: cfg}
	}
}

type retrying struct {
	next llmclient.Client
	cfg  RetryConfig
}

func (r *retrying) Name() string { return r.next.Name() }
func (r *retrying) Close() error { return r.next.Close() }

func (r *retrying) GenerateText(ctx context.Context, req llmclient.Request) (string, error) {
	return retry.DoWithData(func() (string, error) {
		return r.next.GenerateText(ctx, req)
	}, r.cfg.options(ctx)...)
}

func (r *retrying) GenerateJSON(ctx context.Context, req llmclient.Request) (json.RawMessage, error) {
	return retry.DoWithData(func() (json.RawMessage, error) {
		return r.next.GenerateJSON(ctx, req)
	}, r.cfg.options(ctx)...)
}
