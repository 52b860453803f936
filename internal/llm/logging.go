package llm

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"codementor/internal/llmclient"
)

// WithLogging logs request sizes and errors. Pass nil to use zap.NewNop.
func WithLogging(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next llmclient.Client) llmclient.Client {
		return &logging{next: next, log: logger}
	}
}

type logging struct {
	next llmclient.Client
	log  *zap.Logger
}

func (l *logging) Name() string { return l.next.Name() }
func (l *logging) Close() error { return l.next.Close() }

func (l *logging) GenerateText(ctx context.Context, req llmclient.Request) (string, error) {
	l.log.Debug("llm text request",
		zap.String("client", l.next.Name()),
		zap.Int("turns", len(req.Contents)),
		zap.Bool("thinking", req.Thinking),
	)
	out, err := l.next.GenerateText(ctx, req)
	if err != nil {
		l.log.Warn("llm text request failed", zap.String("client", l.next.Name()), zap.Error(err))
	}
	return out, err
}

func (l *logging) GenerateJSON(ctx context.Context, req llmclient.Request) (json.RawMessage, error) {
	l.log.Debug("llm json request",
		zap.String("client", l.next.Name()),
		zap.Int("turns", len(req.Contents)),
		zap.Bool("thinking", req.Thinking),
	)
	raw, err := l.next.GenerateJSON(ctx, req)
	if err != nil {
		l.log.Warn("llm json request failed", zap.String("client", l.next.Name()), zap.Error(err))
	}
	return raw, err
}
