package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	lru "github.com/hashicorp/golang-lru/v2"

	"codementor/internal/llmclient"
)

// Cache memoizes structured responses in an LRU keyed by the full
// request. Opt-in: the core layer keeps no cross-call state unless a
// deployment enables this. Text generation is never cached; chat
// should stay fresh per turn.
func Cache(size int) Middleware {
	return func(next llmclient.Client) llmclient.Client {
		if size <= 0 {
			return next
		}
		c, err := lru.New[string, json.RawMessage](size)
		if err != nil {
			return next
		}
		return &cached{next: next, lru: c}
	}
}

type cached struct {
	next llmclient.Client
	lru  *lru.Cache[string, json.RawMessage]
}

func (c *cached) Name() string { return c.next.Name() }
func (c *cached) Close() error { return c.next.Close() }

func (c *cached) GenerateText(ctx context.Context, req llmclient.Request) (string, error) {
	return c.next.GenerateText(ctx, req)
}

func (c *cached) GenerateJSON(ctx context.Context, req llmclient.Request) (json.RawMessage, error) {
	key, ok := cacheKey(req)
	if ok {
		if raw, hit := c.lru.Get(key); hit {
			return raw, nil
		}
	}
	raw, err := c.next.GenerateJSON(ctx, req)
	if err == nil && ok {
		c.lru.Add(key, raw)
	}
	return raw, err
}

func cacheKey(req llmclient.Request) (string, bool) {
	b, err := json.Marshal(struct {
		Contents          []*cacheContent `json:"contents"`
		SystemInstruction string          `json:"system"`
		Thinking          bool            `json:"thinking"`
	}{cacheContents(req), req.SystemInstruction, req.Thinking})
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), true
}

type cacheContent struct {
	Role  string   `json:"role"`
	Texts []string `json:"texts"`
}

func cacheContents(req llmclient.Request) []*cacheContent {
	out := make([]*cacheContent, 0, len(req.Contents))
	for _, c := range req.Contents {
		if c == nil {
			continue
		}
		cc := &cacheContent{Role: c.Role}
		for _, p := range c.Parts {
			if p == nil {
				continue
			}
			if p.Text != "" {
				cc.Texts = append(cc.Texts, p.Text)
			}
			if p.InlineData != nil {
				sum := sha256.Sum256(p.InlineData.Data)
				cc.Texts = append(cc.Texts, p.InlineData.MIMEType+":"+hex.EncodeToString(sum[:]))
			}
		}
		out = append(out, cc)
	}
	return out
}
