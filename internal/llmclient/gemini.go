package llmclient

import (
	"context"
	"encoding/json"
	"strings"

	genai "google.golang.org/genai"

	"codementor/internal/config"
)

// Gemini is a thin wrapper around the official genai client.
// It is constructed once at process start and passed down explicitly;
// there is no lazy singleton.
type Gemini struct {
	cli            *genai.Client
	flashModel     string
	proModel       string
	thinkingBudget int32
}

// NewGemini builds the client. A missing credential fails here with
// config.ErrMissingAPIKey so per-call paths never see it.
func NewGemini(ctx context.Context, cfg *config.Config) (*Gemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Gemini{
		cli:            cli,
		flashModel:     cfg.FlashModel,
		proModel:       cfg.ProModel,
		thinkingBudget: cfg.ThinkingBudget,
	}, nil
}

func (g *Gemini) Name() string { return "Gemini:" + g.flashModel }
func (g *Gemini) Close() error { return nil }

// model selects the variant: the thinking flag trades latency for depth.
func (g *Gemini) model(req Request) string {
	if req.Thinking {
		return g.proModel
	}
	return g.flashModel
}

func (g *Gemini) generationConfig(req Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if s := strings.TrimSpace(req.SystemInstruction); s != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: s}},
		}
	}
	if req.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = req.Schema
	}
	if req.Thinking {
		budget := g.thinkingBudget
		cfg.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: &budget}
	}
	return cfg
}

// GenerateText performs exactly one call and returns the trimmed
// response text. Thought parts are skipped.
func (g *Gemini) GenerateText(ctx context.Context, req Request) (string, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, g.model(req), req.Contents, g.generationConfig(req))
	if err != nil {
		return "", err
	}
	text, err := candidateText(resp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// GenerateJSON performs exactly one call constrained by req.Schema and
// returns the model's JSON as json.RawMessage.
func (g *Gemini) GenerateJSON(ctx context.Context, req Request) (json.RawMessage, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, g.model(req), req.Contents, g.generationConfig(req))
	if err != nil {
		return nil, err
	}
	text, err := candidateText(resp)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(text), nil
}

func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p == nil || p.Thought {
			continue
		}
		b.WriteString(p.Text)
	}
	if b.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return b.String(), nil
}
