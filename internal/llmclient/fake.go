package llmclient

import (
	"context"
	"encoding/json"
)

// Fake returns queued responses for offline use and tests.
// When the queues are empty it replays the last Text/JSON values.
type Fake struct {
	TextResponses []string
	JSONResponses []json.RawMessage
	Err           error

	// Requests records every request seen, in order.
	Requests []Request

	lastText string
	lastJSON json.RawMessage
}

func (f *Fake) Name() string { return "FakeLLM" }
func (f *Fake) Close() error { return nil }

func (f *Fake) GenerateText(ctx context.Context, req Request) (string, error) {
	f.Requests = append(f.Requests, req)
	if f.Err != nil {
		return "", f.Err
	}
	if len(f.TextResponses) > 0 {
		f.lastText = f.TextResponses[0]
		f.TextResponses = f.TextResponses[1:]
	}
	return f.lastText, nil
}

func (f *Fake) GenerateJSON(ctx context.Context, req Request) (json.RawMessage, error) {
	f.Requests = append(f.Requests, req)
	if f.Err != nil {
		return nil, f.Err
	}
	if len(f.JSONResponses) > 0 {
		f.lastJSON = f.JSONResponses[0]
		f.JSONResponses = f.JSONResponses[1:]
	}
	if f.lastJSON == nil {
		return json.RawMessage(`{}`), nil
	}
	return f.lastJSON, nil
}
