package mentor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"codementor/internal/llmclient"
)

func TestSplitChunks_RoundTrip(t *testing.T) {
	cases := []string{
		"",
		"one",
		"hello world",
		"  leading spaces",
		"trailing spaces   ",
		"tabs\tand\nnewlines\r\n mixed   runs",
		"unicode héllo wörld",
		"a",
		"   ",
	}
	for _, in := range cases {
		chunks := SplitChunks(in)
		if got := strings.Join(chunks, ""); got != in {
			t.Fatalf("round trip failed for %q: chunks %q rebuild to %q", in, chunks, got)
		}
	}
}

func TestSplitChunks_WordBoundaries(t *testing.T) {
	chunks := SplitChunks("alpha beta  gamma")
	want := []string{"alpha ", "beta  ", "gamma"}
	if len(chunks) != len(want) {
		t.Fatalf("expected %d chunks, got %v", len(want), chunks)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Fatalf("chunk %d: got %q want %q", i, chunks[i], want[i])
		}
	}
}

func TestChatStream_YieldsFullText(t *testing.T) {
	fake := &llmclient.Fake{TextResponses: []string{"streamed  reply here"}}
	svc := NewService(fake, nil, 0)

	var got strings.Builder
	for chunk := range svc.ChatStream(context.Background(), ChatRequest{Prompt: "go"}) {
		got.WriteString(chunk)
	}
	if got.String() != "streamed  reply here" {
		t.Fatalf("concatenated stream %q does not match response", got.String())
	}
}

func TestChatStream_SingleFallbackChunkOnError(t *testing.T) {
	fake := &llmclient.Fake{Err: errors.New("down")}
	svc := NewService(fake, nil, 0)

	var chunks []string
	for chunk := range svc.ChatStream(context.Background(), ChatRequest{Prompt: "go"}) {
		chunks = append(chunks, chunk)
	}
	if len(chunks) != 1 {
		t.Fatalf("failure must yield exactly one chunk, got %d", len(chunks))
	}
	if chunks[0] != FallbackChatText {
		t.Fatalf("expected fallback text, got %q", chunks[0])
	}
}

func TestChatStream_ConsumerMayStopEarly(t *testing.T) {
	fake := &llmclient.Fake{TextResponses: []string{"a b c d e f g h"}}
	svc := NewService(fake, nil, 0)

	ctx, cancel := context.WithCancel(context.Background())
	ch := svc.ChatStream(ctx, ChatRequest{Prompt: "go"})
	<-ch
	cancel()
	// Drain until close; must terminate.
	for range ch {
	}
}
