package mentor

import (
	"context"
	"unicode"
)

// ChatStream answers one chat turn as a stream of chunks. The call
// blocks once on the model, then yields whitespace-delimited chunks;
// concatenating every chunk reconstructs the full text exactly.
// On failure the stream carries a single fallback chunk, so consumers
// never observe an empty or silently terminated stream.
// The channel is closed when done or when ctx is canceled.
func (s *Service) ChatStream(ctx context.Context, req ChatRequest) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		text, err := s.Chat(ctx, req)
		if err != nil {
			// One whole fallback chunk, not word-split: the
			// consumer sees a complete message either way.
			select {
			case out <- FallbackChatText:
			case <-ctx.Done():
			}
			return
		}
		for _, chunk := range SplitChunks(text) {
			select {
			case out <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// SplitChunks splits s into chunks at space-to-nonspace boundaries.
// Each chunk keeps its trailing whitespace, so the concatenation of
// all chunks equals s.
func SplitChunks(s string) []string {
	if s == "" {
		return nil
	}
	var chunks []string
	start := 0
	prevSpace := false
	for i, r := range s {
		if prevSpace && !unicode.IsSpace(r) {
			chunks = append(chunks, s[start:i])
			start = i
		}
		prevSpace = unicode.IsSpace(r)
	}
	return append(chunks, s[start:])
}
