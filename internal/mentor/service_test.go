package mentor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"codementor/internal/llmclient"
	"codementor/internal/prompt"
)

var errBoom = errors.New("transport down")

func TestChat_ReturnsModelText(t *testing.T) {
	fake := &llmclient.Fake{TextResponses: []string{"bonjour"}}
	svc := NewService(fake, nil, 0)

	out, err := svc.Chat(context.Background(), ChatRequest{Prompt: "say hi in french"})
	require.NoError(t, err)
	require.Equal(t, "bonjour", out)
}

func TestChat_FallbackOnTransportError(t *testing.T) {
	fake := &llmclient.Fake{Err: errBoom}
	svc := NewService(fake, nil, 0)

	out, err := svc.Chat(context.Background(), ChatRequest{Prompt: "hi"})
	require.Error(t, err)
	require.Equal(t, FallbackChatText, out)
}

func TestChat_OversizedPromptNeverSent(t *testing.T) {
	fake := &llmclient.Fake{TextResponses: []string{"unused"}}
	svc := NewService(fake, nil, 8)

	out, err := svc.Chat(context.Background(), ChatRequest{Prompt: "well over eight bytes"})
	require.ErrorIs(t, err, prompt.ErrPromptTooLarge)
	require.Equal(t, FallbackChatText, out)
	require.Empty(t, fake.Requests, "no request may reach the client")
}

func TestEvaluate_OversizedCodeNeverSent(t *testing.T) {
	fake := &llmclient.Fake{}
	svc := NewService(fake, nil, 64)

	res, err := svc.Evaluate(context.Background(), Challenge{Title: "T", Description: "D"},
		strings.Repeat("x", 4096), "Go")
	require.ErrorIs(t, err, prompt.ErrPromptTooLarge)
	require.Equal(t, FallbackEvaluation(), res)
	require.Empty(t, fake.Requests)
}

func TestChat_ThinkingFlagForwarded(t *testing.T) {
	fake := &llmclient.Fake{TextResponses: []string{"deep answer"}}
	svc := NewService(fake, nil, 0)

	_, err := svc.Chat(context.Background(), ChatRequest{Prompt: "hard question", Thinking: true})
	require.NoError(t, err)
	require.Len(t, fake.Requests, 1)
	require.True(t, fake.Requests[0].Thinking)
}

func TestListProjects_Success(t *testing.T) {
	fake := &llmclient.Fake{JSONResponses: []json.RawMessage{json.RawMessage(`[
		{"title":"CLI Todo","description":"A todo app.","skills":["files","flags"],"difficulty":"Beginner"},
		{"title":"Web Scraper","description":"Scrape a page.","skills":["http"],"difficulty":"Intermediate"}
	]`)}}
	svc := NewService(fake, nil, 0)

	projects, err := svc.ListProjects(context.Background(), nil, "", "Go")
	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.Equal(t, "CLI Todo", projects[0].Title)
	require.Len(t, fake.Requests, 1)
	require.NotNil(t, fake.Requests[0].Schema, "structured call must carry a schema")
}

func TestListProjects_EmptyNotNilOnError(t *testing.T) {
	fake := &llmclient.Fake{Err: errBoom}
	svc := NewService(fake, nil, 0)

	projects, err := svc.ListProjects(context.Background(), nil, "", "Go")
	require.Error(t, err)
	require.NotNil(t, projects)
	require.Empty(t, projects)
}

func TestListProjects_MissingRequiredFieldFailsClosed(t *testing.T) {
	// Second project lacks its difficulty: the whole decode is
	// rejected rather than returning a partially valid list.
	fake := &llmclient.Fake{JSONResponses: []json.RawMessage{json.RawMessage(`[
		{"title":"A","description":"d","skills":[],"difficulty":"Beginner"},
		{"title":"B","description":"d","skills":[]}
	]`)}}
	svc := NewService(fake, nil, 0)

	projects, err := svc.ListProjects(context.Background(), nil, "", "Go")
	require.Error(t, err)
	require.NotNil(t, projects)
	require.Empty(t, projects)
}

func TestListProjects_InvalidDifficultyRejected(t *testing.T) {
	fake := &llmclient.Fake{JSONResponses: []json.RawMessage{json.RawMessage(`[
		{"title":"A","description":"d","skills":[],"difficulty":"Expert"}
	]`)}}
	svc := NewService(fake, nil, 0)

	projects, err := svc.ListProjects(context.Background(), nil, "", "Go")
	require.Error(t, err)
	require.Empty(t, projects)
}

func TestGetChallenge_Success(t *testing.T) {
	fake := &llmclient.Fake{JSONResponses: []json.RawMessage{json.RawMessage(
		`{"title":"FizzBuzz","description":"Print fizz buzz.","examples":["3 -> Fizz"],"hint":"modulo"}`,
	)}}
	svc := NewService(fake, nil, 0)

	ch, err := svc.GetChallenge(context.Background(), "Python")
	require.NoError(t, err)
	require.Equal(t, "FizzBuzz", ch.Title)
	require.Equal(t, "modulo", ch.Hint)
}

func TestGetChallenge_ExactFallbackOnTransportError(t *testing.T) {
	fake := &llmclient.Fake{Err: errBoom}
	svc := NewService(fake, nil, 0)

	ch, err := svc.GetChallenge(context.Background(), "Python")
	require.Error(t, err)
	require.Equal(t, FallbackChallenge(), ch)
}

func TestGetChallenge_ExactFallbackOnMissingField(t *testing.T) {
	fake := &llmclient.Fake{JSONResponses: []json.RawMessage{json.RawMessage(`{"title":"No description"}`)}}
	svc := NewService(fake, nil, 0)

	ch, err := svc.GetChallenge(context.Background(), "Python")
	require.Error(t, err)
	require.Equal(t, FallbackChallenge(), ch)
}

func TestEvaluate_Success(t *testing.T) {
	fake := &llmclient.Fake{JSONResponses: []json.RawMessage{json.RawMessage(
		`{"correct":true,"feedback":"Handles all cases.","suggestions":["use a constant"]}`,
	)}}
	svc := NewService(fake, nil, 0)

	res, err := svc.Evaluate(context.Background(), Challenge{Title: "T", Description: "D"}, "code", "Go")
	require.NoError(t, err)
	require.True(t, res.Correct)
	require.Equal(t, "Handles all cases.", res.Feedback)
}

func TestEvaluate_ExactFallbackOnTransportError(t *testing.T) {
	fake := &llmclient.Fake{Err: errBoom}
	svc := NewService(fake, nil, 0)

	res, err := svc.Evaluate(context.Background(), Challenge{}, "code", "Go")
	require.Error(t, err)
	require.Equal(t, FallbackEvaluation(), res)
}

func TestEvaluate_MissingCorrectFailsClosed(t *testing.T) {
	// "correct" absent entirely, not just false.
	fake := &llmclient.Fake{JSONResponses: []json.RawMessage{json.RawMessage(`{"feedback":"looks fine"}`)}}
	svc := NewService(fake, nil, 0)

	res, err := svc.Evaluate(context.Background(), Challenge{}, "code", "Go")
	require.Error(t, err)
	require.Equal(t, FallbackEvaluation(), res)
}

func TestScanInputPrompts_EmptyNotNilOnError(t *testing.T) {
	fake := &llmclient.Fake{Err: errBoom}
	svc := NewService(fake, nil, 0)

	prompts, err := svc.ScanInputPrompts(context.Background(), "code", "Python")
	require.Error(t, err)
	require.NotNil(t, prompts)
	require.Empty(t, prompts)
}

func TestScanInputPrompts_Success(t *testing.T) {
	fake := &llmclient.Fake{JSONResponses: []json.RawMessage{json.RawMessage(`["Enter name: ","Enter age: "]`)}}
	svc := NewService(fake, nil, 0)

	prompts, err := svc.ScanInputPrompts(context.Background(), `name = input("Enter name: ")`, "Python")
	require.NoError(t, err)
	require.Equal(t, []string{"Enter name: ", "Enter age: "}, prompts)
}

func TestRunSimulated_Success(t *testing.T) {
	fake := &llmclient.Fake{TextResponses: []string{"hello world"}}
	svc := NewService(fake, nil, 0)

	out, err := svc.RunSimulated(context.Background(), `print("hello world")`, "Python", "")
	require.NoError(t, err)
	require.Equal(t, "hello world", out)
}

func TestRunSimulated_FallbackOnError(t *testing.T) {
	fake := &llmclient.Fake{Err: errBoom}
	svc := NewService(fake, nil, 0)

	out, err := svc.RunSimulated(context.Background(), "code", "Python", "stdin")
	require.Error(t, err)
	require.Equal(t, FallbackRunOutput, out)
}

func TestCompletions_EmptyNotNilOnError(t *testing.T) {
	fake := &llmclient.Fake{Err: errBoom}
	svc := NewService(fake, nil, 0)

	list, err := svc.Completions(context.Background(), "func main() {", "Go", 13)
	require.Error(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestCompletions_CursorClamped(t *testing.T) {
	fake := &llmclient.Fake{JSONResponses: []json.RawMessage{json.RawMessage(`["}"]`)}}
	svc := NewService(fake, nil, 0)

	list, err := svc.Completions(context.Background(), "func main() {", "Go", 9999)
	require.NoError(t, err)
	require.Equal(t, []string{"}"}, list)
}

func TestStructuredCalls_NullListDecodesEmpty(t *testing.T) {
	fake := &llmclient.Fake{JSONResponses: []json.RawMessage{json.RawMessage(`null`)}}
	svc := NewService(fake, nil, 0)

	list, err := svc.ScanInputPrompts(context.Background(), "code", "Go")
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}
