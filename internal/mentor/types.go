// Package mentor exposes the typed operations of the coding-mentor
// integration layer: chat, project suggestions, challenges, code
// evaluation, simulated execution, completions, and job-search links.
//
// Every operation returns a value that is always safe to use. On any
// per-call failure the value is a fixed, shape-valid fallback (or an
// empty slice for list operations) and the returned error is advisory:
// callers may log it but never need an error branch to render results.
package mentor

import "codementor/internal/prompt"

// ChatRequest is one free-form chat turn with optional context.
type ChatRequest struct {
	Prompt            string
	History           []prompt.Message
	SystemInstruction string
	Image             *prompt.ImageData
	Thinking          bool
}

// Project is one suggested practice project.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Difficulty  string   `json:"difficulty"`
}

// Challenge is one generated coding challenge.
type Challenge struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Examples    []string `json:"examples,omitempty"`
	Hint        string   `json:"hint,omitempty"`
}

// EvaluationResult is the verdict on a submitted solution.
type EvaluationResult struct {
	Correct     bool     `json:"correct"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Fixed fallback values. Each satisfies the same shape invariants as a
// genuine result so downstream code has no special case.
const (
	FallbackChatText  = "Sorry, I couldn't process that request. Please try again."
	FallbackRunOutput = "(program output unavailable)"
)

var fallbackChallenge = Challenge{
	Title:       "Challenge unavailable",
	Description: "A practice challenge could not be generated right now. Please try again in a moment.",
}

var fallbackEvaluation = EvaluationResult{
	Correct:  false,
	Feedback: "Your solution could not be evaluated right now. Please try submitting again.",
}

// FallbackChallenge returns a copy of the fixed fallback challenge.
func FallbackChallenge() Challenge { return fallbackChallenge }

// FallbackEvaluation returns a copy of the fixed fallback verdict.
func FallbackEvaluation() EvaluationResult { return fallbackEvaluation }
