package mentor

import (
	"encoding/json"
	"fmt"
	"strings"

	"codementor/internal/jsonx"
	"codementor/internal/prompt"
)

// Payload types mirror the response schemas with pointer fields so a
// field the model omitted is distinguishable from a zero value.
// Decoding fails closed: any missing required field rejects the whole
// record and the caller substitutes the fixed fallback.

type projectPayload struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Skills      *[]string `json:"skills"`
	Difficulty  *string   `json:"difficulty"`
}

func decodeProjects(raw json.RawMessage) ([]Project, error) {
	var payloads []projectPayload
	if err := jsonx.UnmarshalRaw(raw, &payloads); err != nil {
		return nil, err
	}
	out := make([]Project, 0, len(payloads))
	for i, p := range payloads {
		proj, err := p.toProject()
		if err != nil {
			return nil, fmt.Errorf("project %d: %w", i, err)
		}
		out = append(out, proj)
	}
	return out, nil
}

func (p projectPayload) toProject() (Project, error) {
	if p.Title == nil || strings.TrimSpace(*p.Title) == "" {
		return Project{}, fmt.Errorf("missing title")
	}
	if p.Description == nil || strings.TrimSpace(*p.Description) == "" {
		return Project{}, fmt.Errorf("missing description")
	}
	if p.Skills == nil {
		return Project{}, fmt.Errorf("missing skills")
	}
	if p.Difficulty == nil || !validDifficulty(*p.Difficulty) {
		return Project{}, fmt.Errorf("missing or invalid difficulty")
	}
	return Project{
		Title:       *p.Title,
		Description: *p.Description,
		Skills:      *p.Skills,
		Difficulty:  *p.Difficulty,
	}, nil
}

func validDifficulty(d string) bool {
	for _, lvl := range prompt.DifficultyLevels {
		if d == lvl {
			return true
		}
	}
	return false
}

type challengePayload struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Examples    []string `json:"examples"`
	Hint        string   `json:"hint"`
}

func decodeChallenge(raw json.RawMessage) (Challenge, error) {
	var p challengePayload
	if err := jsonx.UnmarshalRaw(raw, &p); err != nil {
		return Challenge{}, err
	}
	if p.Title == nil || strings.TrimSpace(*p.Title) == "" {
		return Challenge{}, fmt.Errorf("challenge: missing title")
	}
	if p.Description == nil || strings.TrimSpace(*p.Description) == "" {
		return Challenge{}, fmt.Errorf("challenge: missing description")
	}
	return Challenge{
		Title:       *p.Title,
		Description: *p.Description,
		Examples:    p.Examples,
		Hint:        p.Hint,
	}, nil
}

type evaluationPayload struct {
	Correct     *bool    `json:"correct"`
	Feedback    *string  `json:"feedback"`
	Suggestions []string `json:"suggestions"`
}

func decodeEvaluation(raw json.RawMessage) (EvaluationResult, error) {
	var p evaluationPayload
	if err := jsonx.UnmarshalRaw(raw, &p); err != nil {
		return EvaluationResult{}, err
	}
	if p.Correct == nil {
		return EvaluationResult{}, fmt.Errorf("evaluation: missing correct")
	}
	if p.Feedback == nil || strings.TrimSpace(*p.Feedback) == "" {
		return EvaluationResult{}, fmt.Errorf("evaluation: missing feedback")
	}
	return EvaluationResult{
		Correct:     *p.Correct,
		Feedback:    *p.Feedback,
		Suggestions: p.Suggestions,
	}, nil
}

func decodeStringList(raw json.RawMessage) ([]string, error) {
	var out []string
	if err := jsonx.UnmarshalRaw(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}
