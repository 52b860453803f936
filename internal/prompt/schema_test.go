package prompt

import (
	"testing"

	genai "google.golang.org/genai"
)

func TestProjectListSchema_RequiredSet(t *testing.T) {
	s := ProjectListSchema()
	if s.Type != genai.TypeArray || s.Items == nil {
		t.Fatalf("expected array schema with items")
	}
	want := map[string]bool{"title": true, "description": true, "skills": true, "difficulty": true}
	for _, r := range s.Items.Required {
		delete(want, r)
	}
	if len(want) != 0 {
		t.Fatalf("missing required fields: %v", want)
	}
	diff := s.Items.Properties["difficulty"]
	if diff == nil || len(diff.Enum) != 3 {
		t.Fatalf("difficulty must be a 3-value enum, got %+v", diff)
	}
}

func TestChallengeSchema_RequiredSet(t *testing.T) {
	s := ChallengeSchema()
	if len(s.Required) != 2 {
		t.Fatalf("expected title and description required, got %v", s.Required)
	}
}

func TestEvaluationSchema_RequiredSet(t *testing.T) {
	s := EvaluationSchema()
	want := map[string]bool{"correct": true, "feedback": true}
	for _, r := range s.Required {
		delete(want, r)
	}
	if len(want) != 0 {
		t.Fatalf("missing required fields: %v", want)
	}
}
