package mentor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"codementor/internal/llmclient"
	"codementor/internal/prompt"
)

// Service holds the injected model client. It is stateless beyond the
// client handle and safe for concurrent use.
type Service struct {
	llm            llmclient.Client
	log            *zap.Logger
	maxPromptBytes int
}

// NewService wires the service. Pass maxPromptBytes <= 0 to disable
// the payload size guard.
func NewService(client llmclient.Client, logger *zap.Logger, maxPromptBytes int) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{llm: client, log: logger, maxPromptBytes: maxPromptBytes}
}

// Chat answers one free-form turn. The returned string is always
// displayable; on failure it is the fixed fallback text.
func (s *Service) Chat(ctx context.Context, req ChatRequest) (string, error) {
	if err := prompt.Guard(s.maxPromptBytes, req.History, req.Prompt, req.Image); err != nil {
		return FallbackChatText, err
	}
	text, err := s.llm.GenerateText(ctx, llmclient.Request{
		Contents:          prompt.Contents(req.History, req.Prompt, req.Image),
		SystemInstruction: req.SystemInstruction,
		Thinking:          req.Thinking,
	})
	if err != nil {
		s.log.Warn("chat degraded", zap.Error(err))
		return FallbackChatText, err
	}
	return text, nil
}

// ListProjects suggests practice projects for the given language.
// The slice is never nil; on failure it is empty.
func (s *Service) ListProjects(ctx context.Context, history []prompt.Message, systemInstruction, language string) ([]Project, error) {
	p, err := prompt.Render(prompt.Spec{
		Task:     "Suggest 3 to 5 practice projects that would help the user grow in the language below. Base the suggestions on the conversation so far when it gives hints about their level and interests.",
		Language: language,
		Rules: []string{
			"Each project must be completable by a single developer.",
			"Skills must name concrete techniques or tools, not vague qualities.",
		},
		Output: "A JSON array of projects matching the response schema.",
	})
	if err != nil {
		return []Project{}, err
	}
	if err := prompt.Guard(s.maxPromptBytes, history, p, nil); err != nil {
		return []Project{}, err
	}
	raw, err := s.llm.GenerateJSON(ctx, llmclient.Request{
		Contents:          prompt.Contents(history, p, nil),
		SystemInstruction: systemInstruction,
		Schema:            prompt.ProjectListSchema(),
	})
	if err != nil {
		s.log.Warn("list projects degraded", zap.Error(err))
		return []Project{}, err
	}
	projects, err := decodeProjects(raw)
	if err != nil {
		s.log.Warn("list projects decode failed", zap.Error(err))
		return []Project{}, err
	}
	return projects, nil
}

// GetChallenge generates one coding challenge for the language.
// On failure it returns the fixed fallback challenge.
func (s *Service) GetChallenge(ctx context.Context, language string) (Challenge, error) {
	p, err := prompt.Render(prompt.Spec{
		Task:     "Create one self-contained coding challenge for the language below. It should be solvable in under an hour and test a single concept well.",
		Language: language,
		Rules: []string{
			"The description must fully specify inputs, outputs, and edge cases.",
			"Examples show input and expected output pairs.",
			"The hint nudges without revealing the solution.",
		},
		Output: "A JSON object matching the response schema.",
	})
	if err != nil {
		return FallbackChallenge(), err
	}
	raw, err := s.llm.GenerateJSON(ctx, llmclient.Request{
		Contents: prompt.Contents(nil, p, nil),
		Schema:   prompt.ChallengeSchema(),
	})
	if err != nil {
		s.log.Warn("get challenge degraded", zap.Error(err))
		return FallbackChallenge(), err
	}
	ch, err := decodeChallenge(raw)
	if err != nil {
		s.log.Warn("get challenge decode failed", zap.Error(err))
		return FallbackChallenge(), err
	}
	return ch, nil
}

// Evaluate judges a submitted solution against its challenge.
// On failure it returns the fixed fallback verdict.
func (s *Service) Evaluate(ctx context.Context, challenge Challenge, code, language string) (EvaluationResult, error) {
	p, err := prompt.Render(prompt.Spec{
		Task:     "Evaluate whether the submitted code solves the challenge below. Judge correctness first, then quality.",
		Language: language,
		Inputs: []prompt.Input{
			{Name: "CHALLENGE", Body: challenge.Title + "\n" + challenge.Description},
			{Name: "CODE", Body: code},
		},
		Rules: []string{
			"Mark correct only if the code handles the stated edge cases.",
			"Feedback explains the verdict in plain language.",
			"Suggestions are concrete improvements, at most five.",
		},
		Output: "A JSON object matching the response schema.",
	})
	if err != nil {
		return FallbackEvaluation(), err
	}
	if err := prompt.Guard(s.maxPromptBytes, nil, p, nil); err != nil {
		return FallbackEvaluation(), err
	}
	raw, err := s.llm.GenerateJSON(ctx, llmclient.Request{
		Contents: prompt.Contents(nil, p, nil),
		Schema:   prompt.EvaluationSchema(),
	})
	if err != nil {
		s.log.Warn("evaluate degraded", zap.Error(err))
		return FallbackEvaluation(), err
	}
	res, err := decodeEvaluation(raw)
	if err != nil {
		s.log.Warn("evaluate decode failed", zap.Error(err))
		return FallbackEvaluation(), err
	}
	return res, nil
}

// ScanInputPrompts lists the prompts the given program would print when
// asking for user input, in order. The slice is never nil.
func (s *Service) ScanInputPrompts(ctx context.Context, code, language string) ([]string, error) {
	p, err := prompt.Render(prompt.Spec{
		Task:     "Read the code below and list, in execution order, the exact prompt strings it prints when requesting user input. Return an empty array if it reads no input.",
		Language: language,
		Inputs:   []prompt.Input{{Name: "CODE", Body: code}},
		Output:   "A JSON array of strings.",
	})
	if err != nil {
		return []string{}, err
	}
	return s.stringList(ctx, p, "input prompt shown to the user")
}

// RunSimulated predicts the program's standard output for the given
// stdin. The result is always displayable text.
func (s *Service) RunSimulated(ctx context.Context, code, language, stdin string) (string, error) {
	p, err := prompt.Render(prompt.Spec{
		Task:     "Act as the runtime for the language below. Execute the code mentally with the provided standard input and reply with exactly what the program would write to standard output. No commentary, no markdown.",
		Language: language,
		Inputs: []prompt.Input{
			{Name: "CODE", Body: code},
			{Name: "STDIN", Body: stdin},
		},
		Output: "The program's standard output, verbatim.",
	})
	if err != nil {
		return FallbackRunOutput, err
	}
	if err := prompt.Guard(s.maxPromptBytes, nil, p, nil); err != nil {
		return FallbackRunOutput, err
	}
	out, err := s.llm.GenerateText(ctx, llmclient.Request{
		Contents: prompt.Contents(nil, p, nil),
	})
	if err != nil {
		s.log.Warn("run simulated degraded", zap.Error(err))
		return FallbackRunOutput, err
	}
	return out, nil
}

// Completions suggests short continuations of the code at the cursor
// offset. The slice is never nil.
func (s *Service) Completions(ctx context.Context, code, language string, cursor int) ([]string, error) {
	if cursor < 0 || cursor > len(code) {
		cursor = len(code)
	}
	p, err := prompt.Render(prompt.Spec{
		Task:     fmt.Sprintf("Suggest up to 3 short code completions at the cursor position (byte offset %d, marked <CURSOR> below). Each suggestion is only the inserted text.", cursor),
		Language: language,
		Inputs:   []prompt.Input{{Name: "CODE", Body: code[:cursor] + "<CURSOR>" + code[cursor:]}},
		Rules: []string{
			"Suggestions must be syntactically plausible at the cursor.",
			"Keep each suggestion under three lines.",
		},
		Output: "A JSON array of strings.",
	})
	if err != nil {
		return []string{}, err
	}
	return s.stringList(ctx, p, "code completion text")
}

func (s *Service) stringList(ctx context.Context, p, itemDesc string) ([]string, error) {
	if err := prompt.Guard(s.maxPromptBytes, nil, p, nil); err != nil {
		return []string{}, err
	}
	raw, err := s.llm.GenerateJSON(ctx, llmclient.Request{
		Contents: prompt.Contents(nil, p, nil),
		Schema:   prompt.StringListSchema(itemDesc),
	})
	if err != nil {
		s.log.Warn("string list degraded", zap.Error(err))
		return []string{}, err
	}
	list, err := decodeStringList(raw)
	if err != nil {
		s.log.Warn("string list decode failed", zap.Error(err))
		return []string{}, err
	}
	return list, nil
}
