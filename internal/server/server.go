// Package server exposes the mentor operations to the web front-end
// over REST plus one websocket endpoint for streamed chat.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"codementor/internal/mentor"
	"codementor/internal/prompt"
)

// MentorService is the surface the handlers need. Satisfied by
// *mentor.Service; narrowed here so tests can stub it.
type MentorService interface {
	Chat(ctx context.Context, req mentor.ChatRequest) (string, error)
	ChatStream(ctx context.Context, req mentor.ChatRequest) <-chan string
	ListProjects(ctx context.Context, history []prompt.Message, systemInstruction, language string) ([]mentor.Project, error)
	GetChallenge(ctx context.Context, language string) (mentor.Challenge, error)
	Evaluate(ctx context.Context, challenge mentor.Challenge, code, language string) (mentor.EvaluationResult, error)
	ScanInputPrompts(ctx context.Context, code, language string) ([]string, error)
	RunSimulated(ctx context.Context, code, language, stdin string) (string, error)
	Completions(ctx context.Context, code, language string, cursor int) ([]string, error)
}

// NewRouter builds the HTTP router.
func NewRouter(svc MentorService, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &handler{svc: svc, log: logger}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(Logger(logger))
	r.Use(chimiddleware.Timeout(120 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/chat", h.chat)
		r.Get("/chat/stream", h.chatStream)
		r.Post("/projects", h.listProjects)
		r.Post("/challenge", h.getChallenge)
		r.Post("/evaluate", h.evaluate)
		r.Post("/inputs", h.scanInputPrompts)
		r.Post("/run", h.runSimulated)
		r.Post("/completions", h.completions)
		r.Get("/jobs/links", h.jobSearchLinks)
	})

	return r
}
