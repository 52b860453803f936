package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"codementor/internal/mentor"
	"codementor/internal/prompt"
)

type handler struct {
	svc MentorService
	log *zap.Logger
}

// Wire DTOs. Image data travels base64-encoded ([]byte JSON encoding).

type imageDTO struct {
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"data"`
}

type partDTO struct {
	Text  string    `json:"text,omitempty"`
	Image *imageDTO `json:"image,omitempty"`
}

type messageDTO struct {
	Role  string    `json:"role"`
	Parts []partDTO `json:"parts"`
}

type chatRequestDTO struct {
	Prompt            string       `json:"prompt"`
	History           []messageDTO `json:"history"`
	SystemInstruction string       `json:"systemInstruction"`
	Image             *imageDTO    `json:"image"`
	Thinking          bool         `json:"thinking"`
}

func (d chatRequestDTO) toChatRequest() mentor.ChatRequest {
	return mentor.ChatRequest{
		Prompt:            d.Prompt,
		History:           toPromptMessages(d.History),
		SystemInstruction: d.SystemInstruction,
		Image:             toImage(d.Image),
		Thinking:          d.Thinking,
	}
}

func toPromptMessages(in []messageDTO) []prompt.Message {
	if len(in) == 0 {
		return nil
	}
	out := make([]prompt.Message, 0, len(in))
	for _, m := range in {
		msg := prompt.Message{Role: prompt.Role(m.Role)}
		for _, p := range m.Parts {
			msg.Parts = append(msg.Parts, prompt.Part{Text: p.Text, Image: toImage(p.Image)})
		}
		out = append(out, msg)
	}
	return out
}

func toImage(in *imageDTO) *prompt.ImageData {
	if in == nil || len(in.Data) == 0 {
		return nil
	}
	return &prompt.ImageData{MIMEType: in.MIMEType, Data: in.Data}
}

func (h *handler) chat(w http.ResponseWriter, r *http.Request) {
	var dto chatRequestDTO
	if !decodeBody(w, r, &dto) {
		return
	}
	text, err := h.svc.Chat(r.Context(), dto.toChatRequest())
	if err != nil {
		h.log.Warn("chat served fallback", zap.Error(err))
	}
	writeJSON(w, map[string]string{"text": text})
}

func (h *handler) listProjects(w http.ResponseWriter, r *http.Request) {
	var dto struct {
		History           []messageDTO `json:"history"`
		SystemInstruction string       `json:"systemInstruction"`
		Language          string       `json:"language"`
	}
	if !decodeBody(w, r, &dto) {
		return
	}
	projects, err := h.svc.ListProjects(r.Context(), toPromptMessages(dto.History), dto.SystemInstruction, dto.Language)
	if err != nil {
		h.log.Warn("projects served fallback", zap.Error(err))
	}
	writeJSON(w, map[string]any{"projects": projects})
}

func (h *handler) getChallenge(w http.ResponseWriter, r *http.Request) {
	var dto struct {
		Language string `json:"language"`
	}
	if !decodeBody(w, r, &dto) {
		return
	}
	ch, err := h.svc.GetChallenge(r.Context(), dto.Language)
	if err != nil {
		h.log.Warn("challenge served fallback", zap.Error(err))
	}
	writeJSON(w, ch)
}

func (h *handler) evaluate(w http.ResponseWriter, r *http.Request) {
	var dto struct {
		Challenge mentor.Challenge `json:"challenge"`
		Code      string           `json:"code"`
		Language  string           `json:"language"`
	}
	if !decodeBody(w, r, &dto) {
		return
	}
	res, err := h.svc.Evaluate(r.Context(), dto.Challenge, dto.Code, dto.Language)
	if err != nil {
		h.log.Warn("evaluate served fallback", zap.Error(err))
	}
	writeJSON(w, res)
}

func (h *handler) scanInputPrompts(w http.ResponseWriter, r *http.Request) {
	var dto struct {
		Code     string `json:"code"`
		Language string `json:"language"`
	}
	if !decodeBody(w, r, &dto) {
		return
	}
	prompts, err := h.svc.ScanInputPrompts(r.Context(), dto.Code, dto.Language)
	if err != nil {
		h.log.Warn("inputs served fallback", zap.Error(err))
	}
	writeJSON(w, map[string]any{"prompts": prompts})
}

func (h *handler) runSimulated(w http.ResponseWriter, r *http.Request) {
	var dto struct {
		Code     string `json:"code"`
		Language string `json:"language"`
		Stdin    string `json:"stdin"`
	}
	if !decodeBody(w, r, &dto) {
		return
	}
	out, err := h.svc.RunSimulated(r.Context(), dto.Code, dto.Language, dto.Stdin)
	if err != nil {
		h.log.Warn("run served fallback", zap.Error(err))
	}
	writeJSON(w, map[string]string{"output": out})
}

func (h *handler) completions(w http.ResponseWriter, r *http.Request) {
	var dto struct {
		Code     string `json:"code"`
		Language string `json:"language"`
		Cursor   int    `json:"cursor"`
	}
	if !decodeBody(w, r, &dto) {
		return
	}
	list, err := h.svc.Completions(r.Context(), dto.Code, dto.Language, dto.Cursor)
	if err != nil {
		h.log.Warn("completions served fallback", zap.Error(err))
	}
	writeJSON(w, map[string]any{"completions": list})
}

func (h *handler) jobSearchLinks(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	writeJSON(w, map[string]any{"groups": mentor.JobSearchLinks(language)})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
