// Package prompt builds model request payloads: conversation contents,
// section-structured prompt text, and response schemas.
package prompt

import (
	"errors"

	genai "google.golang.org/genai"
)

// ErrPromptTooLarge is returned before any network call when the
// combined payload exceeds the configured byte ceiling.
var ErrPromptTooLarge = errors.New("prompt: payload exceeds size limit")

// Role tags one conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ImageData is inline image bytes with their MIME type.
type ImageData struct {
	MIMEType string
	Data     []byte
}

// Part is one fragment of a turn: text, an image, or both.
type Part struct {
	Text  string
	Image *ImageData
}

// Message is one turn of the conversation. Owned by the caller and
// never mutated here.
type Message struct {
	Role  Role
	Parts []Part
}

// Contents maps the history plus the current turn into genai contents.
// Order and roles are preserved. A part field left empty contributes
// nothing; a turn with no text and no image carries no parts at all.
func Contents(history []Message, text string, image *ImageData) []*genai.Content {
	out := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		c := &genai.Content{Role: string(m.Role)}
		for _, p := range m.Parts {
			c.Parts = append(c.Parts, genaiParts(p.Text, p.Image)...)
		}
		out = append(out, c)
	}
	out = append(out, &genai.Content{
		Role:  string(RoleUser),
		Parts: genaiParts(text, image),
	})
	return out
}

func genaiParts(text string, image *ImageData) []*genai.Part {
	var parts []*genai.Part
	if text != "" {
		parts = append(parts, &genai.Part{Text: text})
	}
	if image != nil && len(image.Data) > 0 {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: image.MIMEType, Data: image.Data},
		})
	}
	return parts
}

// Guard rejects oversized payloads instead of sending a malformed or
// truncated request. maxBytes <= 0 disables the check.
func Guard(maxBytes int, history []Message, text string, image *ImageData) error {
	if maxBytes <= 0 {
		return nil
	}
	total := len(text)
	if image != nil {
		total += len(image.Data)
	}
	for _, m := range history {
		for _, p := range m.Parts {
			total += len(p.Text)
			if p.Image != nil {
				total += len(p.Image.Data)
			}
		}
	}
	if total > maxBytes {
		return ErrPromptTooLarge
	}
	return nil
}
