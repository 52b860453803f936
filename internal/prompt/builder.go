package prompt

import (
	"bytes"
	"fmt"
	"strings"
)

// Input is one named block of source material (code, stdin, a prior
// challenge) included verbatim in the prompt.
type Input struct {
	Name string
	Body string
}

// Spec defines the sections of a task prompt. Rendering is
// deterministic: same spec, same string.
type Spec struct {
	Task     string
	Language string
	Inputs   []Input
	Rules    []string
	Output   string
}

// Render writes the spec as [SECTION] blocks.
func Render(spec Spec) (string, error) {
	if strings.TrimSpace(spec.Task) == "" {
		return "", fmt.Errorf("prompt: task is empty")
	}
	var buf bytes.Buffer
	writeSection(&buf, "TASK", spec.Task)
	writeSection(&buf, "LANGUAGE", spec.Language)
	for _, in := range spec.Inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			continue
		}
		writeSection(&buf, strings.ToUpper(name), in.Body)
	}
	writeSection(&buf, "RULES", formatList(spec.Rules))
	writeSection(&buf, "OUTPUT", spec.Output)
	return strings.TrimSpace(buf.String()) + "\n", nil
}

func formatList(items []string) string {
	var buf strings.Builder
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		fmt.Fprintf(&buf, "- %s\n", item)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func writeSection(buf *bytes.Buffer, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	buf.WriteString("[")
	buf.WriteString(title)
	buf.WriteString("]\n")
	buf.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString("\n")
}
