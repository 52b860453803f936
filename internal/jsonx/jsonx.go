// Package jsonx decodes JSON as it actually comes back from a language
// model: sometimes clean, sometimes wrapped in markdown fences or an
// extra layer of string quoting.
package jsonx

import (
	"encoding/json"
	"strings"
)

// StripFences removes a surrounding markdown code fence, if any.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Unmarshal tries to decode raw into v with best effort:
// 1) direct unmarshal
// 2) after stripping markdown fences
// 3) after unwrapping one level of JSON string quoting
func Unmarshal(raw []byte, v any) error {
	if err := json.Unmarshal(raw, v); err == nil {
		return nil
	}
	stripped := []byte(StripFences(string(raw)))
	err := json.Unmarshal(stripped, v)
	if err == nil {
		return nil
	}
	// The whole payload may be a quoted JSON string.
	var s string
	if err2 := json.Unmarshal(stripped, &s); err2 == nil {
		if err3 := json.Unmarshal([]byte(StripFences(s)), v); err3 == nil {
			return nil
		}
	}
	return err
}

// UnmarshalRaw accepts json.RawMessage directly.
func UnmarshalRaw(raw json.RawMessage, v any) error {
	return Unmarshal([]byte(raw), v)
}
