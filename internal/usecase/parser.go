package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrNoJSONObject = errors.New("model output contains no JSON object")

// ParseJSONOutput extracts the JSON object from a model completion. Models
// often wrap the object in a markdown fence or add a sentence around it, so
// the first complete object is decoded and anything after it is ignored.
func ParseJSONOutput(completion string) (map[string]any, error) {
	text := stripCodeFence(strings.TrimSpace(completion))

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return nil, ErrNoJSONObject
	}

	var firstErr error
	for start >= 0 {
		var out map[string]any
		err := json.NewDecoder(strings.NewReader(text[start:])).Decode(&out)
		if err == nil {
			return out, nil
		}
		if firstErr == nil {
			firstErr = err
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return nil, fmt.Errorf("parse model output: %w", firstErr)
}

func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	// language tag, e.g. ```json
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	}
	if end := strings.LastIndex(text, "```"); end >= 0 {
		text = text[:end]
	}
	return strings.TrimSpace(text)
}

// StringField returns the first key present in out. A missing key yields ""
// rather than an error.
func StringField(out map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := out[k]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprint(v)
	}
	return ""
}
