package utils

import (
	"fmt"
	"strings"
)

// StripCodeFences removes markdown fence markers a completion model may wrap
// its output in.
func StripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// ExtractJSONObject strips fences and cuts the span between the first '{' and
// the last '}'. The completion service sometimes wraps its JSON in prose;
// anything outside the outermost object delimiters is discarded. A response
// with no object span is an error for the caller to classify.
func ExtractJSONObject(raw string) (string, error) {
	s := StripCodeFences(raw)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
