package llm

import "strings"

// Model output frequently wraps the structured payload in markdown fences or
// leading prose. These helpers cut the payload out; the caller still owns
// unmarshalling and its fallback.

// StripCodeFence removes a surrounding ``` / ```json fence, if any.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ExtractJSONObject returns the outermost {...} span of the response, or ""
// when no object is present.
func ExtractJSONObject(s string) string {
	s = StripCodeFence(s)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}

// ExtractJSONArray returns the outermost [...] span of the response, or ""
// when no array is present.
func ExtractJSONArray(s string) string {
	s = StripCodeFence(s)
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}
