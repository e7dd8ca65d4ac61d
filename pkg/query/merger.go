// FILE: pkg/query/merger.go
// PURPOSE: Maintains the running product description across turns: detects
// contradictions against the current description and folds a qualitative
// modification into it.
package query

import (
	"context"
	"fmt"
	"log"
	"strings"

	"bytemart-search-be/internal/constant"
	"bytemart-search-be/pkg/llm"
)

// Merger keeps the session's product description coherent turn to turn.
type Merger struct {
	provider llm.LLMProvider
	logger   *log.Logger
}

func NewMerger(provider llm.LLMProvider, logger *log.Logger) *Merger {
	return &Merger{provider: provider, logger: logger}
}

// CheckConflict reports whether the modification contradicts the current
// description. Any failure reads as no conflict, which keeps the turn on the
// cheaper refine path.
func (m *Merger) CheckConflict(ctx context.Context, current, modification string) bool {
	if current == "" || modification == "" {
		return false
	}
	resp, err := m.provider.Generate(ctx, fmt.Sprintf(constant.ConflictCheckPrompt, current, modification))
	if err != nil {
		m.logger.Printf("WARN: conflict check failed, assuming no conflict: %v", err)
		return false
	}
	return strings.Contains(strings.ToLower(resp), "true")
}

// Merge folds the qualitative modification into the current description. When
// the model's answer cannot be located the modification is appended verbatim
// so no customer wording is lost.
func (m *Merger) Merge(ctx context.Context, current, modification string) string {
	if modification == "" {
		return current
	}
	if current == "" {
		return modification
	}
	resp, err := m.provider.Generate(ctx, fmt.Sprintf(constant.MergeDescriptionPrompt, current, modification))
	if err != nil {
		m.logger.Printf("WARN: merge failed, appending modification: %v", err)
		return current + " " + modification
	}
	merged := extractFenced(resp)
	if merged == "" {
		m.logger.Printf("WARN: merge response missing fenced text, appending modification: %.120q", resp)
		return current + " " + modification
	}
	return merged
}

// extractFenced pulls the text between the first pair of triple backticks,
// falling back to the trimmed response when only prose came back.
func extractFenced(s string) string {
	start := strings.Index(s, "```")
	if start < 0 {
		return strings.TrimSpace(s)
	}
	rest := s[start+3:]
	end := strings.Index(rest, "```")
	if end < 0 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:end])
}
