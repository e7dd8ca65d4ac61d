// FILE: pkg/query/decomposer.go
// PURPOSE: Splits a modification utterance into the qualitative part and the
// numeric-specification part, and breaks the latter into independent clauses.
package query

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"bytemart-search-be/internal/constant"
	"bytemart-search-be/pkg/llm"
)

// Decomposition is the two-way split of one modification utterance.
type Decomposition struct {
	General string `json:"general"`
	Special string `json:"special"`
}

// Decomposer drives the split prompts against an LLM backend.
type Decomposer struct {
	provider llm.LLMProvider
	logger   *log.Logger
}

func NewDecomposer(provider llm.LLMProvider, logger *log.Logger) *Decomposer {
	return &Decomposer{provider: provider, logger: logger}
}

// Split partitions text into general and special parts. A transport failure
// is returned to the caller; a response that cannot be parsed degrades to an
// empty decomposition so the turn can continue without filters.
func (d *Decomposer) Split(ctx context.Context, text string) (Decomposition, error) {
	resp, err := d.provider.Generate(ctx, fmt.Sprintf(constant.QuerySplitPrompt, text))
	if err != nil {
		return Decomposition{}, fmt.Errorf("query split: %w", err)
	}

	var dec Decomposition
	raw := llm.ExtractJSONObject(resp)
	if raw == "" || json.Unmarshal([]byte(raw), &dec) != nil {
		d.logger.Printf("WARN: unparseable split response, continuing without decomposition: %.120q", resp)
		return Decomposition{}, nil
	}
	return dec, nil
}

// SplitNumericClauses extracts independent numeric-specification clauses from
// the special part. Any failure degrades to no clauses.
func (d *Decomposer) SplitNumericClauses(ctx context.Context, special string) []string {
	if special == "" {
		return nil
	}
	resp, err := d.provider.Generate(ctx, fmt.Sprintf(constant.NumericClauseSplitPrompt, special))
	if err != nil {
		d.logger.Printf("WARN: numeric clause split failed, skipping: %v", err)
		return nil
	}

	var clauses []string
	raw := llm.ExtractJSONArray(resp)
	if raw == "" || json.Unmarshal([]byte(raw), &clauses) != nil {
		d.logger.Printf("WARN: unparseable clause response, skipping: %.120q", resp)
		return nil
	}
	out := clauses[:0]
	for _, c := range clauses {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
