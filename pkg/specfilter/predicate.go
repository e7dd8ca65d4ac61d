// FILE: pkg/specfilter/predicate.go
// PURPOSE: Parses a free-text numeric clause ("between 20 and 50 watts") into
// a structured predicate over a named feature.
package specfilter

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"bytemart-search-be/internal/constant"
	"bytemart-search-be/pkg/llm"
)

// Operators a predicate can carry.
const (
	OpEqual   = "="
	OpGreater = ">"
	OpLess    = "<"
	OpBetween = "between"
)

// Predicate is one numeric constraint. Range is populated only for
// OpBetween, Value for the other operators.
type Predicate struct {
	Feature  string
	Operator string
	Value    float64
	Range    [2]float64
}

// PredicateParser turns clauses into predicates via the LLM backend.
type PredicateParser struct {
	provider llm.LLMProvider
	logger   *log.Logger
}

func NewPredicateParser(provider llm.LLMProvider, logger *log.Logger) *PredicateParser {
	return &PredicateParser{provider: provider, logger: logger}
}

// Parse converts one clause into a predicate. Failures of any kind return an
// error so the caller can skip the clause instead of filtering on garbage.
func (p *PredicateParser) Parse(ctx context.Context, clause string) (Predicate, error) {
	resp, err := p.provider.Generate(ctx, fmt.Sprintf(constant.NumericPredicatePrompt, clause))
	if err != nil {
		return Predicate{}, fmt.Errorf("predicate parse: %w", err)
	}

	var parsed struct {
		Feature  string          `json:"feature"`
		Operator string          `json:"operator"`
		Value    json.RawMessage `json:"value"`
	}
	raw := llm.ExtractJSONObject(resp)
	if raw == "" {
		return Predicate{}, fmt.Errorf("predicate parse: no JSON in response %.120q", resp)
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return Predicate{}, fmt.Errorf("predicate parse: %w", err)
	}
	if parsed.Feature == "" {
		return Predicate{}, fmt.Errorf("predicate parse: missing feature in %.120q", raw)
	}

	pred := Predicate{Feature: parsed.Feature, Operator: parsed.Operator}
	switch parsed.Operator {
	case OpEqual, OpGreater, OpLess:
		if err := json.Unmarshal(parsed.Value, &pred.Value); err != nil {
			return Predicate{}, fmt.Errorf("predicate parse: scalar value: %w", err)
		}
	case OpBetween:
		var pair []float64
		if err := json.Unmarshal(parsed.Value, &pair); err != nil || len(pair) != 2 {
			return Predicate{}, fmt.Errorf("predicate parse: range value in %.120q", raw)
		}
		pred.Range = [2]float64{pair[0], pair[1]}
	default:
		return Predicate{}, fmt.Errorf("predicate parse: unknown operator %q", parsed.Operator)
	}
	return pred, nil
}

// score is the per-item penalty for this predicate. Lower is better. A
// missing value always scores worst.
func (p Predicate) score(value *float64) float64 {
	if value == nil {
		return 1
	}
	v := *value
	switch p.Operator {
	case OpEqual:
		if p.Value == 0 {
			if v == 0 {
				return 0
			}
			return 1
		}
		d := v/p.Value - 1
		if d < 0 {
			d = -d
		}
		return d
	case OpGreater:
		if v > p.Value {
			return 0
		}
		return 1
	case OpLess:
		if v < p.Value {
			return 0
		}
		return 1
	case OpBetween:
		if v > p.Range[0] && v < p.Range[1] {
			return 0
		}
		return 1
	}
	return 1
}
