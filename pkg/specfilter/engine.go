// FILE: pkg/specfilter/engine.go
// PURPOSE: Soft numeric filter. Scores candidates against parsed numeric
// predicates and reorders them by total penalty without removing any.
package specfilter

import (
	"context"
	"log"
	"sort"
)

// Engine combines predicate parsing, attribute extraction and scoring.
type Engine struct {
	parser    *PredicateParser
	extractor *AttributeExtractor
	logger    *log.Logger
}

func NewEngine(parser *PredicateParser, extractor *AttributeExtractor, logger *log.Logger) *Engine {
	return &Engine{parser: parser, extractor: extractor, logger: logger}
}

// Rerank re-sorts indices by summed penalty across all clauses, ascending,
// with ties keeping their prior order. descriptions must align with indices
// by position. Clauses that fail to parse are skipped; with no usable
// clauses the input order comes back unchanged.
func (e *Engine) Rerank(ctx context.Context, clauses []string, indices []int, descriptions []string) []int {
	if len(indices) == 0 || len(clauses) == 0 {
		return indices
	}

	totals := make([]float64, len(indices))
	applied := 0
	for _, clause := range clauses {
		pred, err := e.parser.Parse(ctx, clause)
		if err != nil {
			e.logger.Printf("WARN: skipping numeric clause %q: %v", clause, err)
			continue
		}
		values := e.extractor.Extract(ctx, pred.Feature, descriptions)
		for i := range indices {
			totals[i] += pred.score(values[i])
		}
		applied++
	}
	if applied == 0 {
		return indices
	}

	order := make([]int, len(indices))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return totals[order[a]] < totals[order[b]] })

	out := make([]int, len(indices))
	for i, p := range order {
		out[i] = indices[p]
	}
	return out
}
