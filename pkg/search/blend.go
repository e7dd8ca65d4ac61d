package search

import (
	"sort"

	"bytemart-search-be/pkg/lexical"
)

// Default hybrid blend weights. LambdaHybrid trades combined-index distance
// against lexical relevance; LambdaText mixes in the text-only distance.
const (
	DefaultLambdaHybrid = 0.5
	DefaultLambdaText   = 0.6
)

// BlendingReranker merges embedding distances with BM25 lexical scores into a
// single ranked order over the combined-index candidates.
type BlendingReranker struct {
	bm25         *lexical.BM25
	lambdaHybrid float64
	lambdaText   float64
}

func NewBlendingReranker(bm25 *lexical.BM25, lambdaHybrid, lambdaText float64) *BlendingReranker {
	return &BlendingReranker{
		bm25:         bm25,
		lambdaHybrid: lambdaHybrid,
		lambdaText:   lambdaText,
	}
}

// Score computes the blended score per position of If. All three signals are
// min-max normalized independently; distances rank ascending, lexical scores
// descending, hence the (1 - ns) flip:
//
//	cb    = lh*norm(Df) + (1-lh)*(1-norm(bm25[If]))
//	final = (1-lt)*cb + lt*norm(Dt)
//
// Lower is better.
func (b *BlendingReranker) Score(df []float32, fi []int, dt []float32, queryTerms []string) []float64 {
	all := b.bm25.GetScores(queryTerms)
	sp := b.bm25.ScoresAt(all, fi)

	nd := normalize(floats64(df))
	nt := normalize(floats64(dt))
	ns := normalize(sp)

	final := make([]float64, len(fi))
	for i := range fi {
		cb := b.lambdaHybrid*nd[i] + (1-b.lambdaHybrid)*(1-ns[i])
		textPart := 0.0
		if i < len(nt) {
			textPart = nt[i]
		}
		final[i] = (1-b.lambdaText)*cb + b.lambdaText*textPart
	}
	return final
}

// Rank sorts the combined-index candidate ids ascending by blended score.
// The sort is stable so equal scores keep their retrieval order, making the
// ranking deterministic for identical inputs.
func (b *BlendingReranker) Rank(df []float32, fi []int, dt []float32, queryTerms []string) []int {
	scores := b.Score(df, fi, dt, queryTerms)

	order := make([]int, len(fi))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, c int) bool {
		return scores[order[a]] < scores[order[c]]
	})

	ranked := make([]int, len(fi))
	for i, pos := range order {
		ranked[i] = fi[pos]
	}
	return ranked
}

func floats64(x []float32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}
