package lexical

import "math"

// BM25 default parameters, matching the common Okapi settings.
const (
	defaultK1 = 1.5
	defaultB  = 0.75
)

// BM25 is an in-memory Okapi BM25 scorer built once over the catalog item
// descriptions. Scoring returns one score per catalog index so callers can
// gather scores for an arbitrary candidate id list.
type BM25 struct {
	k1        float64
	b         float64
	docLens   []int
	avgDocLen float64
	termFreqs []map[string]int
	docFreqs  map[string]int
	idf       map[string]float64
}

// NewBM25 builds the scorer from pre-tokenized documents. The document at
// position i corresponds to catalog index i.
func NewBM25(docs [][]string) *BM25 {
	bm := &BM25{
		k1:        defaultK1,
		b:         defaultB,
		docLens:   make([]int, len(docs)),
		termFreqs: make([]map[string]int, len(docs)),
		docFreqs:  make(map[string]int),
		idf:       make(map[string]float64),
	}

	totalLen := 0
	for i, doc := range docs {
		bm.docLens[i] = len(doc)
		totalLen += len(doc)

		tf := make(map[string]int, len(doc))
		for _, term := range doc {
			tf[term]++
		}
		bm.termFreqs[i] = tf

		for term := range tf {
			bm.docFreqs[term]++
		}
	}

	if len(docs) > 0 {
		bm.avgDocLen = float64(totalLen) / float64(len(docs))
	}

	n := float64(len(docs))
	for term, df := range bm.docFreqs {
		// +1 inside the log keeps rare-term idf positive.
		bm.idf[term] = math.Log(1 + (n-float64(df)+0.5)/(float64(df)+0.5))
	}

	return bm
}

// Len returns the number of indexed documents.
func (bm *BM25) Len() int {
	return len(bm.docLens)
}

// GetScores computes the BM25 relevance of every document against the query
// terms. The result is positional: scores[i] belongs to catalog index i.
func (bm *BM25) GetScores(queryTerms []string) []float64 {
	scores := make([]float64, len(bm.docLens))
	if bm.avgDocLen == 0 {
		return scores
	}

	for _, term := range queryTerms {
		idf, ok := bm.idf[term]
		if !ok {
			continue
		}
		for i, tf := range bm.termFreqs {
			freq := float64(tf[term])
			if freq == 0 {
				continue
			}
			norm := 1 - bm.b + bm.b*float64(bm.docLens[i])/bm.avgDocLen
			scores[i] += idf * freq * (bm.k1 + 1) / (freq + bm.k1*norm)
		}
	}

	return scores
}

// ScoresAt gathers the scores for a specific candidate id list, in order.
// Ids outside the corpus score zero.
func (bm *BM25) ScoresAt(scores []float64, ids []int) []float64 {
	out := make([]float64, len(ids))
	for i, id := range ids {
		if id >= 0 && id < len(scores) {
			out[i] = scores[id]
		}
	}
	return out
}
