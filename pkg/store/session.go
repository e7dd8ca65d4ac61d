package store

import "sync"

// Session holds the conversational search state for one user conversation.
// It is created on a RESET turn and mutated in place by the pipeline on every
// turn. Turns against the same session are strictly sequential; Mu serializes
// callers that might race on the same session id.
type Session struct {
	ID string `json:"id"`

	// CurrentText is the fully refined, brand/color-specific description
	// driving reranking and display.
	CurrentText string `json:"current_text"`

	// BackBone is the generic product-type description driving initial
	// retrieval. No brand or color.
	BackBone string `json:"back_bone"`

	// RetrievedIdx holds the candidate indices of the last full retrieval.
	// REFINE turns without a conflict rerank this set instead of retrieving.
	RetrievedIdx []int `json:"retrieved_idx"`

	// Blend weights for the combined image+text embedding.
	ImgWeight  float64 `json:"img_weight"`
	TextWeight float64 `json:"text_weight"`

	LastQuery string `json:"last_query"`

	Mu sync.Mutex `json:"-"`
}

// Default blend weights for the combined embedding space.
const (
	DefaultImgWeight  = 0.3
	DefaultTextWeight = 0.7
)

// Reset clears the conversational state back to the start of a conversation.
func (s *Session) Reset() {
	s.CurrentText = ""
	s.BackBone = ""
	s.RetrievedIdx = nil
	s.ImgWeight = DefaultImgWeight
	s.TextWeight = DefaultTextWeight
	s.LastQuery = ""
}
