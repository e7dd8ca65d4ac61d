package search

import (
	"context"
	"log"

	"bytemart-search-be/pkg/embedding"
)

// QueryEncoder turns a query (image and/or text) into the combined and
// text-only embeddings used against the index pair.
type QueryEncoder struct {
	provider embedding.MultimodalProvider
	dim      int
	logger   *log.Logger
}

// NewQueryEncoder creates an encoder; dim is the embedding dimension used for
// the availability fallback vector.
func NewQueryEncoder(provider embedding.MultimodalProvider, dim int, logger *log.Logger) *QueryEncoder {
	return &QueryEncoder{
		provider: provider,
		dim:      dim,
		logger:   logger,
	}
}

// Encode returns (imageVec, textVec, combinedVec). The combined vector is the
// weighted, renormalized sum of the normalized per-modality vectors; with one
// modality present it degenerates to that modality's normalized vector.
//
// On embedding-service failure a normalized random vector substitutes for all
// three so the turn stays available. This trades correctness for availability
// and is logged as a warning, never surfaced as an error.
func (e *QueryEncoder) Encode(ctx context.Context, imageRef, text string, imgWeight, textWeight float64) (ie, te, ce []float32) {
	res, err := e.provider.Embed(ctx, embedding.Input{Text: text, ImageRef: imageRef})
	if err != nil {
		e.logger.Printf("[WARN] Embedding service failed, substituting random fallback vector: %v", err)
		fallback := RandomUnitVector(e.dim)
		return fallback, fallback, fallback
	}

	if res.ImageVec != nil {
		ie = NormalizeL2(res.ImageVec)
	}
	if res.TextVec != nil {
		te = NormalizeL2(res.TextVec)
	}

	switch {
	case ie != nil && te != nil:
		ce = Combine(ie, te, imgWeight, textWeight)
	case ie != nil:
		ce = ie
	case te != nil:
		ce = te
	default:
		e.logger.Printf("[WARN] Embedding service returned no modality, substituting random fallback vector")
		ce = RandomUnitVector(e.dim)
		ie, te = ce, ce
	}

	return ie, te, ce
}
