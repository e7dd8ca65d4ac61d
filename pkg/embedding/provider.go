package embedding

import "context"

// Input carries the modalities of one query. Either field may be empty, but
// not both. ImageRef is a local file path or an http(s) URL.
type Input struct {
	Text     string
	ImageRef string
}

// Result holds one L2-normalizable vector per provided modality. A modality
// that was not in the input is nil.
type Result struct {
	TextVec  []float32
	ImageVec []float32
}

// MultimodalProvider defines the interface for generating image and text
// embeddings in a shared space.
type MultimodalProvider interface {
	Embed(ctx context.Context, input Input) (*Result, error)
}
