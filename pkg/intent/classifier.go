// FILE: pkg/intent/classifier.go
// PURPOSE: Classifies the opening turn of a session into one of the two
// supported shopping intents from the query image and optional text.
package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"bytemart-search-be/internal/constant"
	"bytemart-search-be/pkg/llm"
)

// Intent codes for a new session.
const (
	// SimilarProduct means the customer wants more of what the image shows.
	SimilarProduct = 0
	// SpaceImprovement means the customer wants recommendations that improve
	// or replace what the image shows.
	SpaceImprovement = 1
)

const (
	labelSimilarProduct   = "similar_product"
	labelSpaceImprovement = "space_improvement_or_replacement"
)

// Classification is the outcome of intent detection. RecommendationsQuery is
// populated only for SpaceImprovement.
type Classification struct {
	Intent               int
	RecommendationsQuery string
}

// Classifier runs the intent prompt against a vision-capable backend.
type Classifier struct {
	provider llm.VisionProvider
	logger   *log.Logger
}

func NewClassifier(provider llm.VisionProvider, logger *log.Logger) *Classifier {
	return &Classifier{provider: provider, logger: logger}
}

// Classify determines the intent for imageRef with optional accompanying
// text. Without an image the text-only prompt is used, so a pure text
// opening never touches the image path. The whole turn depends on the
// outcome, so transport failures and unrecognized labels are both errors
// rather than fallbacks.
func (c *Classifier) Classify(ctx context.Context, imageRef, text string) (Classification, error) {
	var resp string
	var err error
	if imageRef == "" {
		resp, err = c.provider.Generate(ctx, fmt.Sprintf(constant.IntentTextPrompt, text))
	} else {
		textPart := ""
		if text != "" {
			textPart = fmt.Sprintf(" and the accompanying text: %q", text)
		}
		resp, err = c.provider.GenerateWithImage(ctx, fmt.Sprintf(constant.IntentPrompt, textPart), imageRef)
	}
	if err != nil {
		return Classification{}, fmt.Errorf("intent classification: %w", err)
	}

	var parsed struct {
		Intent               string `json:"intent"`
		RecommendationsQuery string `json:"recommendations_query"`
	}
	raw := llm.ExtractJSONObject(resp)
	if raw == "" {
		return Classification{}, fmt.Errorf("intent classification: no JSON in response %.120q", resp)
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return Classification{}, fmt.Errorf("intent classification: parse response: %w", err)
	}

	switch parsed.Intent {
	case labelSimilarProduct:
		return Classification{Intent: SimilarProduct}, nil
	case labelSpaceImprovement:
		return Classification{Intent: SpaceImprovement, RecommendationsQuery: parsed.RecommendationsQuery}, nil
	default:
		return Classification{}, fmt.Errorf("intent classification: unknown intent %q", parsed.Intent)
	}
}
