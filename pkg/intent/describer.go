// FILE: pkg/intent/describer.go
// PURPOSE: Derives the backbone (generic product type) and detailed
// description for a fresh session, from either the query image or a text
// query.
package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"bytemart-search-be/internal/constant"
	"bytemart-search-be/pkg/llm"
)

// Description holds the two query representations a session carries. The
// backbone stays fixed for the lifetime of the session; the detailed
// description evolves with each refinement.
type Description struct {
	Backbone string `json:"backbone"`
	Detailed string `json:"detailed_description"`
}

// Describer produces session descriptions from images or text.
type Describer struct {
	provider llm.VisionProvider
	logger   *log.Logger
}

func NewDescriber(provider llm.VisionProvider, logger *log.Logger) *Describer {
	return &Describer{provider: provider, logger: logger}
}

// FromImage describes the product shown in imageRef.
func (d *Describer) FromImage(ctx context.Context, imageRef string) (Description, error) {
	resp, err := d.provider.GenerateWithImage(ctx, constant.ImageDescriptionPrompt, imageRef)
	if err != nil {
		return Description{}, fmt.Errorf("image description: %w", err)
	}
	return d.parse(resp, "image description")
}

// FromText splits a textual query into backbone and detailed description.
func (d *Describer) FromText(ctx context.Context, text string) (Description, error) {
	resp, err := d.provider.Generate(ctx, fmt.Sprintf(constant.TextSplitPrompt, text))
	if err != nil {
		return Description{}, fmt.Errorf("text split: %w", err)
	}
	desc, err := d.parse(resp, "text split")
	if err != nil {
		// The raw query still works as a description, just less focused.
		d.logger.Printf("WARN: %v, using the query verbatim", err)
		return Description{Backbone: text, Detailed: text}, nil
	}
	return desc, nil
}

func (d *Describer) parse(resp, op string) (Description, error) {
	raw := llm.ExtractJSONObject(resp)
	if raw == "" {
		return Description{}, fmt.Errorf("%s: no JSON in response %.120q", op, resp)
	}
	var desc Description
	if err := json.Unmarshal([]byte(raw), &desc); err != nil {
		return Description{}, fmt.Errorf("%s: parse response: %w", op, err)
	}
	if desc.Backbone == "" && desc.Detailed == "" {
		return Description{}, fmt.Errorf("%s: empty description in response %.120q", op, resp)
	}
	if desc.Detailed == "" {
		desc.Detailed = desc.Backbone
	}
	if desc.Backbone == "" {
		desc.Backbone = desc.Detailed
	}
	return desc, nil
}
