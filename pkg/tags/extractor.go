// FILE: pkg/tags/extractor.go
// PURPOSE: Produces e-commerce filter tags for a product description, with a
// keyword sweep as the offline fallback.
package tags

import (
	"context"
	"fmt"
	"log"
	"strings"

	"bytemart-search-be/internal/constant"
	"bytemart-search-be/pkg/llm"
)

// commonTags is the fallback vocabulary: colors, brands, materials, features
// and product types that routinely appear as storefront filters.
var commonTags = []string{
	"black", "white", "red", "blue", "green", "yellow", "brown", "gray", "silver", "gold",
	"prestige", "samsung", "apple", "sony", "lg", "bosch", "philips", "nike", "adidas",
	"leather", "cotton", "wool", "plastic", "metal", "stainless steel", "glass", "wooden",
	"wireless", "waterproof", "smart", "automatic", "manual", "portable", "rechargeable",
	"shirt", "pants", "dress", "shoes", "refrigerator", "tv", "laptop", "phone", "camera",
}

// Extractor derives tags via the LLM backend.
type Extractor struct {
	provider llm.LLMProvider
	logger   *log.Logger
}

func NewExtractor(provider llm.LLMProvider, logger *log.Logger) *Extractor {
	return &Extractor{provider: provider, logger: logger}
}

// Extract returns tags for text. Failures degrade to the keyword sweep, so
// the result may be empty but the call never errors.
func (e *Extractor) Extract(ctx context.Context, text string) []string {
	resp, err := e.provider.Generate(ctx, fmt.Sprintf(constant.TagExtractionPrompt, text))
	if err != nil {
		e.logger.Printf("WARN: tag extraction failed, using keyword sweep: %v", err)
		return keywordTags(text)
	}
	resp = llm.StripCodeFence(resp)
	var out []string
	for _, t := range strings.Split(resp, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return keywordTags(text)
	}
	return out
}

func keywordTags(text string) []string {
	lower := strings.ToLower(text)
	compact := strings.ReplaceAll(lower, " ", "")
	var found []string
	for _, tag := range commonTags {
		if strings.Contains(lower, tag) || strings.Contains(compact, strings.ReplaceAll(tag, " ", "")) {
			found = append(found, tag)
		}
	}
	return found
}
