// FILE: pkg/specfilter/extractor.go
// PURPOSE: Pulls one named numeric feature out of product descriptions, in
// fixed-size batches, with a regex fallback when the model answer does not
// parse.
package specfilter

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"bytemart-search-be/internal/constant"
	"bytemart-search-be/pkg/llm"
)

// DefaultBatchSize bounds the number of descriptions per extraction call.
const DefaultBatchSize = 10

// Fallback patterns for common unit-bearing features. Features outside this
// map simply extract nothing when the model answer is unusable.
var featurePatterns = map[string]*regexp.Regexp{
	"power_watts":     regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*watts`),
	"battery_mah":     regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*mAh`),
	"capacity_liters": regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:liters|L)\b`),
}

// AttributeExtractor batches descriptions through the extraction prompt.
type AttributeExtractor struct {
	provider  llm.LLMProvider
	batchSize int
	logger    *log.Logger
}

func NewAttributeExtractor(provider llm.LLMProvider, batchSize int, logger *log.Logger) *AttributeExtractor {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &AttributeExtractor{provider: provider, batchSize: batchSize, logger: logger}
}

// Extract returns one value per description, aligned by position, nil when
// the feature is absent. Per-batch failures degrade to regex extraction and
// then to nil, never to an error.
func (e *AttributeExtractor) Extract(ctx context.Context, feature string, descriptions []string) []*float64 {
	values := make([]*float64, 0, len(descriptions))
	for start := 0; start < len(descriptions); start += e.batchSize {
		end := start + e.batchSize
		if end > len(descriptions) {
			end = len(descriptions)
		}
		values = append(values, e.extractBatch(ctx, feature, descriptions[start:end])...)
	}
	return values
}

func (e *AttributeExtractor) extractBatch(ctx context.Context, feature string, batch []string) []*float64 {
	var sb strings.Builder
	for _, d := range batch {
		sb.WriteString("- ")
		sb.WriteString(d)
		sb.WriteString("\n")
	}
	prompt := fmt.Sprintf(constant.AttributeExtractionPrompt, feature, sb.String())

	resp, err := e.provider.Generate(ctx, prompt)
	if err != nil {
		e.logger.Printf("WARN: attribute extraction call failed for %q, using regex fallback: %v", feature, err)
		return regexExtract(feature, batch)
	}

	var parsed []struct {
		Value *float64 `json:"value"`
	}
	raw := llm.ExtractJSONArray(resp)
	if raw == "" || json.Unmarshal([]byte(raw), &parsed) != nil || len(parsed) != len(batch) {
		e.logger.Printf("WARN: unparseable extraction response for %q, using regex fallback", feature)
		return regexExtract(feature, batch)
	}

	values := make([]*float64, len(batch))
	for i := range parsed {
		values[i] = parsed[i].Value
	}
	return values
}

func regexExtract(feature string, batch []string) []*float64 {
	values := make([]*float64, len(batch))
	pattern, ok := featurePatterns[feature]
	if !ok {
		return values
	}
	for i, d := range batch {
		m := pattern.FindStringSubmatch(d)
		if m == nil {
			continue
		}
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			values[i] = &v
		}
	}
	return values
}
