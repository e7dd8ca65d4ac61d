// FILE: pkg/prefs/generator.go
// PURPOSE: Turns a user's activity history into a preference-augmented
// search query for a given product type.
package prefs

import (
	"context"
	"fmt"
	"log"
	"strings"

	"bytemart-search-be/internal/constant"
	"bytemart-search-be/pkg/llm"
)

const recentWindow = 40

// Generator formulates preference queries from history.
type Generator struct {
	provider llm.LLMProvider
	history  *History
	logger   *log.Logger
}

func NewGenerator(provider llm.LLMProvider, history *History, logger *log.Logger) *Generator {
	return &Generator{provider: provider, history: history, logger: logger}
}

// Query augments baseProduct with the user's observed preferences. With no
// history or on any failure the base product text comes back unchanged.
func (g *Generator) Query(ctx context.Context, userID, baseProduct string) string {
	logs := g.history.Recent(ctx, userID, recentWindow)
	if logs == "" {
		return baseProduct
	}
	resp, err := g.provider.Generate(ctx, fmt.Sprintf(constant.PreferenceQueryPrompt, logs, baseProduct))
	if err != nil {
		g.logger.Printf("WARN: preference query generation failed, using base product: %v", err)
		return baseProduct
	}
	q := strings.TrimSpace(llm.StripCodeFence(resp))
	if q == "" || strings.ContainsRune(q, '\n') {
		g.logger.Printf("WARN: unusable preference query %.120q, using base product", resp)
		return baseProduct
	}
	return strings.Trim(q, `"`)
}
