package rerank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Reranker orders a document batch by relevance to a reference text. The
// returned slice holds positions into the submitted batch, most relevant
// first, and may be a strict subset of the batch.
type Reranker interface {
	Rerank(ctx context.Context, query string, documents []string, topK int) ([]int, error)
}

// rerankRequest is the request payload for the rerank endpoint.
type rerankRequest struct {
	Query     string   `json:"query"`
	Documents []string `json:"documents"`
	Model     string   `json:"model"`
	TopK      int      `json:"top_k,omitempty"`
}

// rerankResult is a single scored document in the response. Index addresses
// the document's position in the submitted batch.
type rerankResult struct {
	Index          int     `json:"index"`
	RelevanceScore float64 `json:"relevance_score"`
}

type rerankResponse struct {
	Data  []rerankResult `json:"data"`
	Model string         `json:"model"`
}

// Client calls a Voyage-style cross-item relevance endpoint over HTTP.
type Client struct {
	BaseURL string
	APIKey  string
	Model   string
	HTTP    *http.Client
	logger  *log.Logger
}

var _ Reranker = &Client{}

func NewClient(baseURL, apiKey, model string, timeout time.Duration, logger *log.Logger) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Model:   model,
		HTTP:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Rerank submits the batch and returns batch positions ordered by relevance.
// Positions the service dropped are simply absent; positions outside the
// batch bounds are discarded. An empty result is a valid "no results" answer.
func (c *Client) Rerank(ctx context.Context, query string, documents []string, topK int) ([]int, error) {
	if len(documents) == 0 {
		return []int{}, nil
	}

	reqBody := rerankRequest{
		Query:     query,
		Documents: documents,
		Model:     c.Model,
		TopK:      topK,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rerank request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/rerank", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create rerank request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.APIKey))

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call rerank endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rerank endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var rr rerankResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return nil, fmt.Errorf("failed to decode rerank response: %w", err)
	}

	positions := make([]int, 0, len(rr.Data))
	seen := make(map[int]bool, len(rr.Data))
	for _, res := range rr.Data {
		if res.Index < 0 || res.Index >= len(documents) {
			c.logger.Printf("[WARN] Rerank response index %d out of batch bounds (%d documents), discarding", res.Index, len(documents))
			continue
		}
		if seen[res.Index] {
			c.logger.Printf("[WARN] Rerank response repeated index %d, discarding", res.Index)
			continue
		}
		seen[res.Index] = true
		positions = append(positions, res.Index)
	}

	return positions, nil
}
