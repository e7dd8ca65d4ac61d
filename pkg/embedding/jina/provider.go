package jina

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"bytemart-search-be/pkg/embedding"
)

// JinaProvider generates image and text embeddings in a shared space using
// the jina-clip model family.
type JinaProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

type embeddingInput struct {
	Text  string `json:"text,omitempty"`
	Image string `json:"image,omitempty"`
}

type embeddingRequest struct {
	Model string           `json:"model"`
	Input []embeddingInput `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Object    string    `json:"object"`
		Index     int       `json:"index"`
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewJinaProvider creates a provider against baseURL (the API root, without
// the /v1/embeddings suffix). Empty baseURL or model take the hosted API and
// the v1 CLIP model.
func NewJinaProvider(baseURL, model, apiKey string) *JinaProvider {
	if baseURL == "" {
		baseURL = "https://api.jina.ai"
	}
	if model == "" {
		model = "jina-clip-v1"
	}
	return &JinaProvider{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/") + "/v1/embeddings",
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

var _ embedding.MultimodalProvider = &JinaProvider{}

// Embed sends the text and/or image to the Jina API and maps the response
// back by submission order: text entry first, then image entry.
func (p *JinaProvider) Embed(ctx context.Context, input embedding.Input) (*embedding.Result, error) {
	inputs := make([]embeddingInput, 0, 2)

	if input.Text != "" {
		inputs = append(inputs, embeddingInput{Text: input.Text})
	}
	if input.ImageRef != "" {
		img, err := p.encodeImage(input.ImageRef)
		if err != nil {
			return nil, fmt.Errorf("failed to encode image %s: %w", input.ImageRef, err)
		}
		inputs = append(inputs, embeddingInput{Image: img})
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("embedding input has no modality")
	}

	reqBody := embeddingRequest{
		Model: p.model,
		Input: inputs,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.apiKey))

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jina api error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var jinaResp embeddingResponse
	if err := json.Unmarshal(bodyBytes, &jinaResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if jinaResp.Error != nil {
		return nil, fmt.Errorf("jina api returned error: %s", jinaResp.Error.Message)
	}

	if len(jinaResp.Data) < len(inputs) {
		return nil, fmt.Errorf("jina api returned %d embeddings for %d inputs", len(jinaResp.Data), len(inputs))
	}

	// Response order follows submission order.
	result := &embedding.Result{}
	pos := 0
	if input.Text != "" {
		result.TextVec = jinaResp.Data[pos].Embedding
		pos++
	}
	if input.ImageRef != "" {
		result.ImageVec = jinaResp.Data[pos].Embedding
	}

	return result, nil
}

// encodeImage passes URLs through and base64-encodes local files.
func (p *JinaProvider) encodeImage(ref string) (string, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, nil
	}
	raw, err := os.ReadFile(ref)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
