package gemini

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

	"bytemart-search-be/pkg/llm"
)

type GeminiProvider struct {
	APIKey    string
	ModelName string
	BaseURL   string
	Client    *http.Client
}

// Ensure GeminiProvider implements both provider contracts
var (
	_ llm.LLMProvider    = &GeminiProvider{}
	_ llm.VisionProvider = &GeminiProvider{}
)

func NewGeminiProvider(apiKey, modelName string) *GeminiProvider {
	return &GeminiProvider{
		APIKey:    apiKey,
		ModelName: modelName,
		BaseURL:   "https://generativelanguage.googleapis.com/v1beta",
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// --- Interface Implementation ---

func (g *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}

	contents := make([]geminiContent, 0, len(history))
	for _, msg := range history {
		role := msg.Role
		// Gemini uses "model" where others use "assistant"
		if role == "assistant" {
			role = "model"
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: msg.Content}},
		})
	}

	return g.call(ctx, contents, options)
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return g.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

// GenerateWithImage sends the prompt plus an inline image. Local files are
// base64-encoded; URLs are fetched first since the API wants inline bytes.
func (g *GeminiProvider) GenerateWithImage(ctx context.Context, prompt string, imageRef string, opts ...llm.Option) (string, error) {
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}

	data, mime, err := loadImage(ctx, g.Client, imageRef)
	if err != nil {
		return "", fmt.Errorf("load image %s: %w", imageRef, err)
	}

	contents := []geminiContent{{
		Role: "user",
		Parts: []geminiPart{
			{Text: prompt},
			{InlineData: &geminiInlineData{MimeType: mime, Data: data}},
		},
	}}

	return g.call(ctx, contents, options)
}

func (g *GeminiProvider) call(ctx context.Context, contents []geminiContent, options *llm.Options) (string, error) {
	model := g.ModelName
	if options.Model != "" {
		model = options.Model
	}

	payload := geminiRequest{Contents: contents}
	if options.Temperature > 0 || options.MaxTokens > 0 {
		payload.GenerationConfig = &geminiGenerationConfig{
			Temperature:     options.Temperature,
			MaxOutputTokens: options.MaxTokens,
		}
	}

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.BaseURL, model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-goog-api-key", g.APIKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := g.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini error: status %d, body: %s", res.StatusCode, string(resBody))
	}

	var geminiRes geminiResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(geminiRes.Candidates) == 0 || len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}

func loadImage(ctx context.Context, client *http.Client, ref string) (data, mime string, err error) {
	var raw []byte
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		req, reqErr := http.NewRequestWithContext(ctx, "GET", ref, nil)
		if reqErr != nil {
			return "", "", reqErr
		}
		res, doErr := client.Do(req)
		if doErr != nil {
			return "", "", doErr
		}
		defer res.Body.Close()
		raw, err = io.ReadAll(res.Body)
		if err != nil {
			return "", "", err
		}
		if ct := res.Header.Get("Content-Type"); ct != "" {
			mime = ct
		}
	} else {
		raw, err = os.ReadFile(ref)
		if err != nil {
			return "", "", err
		}
	}

	if mime == "" {
		mime = "image/jpeg"
		if strings.HasSuffix(strings.ToLower(ref), ".png") {
			mime = "image/png"
		}
	}

	return base64.StdEncoding.EncodeToString(raw), mime, nil
}
