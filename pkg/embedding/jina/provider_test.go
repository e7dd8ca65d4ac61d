package jina

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"bytemart-search-be/pkg/embedding"
)

func TestEmbedUsesConfiguredEndpointAndModel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/embeddings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}

		var req embeddingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "jina-clip-v2" {
			t.Errorf("model = %q, want the configured jina-clip-v2", req.Model)
		}
		if len(req.Input) != 1 || req.Input[0].Text != "blue lamp" {
			t.Errorf("unexpected input %+v", req.Input)
		}

		fmt.Fprint(w, `{"data": [{"object": "embedding", "index": 0, "embedding": [0.1, 0.2, 0.3]}]}`)
	}))
	defer srv.Close()

	p := NewJinaProvider(srv.URL, "jina-clip-v2", "test-key")
	got, err := p.Embed(context.Background(), embedding.Input{Text: "blue lamp"})
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if !reflect.DeepEqual(got.TextVec, []float32{0.1, 0.2, 0.3}) {
		t.Errorf("text vector = %v", got.TextVec)
	}
	if got.ImageVec != nil {
		t.Errorf("no image was submitted, got vector %v", got.ImageVec)
	}
}

func TestNewJinaProviderDefaults(t *testing.T) {
	p := NewJinaProvider("", "", "k")
	if p.baseURL != "https://api.jina.ai/v1/embeddings" {
		t.Errorf("baseURL = %q", p.baseURL)
	}
	if p.model != "jina-clip-v1" {
		t.Errorf("model = %q", p.model)
	}
}
