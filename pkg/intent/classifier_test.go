package intent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"bytemart-search-be/pkg/llm"
	"bytemart-search-be/pkg/llm/gemini"
)

type stubVision struct {
	resp string
	err  error
	// last prompt seen, and whether the image path was taken
	prompt    string
	usedImage bool
}

func (s *stubVision) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return s.resp, s.err
}

func (s *stubVision) Generate(_ context.Context, prompt string, _ ...llm.Option) (string, error) {
	s.prompt = prompt
	return s.resp, s.err
}

func (s *stubVision) GenerateWithImage(_ context.Context, prompt, _ string, _ ...llm.Option) (string, error) {
	s.prompt = prompt
	s.usedImage = true
	return s.resp, s.err
}

func testLogger() *log.Logger {
	return log.New(os.Stderr, "", 0)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		resp string
		want Classification
	}{
		{
			name: "single product",
			resp: `{"intent": "similar_product", "recommendations_query": ""}`,
			want: Classification{Intent: SimilarProduct},
		},
		{
			name: "room scene with recommendations",
			resp: `{"intent": "space_improvement_or_replacement", "recommendations_query": "modern floor lamp, LED ceiling light, minimalist bookshelf"}`,
			want: Classification{
				Intent:               SpaceImprovement,
				RecommendationsQuery: "modern floor lamp, LED ceiling light, minimalist bookshelf",
			},
		},
		{
			name: "query dropped for similar product",
			resp: `{"intent": "similar_product", "recommendations_query": "should be ignored"}`,
			want: Classification{Intent: SimilarProduct},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(&stubVision{resp: tt.resp}, testLogger())
			got, err := c.Classify(context.Background(), "img-1", "")
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClassifyErrors(t *testing.T) {
	tests := []struct {
		name string
		resp string
		err  error
	}{
		{name: "transport failure", err: errors.New("model down")},
		{name: "no JSON", resp: "a lamp, probably"},
		{name: "unknown label", resp: `{"intent": "buy_it_now"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(&stubVision{resp: tt.resp, err: tt.err}, testLogger())
			if _, err := c.Classify(context.Background(), "img-1", ""); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestClassifyTextOnlySkipsImagePath(t *testing.T) {
	s := &stubVision{resp: `{"intent": "similar_product"}`}
	c := NewClassifier(s, testLogger())

	got, err := c.Classify(context.Background(), "", "modern black table lamp")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got.Intent != SimilarProduct {
		t.Errorf("Intent = %d, want %d", got.Intent, SimilarProduct)
	}
	if s.usedImage {
		t.Error("a text-only query must not take the image path")
	}
	if !strings.Contains(s.prompt, "modern black table lamp") {
		t.Errorf("prompt should carry the query text, got %q", s.prompt)
	}
}

// A text-only opening against the real Gemini provider must reach the
// backend instead of failing on a missing image file.
func TestClassifyTextOnlyWithGeminiProvider(t *testing.T) {
	hit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		fmt.Fprint(w, `{"candidates": [{"content": {"parts": [{"text": "{\"intent\": \"similar_product\"}"}]}}]}`)
	}))
	defer srv.Close()

	provider := gemini.NewGeminiProvider("test-key", "gemini-2.0-flash")
	provider.BaseURL = srv.URL

	c := NewClassifier(provider, testLogger())
	got, err := c.Classify(context.Background(), "", "modern black table lamp")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !hit {
		t.Fatal("the backend was never reached")
	}
	if got.Intent != SimilarProduct {
		t.Errorf("Intent = %d, want %d", got.Intent, SimilarProduct)
	}
}

func TestClassifyIncludesText(t *testing.T) {
	s := &stubVision{resp: `{"intent": "similar_product"}`}
	c := NewClassifier(s, testLogger())
	if _, err := c.Classify(context.Background(), "img-1", "but in walnut"); err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !strings.Contains(s.prompt, "but in walnut") {
		t.Errorf("prompt should carry the accompanying text, got %q", s.prompt)
	}
}
