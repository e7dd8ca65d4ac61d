package rerank

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key", "rerank-2", 5*time.Second, log.New(os.Stderr, "", 0))
}

func TestRerankReturnsBatchPositions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/rerank" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}

		var req rerankRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Documents) != 3 || req.TopK != 2 {
			t.Errorf("unexpected request %+v", req)
		}

		json.NewEncoder(w).Encode(rerankResponse{Data: []rerankResult{
			{Index: 2, RelevanceScore: 0.9},
			{Index: 0, RelevanceScore: 0.4},
		}})
	})

	got, err := client.Rerank(context.Background(), "blue lamp", []string{"a", "b", "c"}, 2)
	if err != nil {
		t.Fatalf("Rerank: %v", err)
	}
	if !reflect.DeepEqual(got, []int{2, 0}) {
		t.Errorf("positions = %v, want [2 0]", got)
	}
}

func TestRerankDiscardsOutOfBoundsIndices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(rerankResponse{Data: []rerankResult{
			{Index: 1, RelevanceScore: 0.8},
			{Index: 7, RelevanceScore: 0.7},
			{Index: -1, RelevanceScore: 0.6},
		}})
	})

	got, err := client.Rerank(context.Background(), "q", []string{"a", "b"}, 2)
	if err != nil {
		t.Fatalf("Rerank: %v", err)
	}
	if !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("positions = %v, want [1]", got)
	}
}

func TestRerankDiscardsRepeatedIndices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(rerankResponse{Data: []rerankResult{
			{Index: 2, RelevanceScore: 0.9},
			{Index: 0, RelevanceScore: 0.5},
			{Index: 2, RelevanceScore: 0.3},
		}})
	})

	got, err := client.Rerank(context.Background(), "q", []string{"a", "b", "c"}, 3)
	if err != nil {
		t.Fatalf("Rerank: %v", err)
	}
	if !reflect.DeepEqual(got, []int{2, 0}) {
		t.Errorf("positions = %v, want [2 0] with the repeat dropped", got)
	}
}

func TestRerankEmptyBatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no HTTP call expected for an empty batch")
	})

	got, err := client.Rerank(context.Background(), "q", nil, 5)
	if err != nil {
		t.Fatalf("Rerank: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestRerankServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	})

	if _, err := client.Rerank(context.Background(), "q", []string{"a"}, 1); err == nil {
		t.Error("expected error on 503 response")
	}
}

func TestRerankEmptyResultIsNotError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(rerankResponse{Data: []rerankResult{}})
	})

	got, err := client.Rerank(context.Background(), "q", []string{"a", "b"}, 2)
	if err != nil {
		t.Fatalf("an empty answer is a valid no-results response, got error %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no positions, got %v", got)
	}
}
