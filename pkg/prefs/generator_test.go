package prefs

import (
	"context"
	"log"
	"os"
	"testing"

	"bytemart-search-be/pkg/llm"
)

type stubProvider struct {
	resp   string
	err    error
	called bool
}

func (s *stubProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	s.called = true
	return s.resp, s.err
}

func (s *stubProvider) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	s.called = true
	return s.resp, s.err
}

func TestQueryWithoutHistoryIsPassThrough(t *testing.T) {
	logger := log.New(os.Stderr, "", 0)
	p := &stubProvider{resp: "should never be used"}

	// A nil Redis client means no history, so the base product comes back
	// without an LLM round trip.
	g := NewGenerator(p, NewHistory(nil, logger), logger)
	if got := g.Query(context.Background(), "u1", "table lamp"); got != "table lamp" {
		t.Errorf("Query = %q, want the base product", got)
	}
	if p.called {
		t.Error("no history must not reach the model")
	}
}

func TestHistoryNoopWithoutClient(t *testing.T) {
	logger := log.New(os.Stderr, "", 0)
	h := NewHistory(nil, logger)

	// Must not panic and must read as empty.
	h.Append(context.Background(), "u1", "searched lamps")
	h.RecordTurn(context.Background(), "u1", "lamps", 3)
	if got := h.Recent(context.Background(), "u1", 10); got != "" {
		t.Errorf("Recent = %q, want empty", got)
	}
}
