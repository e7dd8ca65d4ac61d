package specfilter

import (
	"context"
	"errors"
	"log"
	"os"
	"reflect"
	"strings"
	"testing"

	"bytemart-search-be/pkg/llm"
)

// scriptedProvider answers by matching a substring of the prompt, so one
// stub can serve both the predicate parse and the extraction calls.
type scriptedProvider struct {
	answers map[string]string
	err     error
}

func (s *scriptedProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return "", s.err
}

func (s *scriptedProvider) Generate(_ context.Context, prompt string, _ ...llm.Option) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	for key, resp := range s.answers {
		if strings.Contains(prompt, key) {
			return resp, nil
		}
	}
	return "", errors.New("unscripted prompt")
}

func testLogger() *log.Logger {
	return log.New(os.Stderr, "", 0)
}

func newEngine(p llm.LLMProvider) *Engine {
	return NewEngine(
		NewPredicateParser(p, testLogger()),
		NewAttributeExtractor(p, DefaultBatchSize, testLogger()),
		testLogger(),
	)
}

func TestRerankGreaterThan(t *testing.T) {
	// "greater than 100 watts" against extracted values [50, 150, null]
	// scores [1, 0, 1]; the satisfying item ranks first and the tie keeps
	// prior order.
	p := &scriptedProvider{answers: map[string]string{
		"greater than 100 watts": `{"feature": "power_watts", "operator": ">", "value": 100}`,
		"Descriptions":           `[{"value": 50}, {"value": 150}, {"value": null}]`,
	}}

	out := newEngine(p).Rerank(context.Background(),
		[]string{"greater than 100 watts"},
		[]int{10, 11, 12},
		[]string{"heater 50 watts", "heater 150 watts", "kettle"},
	)
	if !reflect.DeepEqual(out, []int{11, 10, 12}) {
		t.Errorf("order = %v, want [11 10 12]", out)
	}
}

func TestRerankEqualUsesRelativeDistance(t *testing.T) {
	p := &scriptedProvider{answers: map[string]string{
		"equal to 100 watts": `{"feature": "power_watts", "operator": "=", "value": 100}`,
		"Descriptions":       `[{"value": 300}, {"value": 90}, {"value": null}]`,
	}}

	// |300/100-1| = 2.0, |90/100-1| = 0.1, missing = 1.0, so the near-match
	// leads and the far overshoot drops behind the missing value.
	out := newEngine(p).Rerank(context.Background(),
		[]string{"equal to 100 watts"},
		[]int{0, 1, 2},
		[]string{"a", "b", "c"},
	)
	if !reflect.DeepEqual(out, []int{1, 2, 0}) {
		t.Errorf("order = %v, want [1 2 0]", out)
	}
}

func TestRerankBetweenStrictlyInside(t *testing.T) {
	p := &scriptedProvider{answers: map[string]string{
		"between": `{"feature": "capacity_liters", "operator": "between", "value": [5, 20]}`,
		// Boundary value 20 is not strictly inside and scores 1.
		"Descriptions": `[{"value": 20}, {"value": 10}]`,
	}}

	out := newEngine(p).Rerank(context.Background(),
		[]string{"between 5 and 20 liters"},
		[]int{0, 1},
		[]string{"a", "b"},
	)
	if !reflect.DeepEqual(out, []int{1, 0}) {
		t.Errorf("order = %v, want [1 0]", out)
	}
}

func TestRerankSumsClauses(t *testing.T) {
	p := &scriptedProvider{answers: map[string]string{
		"greater than 10 watts": `{"feature": "power_watts", "operator": ">", "value": 10}`,
		"less than 50":          `{"feature": "battery_mah", "operator": "<", "value": 50}`,
		"'power_watts'":         `[{"value": 20}, {"value": 5}]`,
		"'battery_mah'":         `[{"value": 100}, {"value": 30}]`,
	}}

	// Item 0: watts pass (0) + mah fail (1) = 1. Item 1: 1 + 0 = 1. Tie, so
	// prior order holds.
	out := newEngine(p).Rerank(context.Background(),
		[]string{"greater than 10 watts", "less than 50 mAh"},
		[]int{4, 5},
		[]string{"a", "b"},
	)
	if !reflect.DeepEqual(out, []int{4, 5}) {
		t.Errorf("order = %v, want [4 5]", out)
	}
}

func TestRerankIsStableReordering(t *testing.T) {
	p := &scriptedProvider{answers: map[string]string{
		"greater": `{"feature": "power_watts", "operator": ">", "value": 1}`,
		"Descrip": `[{"value": 2}, {"value": 2}, {"value": 2}]`,
	}}

	in := []int{9, 2, 7}
	out := newEngine(p).Rerank(context.Background(), []string{"greater than 1 watts"}, in, []string{"a", "b", "c"})
	if !reflect.DeepEqual(out, in) {
		t.Errorf("equal scores must keep input order %v, got %v", in, out)
	}
}

func TestRerankSkipsUnparseableClause(t *testing.T) {
	p := &scriptedProvider{err: errors.New("model down")}

	in := []int{1, 2, 3}
	out := newEngine(p).Rerank(context.Background(), []string{"greater than 10 watts"}, in, []string{"a", "b", "c"})
	if !reflect.DeepEqual(out, in) {
		t.Errorf("no usable clause should leave order unchanged, got %v", out)
	}
}

func TestExtractRegexFallback(t *testing.T) {
	// Extraction answers garbage, so the regex path pulls the wattage.
	p := &scriptedProvider{answers: map[string]string{
		"Descriptions": "sorry, cannot parse this",
	}}
	e := NewAttributeExtractor(p, DefaultBatchSize, testLogger())

	values := e.Extract(context.Background(), "power_watts", []string{
		"LED floodlight rated 35.5 watts",
		"solar lantern, no power draw listed",
	})
	if values[0] == nil || *values[0] != 35.5 {
		t.Errorf("regex fallback should find 35.5, got %v", values[0])
	}
	if values[1] != nil {
		t.Errorf("absent feature should be nil, got %v", *values[1])
	}
}

func TestExtractBatching(t *testing.T) {
	calls := 0
	p := &countingProvider{resp: `[{"value": 1}, {"value": 2}]`, calls: &calls}
	e := NewAttributeExtractor(p, 2, testLogger())

	values := e.Extract(context.Background(), "power_watts", []string{"a", "b", "c", "d"})
	if calls != 2 {
		t.Errorf("4 descriptions at batch size 2 should take 2 calls, got %d", calls)
	}
	if len(values) != 4 {
		t.Errorf("expected 4 values, got %d", len(values))
	}
}

type countingProvider struct {
	resp  string
	calls *int
}

func (c *countingProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return c.resp, nil
}

func (c *countingProvider) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	*c.calls++
	return c.resp, nil
}
