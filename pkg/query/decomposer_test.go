package query

import (
	"context"
	"errors"
	"log"
	"os"
	"reflect"
	"testing"

	"bytemart-search-be/pkg/llm"
)

type stubProvider struct {
	resp string
	err  error
}

func (s *stubProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return s.resp, s.err
}

func (s *stubProvider) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	return s.resp, s.err
}

func testLogger() *log.Logger {
	return log.New(os.Stderr, "", 0)
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		resp string
		want Decomposition
	}{
		{
			name: "both parts",
			resp: `{"general": "Blue denim jeans", "special": "under 50 dollars with at least 500 reviews"}`,
			want: Decomposition{General: "Blue denim jeans", Special: "under 50 dollars with at least 500 reviews"},
		},
		{
			name: "code fenced",
			resp: "```json\n{\"general\": \"red sofa\", \"special\": \"\"}\n```",
			want: Decomposition{General: "red sofa"},
		},
		{
			name: "garbage degrades to empty",
			resp: "I could not split that query.",
			want: Decomposition{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecomposer(&stubProvider{resp: tt.resp}, testLogger())
			got, err := d.Split(context.Background(), "whatever")
			if err != nil {
				t.Fatalf("Split: %v", err)
			}
			if got != tt.want {
				t.Errorf("Split = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSplitTransportError(t *testing.T) {
	d := NewDecomposer(&stubProvider{err: errors.New("model down")}, testLogger())
	if _, err := d.Split(context.Background(), "query"); err == nil {
		t.Fatal("transport failure must surface as an error")
	}
}

func TestSplitNumericClauses(t *testing.T) {
	tests := []struct {
		name    string
		special string
		resp    string
		err     error
		want    []string
	}{
		{
			name:    "two clauses",
			special: "greater than 10 watts and less than 50 mAh",
			resp:    `["greater than 10 watts", "less than 50 mAh"]`,
			want:    []string{"greater than 10 watts", "less than 50 mAh"},
		},
		{
			name:    "empty strings filtered",
			special: "over 100 watts",
			resp:    `["over 100 watts", ""]`,
			want:    []string{"over 100 watts"},
		},
		{
			name:    "empty input skips the call",
			special: "",
			err:     errors.New("must not be called"),
			want:    nil,
		},
		{
			name:    "transport failure degrades to none",
			special: "over 100 watts",
			err:     errors.New("model down"),
			want:    nil,
		},
		{
			name:    "garbage degrades to none",
			special: "over 100 watts",
			resp:    "no clauses found",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecomposer(&stubProvider{resp: tt.resp, err: tt.err}, testLogger())
			got := d.SplitNumericClauses(context.Background(), tt.special)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitNumericClauses = %v, want %v", got, tt.want)
			}
		})
	}
}
