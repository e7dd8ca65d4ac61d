package tags

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

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		resp string
		err  error
		text string
		want []string
	}{
		{
			name: "comma list",
			resp: "black, metal, table lamp, dimmable",
			text: "anything",
			want: []string{"black", "metal", "table lamp", "dimmable"},
		},
		{
			name: "code fence and blanks stripped",
			resp: "```\nleather, , brown,\n```",
			text: "anything",
			want: []string{"leather", "brown"},
		},
		{
			name: "transport failure sweeps keywords",
			err:  errors.New("model down"),
			text: "Samsung stainless steel refrigerator",
			want: []string{"samsung", "stainless steel", "refrigerator"},
		},
		{
			name: "empty answer sweeps keywords",
			resp: "  ",
			text: "wireless waterproof camera",
			want: []string{"wireless", "waterproof", "camera"},
		},
		{
			name: "nothing recognized",
			err:  errors.New("model down"),
			text: "qzx widget",
			want: nil,
		},
	}

	logger := log.New(os.Stderr, "", 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExtractor(&stubProvider{resp: tt.resp, err: tt.err}, logger)
			got := e.Extract(context.Background(), tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeywordTagsIgnoresSpacing(t *testing.T) {
	got := keywordTags("StainlessSteel kettle in silver")
	if !reflect.DeepEqual(got, []string{"silver", "stainless steel"}) {
		t.Errorf("keywordTags = %v, want [silver stainless steel]", got)
	}
}
