package utils

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "lowercases and splits",
			in:   "Blue Denim Jeans",
			want: []string{"blue", "denim", "jeans"},
		},
		{
			name: "strips punctuation",
			in:   "lamp, sofa, AC.",
			want: []string{"lamp", "sofa", "ac"},
		},
		{
			name: "empty input",
			in:   "   ",
			want: []string{},
		},
		{
			name: "keeps numbers and units",
			in:   "3000 mAh battery",
			want: []string{"3000", "mah", "battery"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
