package query

import (
	"context"
	"errors"
	"testing"
)

func TestCheckConflict(t *testing.T) {
	tests := []struct {
		name         string
		current, mod string
		resp         string
		err          error
		want         bool
	}{
		{
			name:    "color change conflicts",
			current: "modern black table lamp",
			mod:     "actually make it white",
			resp:    "True",
			want:    true,
		},
		{
			name:    "added feature does not",
			current: "modern black table lamp",
			mod:     "with a dimmer switch",
			resp:    "False",
			want:    false,
		},
		{
			name:    "case insensitive",
			current: "desk",
			mod:     "no desk",
			resp:    "TRUE.",
			want:    true,
		},
		{
			name:    "transport failure reads as no conflict",
			current: "desk",
			mod:     "no desk",
			err:     errors.New("model down"),
			want:    false,
		},
		{
			name: "empty description short-circuits",
			mod:  "anything",
			resp: "True",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMerger(&stubProvider{resp: tt.resp, err: tt.err}, testLogger())
			if got := m.CheckConflict(context.Background(), tt.current, tt.mod); got != tt.want {
				t.Errorf("CheckConflict = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name         string
		current, mod string
		resp         string
		err          error
		want         string
	}{
		{
			name:    "negated feature folded in",
			current: "Laptop with touchscreen and backlit keyboard",
			mod:     "No touchscreen",
			resp:    "```\nLaptop with no touchscreen and backlit keyboard\n```",
			want:    "Laptop with no touchscreen and backlit keyboard",
		},
		{
			name:    "unfenced answer used as-is",
			current: "wooden desk",
			mod:     "add drawers",
			resp:    "  wooden desk with drawers  ",
			want:    "wooden desk with drawers",
		},
		{
			name:    "transport failure appends",
			current: "wooden desk",
			mod:     "add drawers",
			err:     errors.New("model down"),
			want:    "wooden desk add drawers",
		},
		{
			name:    "empty fenced answer appends",
			current: "wooden desk",
			mod:     "add drawers",
			resp:    "``````",
			want:    "wooden desk add drawers",
		},
		{
			name: "empty current takes modification",
			mod:  "red couch",
			want: "red couch",
		},
		{
			name:    "empty modification keeps current",
			current: "red couch",
			want:    "red couch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMerger(&stubProvider{resp: tt.resp, err: tt.err}, testLogger())
			if got := m.Merge(context.Background(), tt.current, tt.mod); got != tt.want {
				t.Errorf("Merge = %q, want %q", got, tt.want)
			}
		})
	}
}
