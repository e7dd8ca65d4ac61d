package intent

import (
	"context"
	"errors"
	"testing"
)

func TestFromImage(t *testing.T) {
	s := &stubVision{resp: `{"backbone": "table lamp", "detailed_description": "matte black metal table lamp with fabric shade"}`}
	d := NewDescriber(s, testLogger())

	got, err := d.FromImage(context.Background(), "img-1")
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	want := Description{Backbone: "table lamp", Detailed: "matte black metal table lamp with fabric shade"}
	if got != want {
		t.Errorf("FromImage = %+v, want %+v", got, want)
	}
}

func TestFromImageErrors(t *testing.T) {
	tests := []struct {
		name string
		resp string
		err  error
	}{
		{name: "transport failure", err: errors.New("model down")},
		{name: "no JSON", resp: "it is a lamp"},
		{name: "empty description", resp: `{"backbone": "", "detailed_description": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDescriber(&stubVision{resp: tt.resp, err: tt.err}, testLogger())
			if _, err := d.FromImage(context.Background(), "img-1"); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestFromText(t *testing.T) {
	tests := []struct {
		name string
		resp string
		want Description
	}{
		{
			name: "both fields",
			resp: `{"backbone": "hiking boots", "detailed_description": "waterproof leather hiking boots"}`,
			want: Description{Backbone: "hiking boots", Detailed: "waterproof leather hiking boots"},
		},
		{
			name: "missing detail backfilled from backbone",
			resp: `{"backbone": "hiking boots", "detailed_description": ""}`,
			want: Description{Backbone: "hiking boots", Detailed: "hiking boots"},
		},
		{
			name: "missing backbone backfilled from detail",
			resp: `{"backbone": "", "detailed_description": "waterproof boots"}`,
			want: Description{Backbone: "waterproof boots", Detailed: "waterproof boots"},
		},
		{
			name: "garbage falls back to the query verbatim",
			resp: "cannot help with that",
			want: Description{Backbone: "waterproof hiking boots", Detailed: "waterproof hiking boots"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDescriber(&stubVision{resp: tt.resp}, testLogger())
			got, err := d.FromText(context.Background(), "waterproof hiking boots")
			if err != nil {
				t.Fatalf("FromText: %v", err)
			}
			if got != tt.want {
				t.Errorf("FromText = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFromTextTransportError(t *testing.T) {
	d := NewDescriber(&stubVision{err: errors.New("model down")}, testLogger())
	if _, err := d.FromText(context.Background(), "boots"); err == nil {
		t.Fatal("transport failure must surface as an error")
	}
}
