package models

import (
	"strings"
	"testing"
)

func TestPreviewText(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       string
	}{
		{"empty", "", ""},
		{"short", "hello there", "hello there"},
		{"exactly 100", strings.Repeat("a", 100), strings.Repeat("a", 100)},
		{"150 characters", strings.Repeat("b", 150), strings.Repeat("b", 100) + "..."},
		{"multibyte counted as characters", strings.Repeat("é", 101), strings.Repeat("é", 100) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PreviewText(tt.transcript); got != tt.want {
				t.Errorf("PreviewText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummaryNormalize(t *testing.T) {
	s := Summary{KeyPoints: []string{"A point"}}.Normalize()

	if s.Decisions == nil || s.ActionItems == nil {
		t.Fatalf("Normalize() left nil sections: %+v", s)
	}
	if len(s.KeyPoints) != 1 {
		t.Errorf("KeyPoints = %v, want 1 entry", s.KeyPoints)
	}
}
