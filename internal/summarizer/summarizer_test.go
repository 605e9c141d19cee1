package summarizer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/verba/internal/models"
)

func TestSummarizeMeeting(t *testing.T) {
	s := New(DefaultOptions())

	got := s.Summarize("We need to finish the project. John will handle the documentation. The deadline is next Friday.")

	want := models.Summary{
		KeyPoints: []string{
			"We need to finish the project",
			"John will handle the documentation",
			"The deadline is next Friday",
		},
		Decisions: []string{"John will handle the documentation"},
		ActionItems: []string{
			"We need to finish the project",
			"John will handle the documentation",
			"The deadline is next Friday",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Summarize() = %#v, want %#v", got, want)
	}
}

func TestSummarizeDetachedPunctuation(t *testing.T) {
	got := Summarize("We decided on the plan , . um")

	want := []string{"We decided on the plan"}
	if !reflect.DeepEqual(got.KeyPoints, want) {
		t.Errorf("KeyPoints = %#v, want %#v", got.KeyPoints, want)
	}
	if !reflect.DeepEqual(got.Decisions, want) {
		t.Errorf("Decisions = %#v, want %#v", got.Decisions, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.input)
			if !reflect.DeepEqual(got, EmptySummary()) {
				t.Errorf("Summarize(%q) = %#v", tt.input, got)
			}
			if len(got.Decisions) != 0 || got.Decisions == nil {
				t.Errorf("decisions = %#v, want empty non-nil", got.Decisions)
			}
		})
	}
}

func TestSummarizeOnlyFragments(t *testing.T) {
	got := Summarize("Um. Uh, yes. Okay then.")

	if !reflect.DeepEqual(got.KeyPoints, []string{NoKeyPointsBullet}) {
		t.Errorf("KeyPoints = %#v", got.KeyPoints)
	}
	if len(got.Decisions) != 0 || len(got.ActionItems) != 0 {
		t.Errorf("expected empty decisions and action items, got %#v", got)
	}
}

func TestSummarizeDeterministic(t *testing.T) {
	text := strings.Repeat("The committee agreed that we should move forward with the proposal. ", 2) +
		"Sarah has to send the follow up email. Marketing will prepare the launch plan by the deadline."

	first := Summarize(text)
	for i := 0; i < 5; i++ {
		if got := Summarize(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %#v vs %#v", i, got, first)
		}
	}
}

func TestAssemble(t *testing.T) {
	got := Assemble(nil, nil, []string{"Do it now"})

	if !reflect.DeepEqual(got.KeyPoints, []string{NoKeyPointsBullet}) {
		t.Errorf("KeyPoints = %#v", got.KeyPoints)
	}
	if got.Decisions == nil || len(got.Decisions) != 0 {
		t.Errorf("Decisions = %#v, want empty", got.Decisions)
	}
	if !reflect.DeepEqual(got.ActionItems, []string{"Do it now"}) {
		t.Errorf("ActionItems = %#v", got.ActionItems)
	}
}

func TestNewFillsDefaults(t *testing.T) {
	s := New(Options{MaxKeyPoints: 1}).(*implSummarizer)

	if s.opts.MaxKeyPoints != 1 {
		t.Errorf("MaxKeyPoints = %d, want 1", s.opts.MaxKeyPoints)
	}
	if s.opts.LeadSentences != 2 || s.opts.ItemWords != 18 || s.opts.MinSentenceLength != 10 {
		t.Errorf("defaults not applied: %+v", s.opts)
	}
}
