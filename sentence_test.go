package linebreak

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitSentences(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "short",
			text: "Short text.",
			want: []string{"Short text."},
		},
		{
			name: "period",
			text: "This is a sentence with enough characters before the period. And another sentence with sufficient length.",
			want: []string{
				"This is a sentence with enough characters before the period.",
				"And another sentence with sufficient length.",
			},
		},
		{
			name: "question",
			text: "This is a question with enough characters before it? And this is the answer with enough text.",
			want: []string{
				"This is a question with enough characters before it?",
				"And this is the answer with enough text.",
			},
		},
		{
			name: "exclamation",
			text: "What a remarkable result this turned out to be! Nobody on the team had expected it.",
			want: []string{
				"What a remarkable result this turned out to be!",
				"Nobody on the team had expected it.",
			},
		},
		{
			name: "vs",
			text: "This is a comparison of method A vs. method B with more text.",
			want: []string{"This is a comparison of method A vs. method B with more text."},
		},
		{
			name: "dr",
			text: "Dr. Smith conducted the research with sufficient characters here.",
			want: []string{"Dr. Smith conducted the research with sufficient characters here."},
		},
		{
			name: "et al",
			text: "This research was conducted by Smith et al. and continued with more experiments.",
			want: []string{"This research was conducted by Smith et al. and continued with more experiments."},
		},
		{
			name: "prof",
			text: "The study was led by Prof. Johnson who has extensive experience in this field.",
			want: []string{"The study was led by Prof. Johnson who has extensive experience in this field."},
		},
		{
			name: "initial",
			text: "The original paper by J. Smith describes the approach in considerable detail.",
			want: []string{"The original paper by J. Smith describes the approach in considerable detail."},
		},
		{
			name: "parenthesised abbreviation",
			text: "Several cohorts were compared in this analysis (cf. the supplementary tables for details).",
			want: []string{"Several cohorts were compared in this analysis (cf. the supplementary tables for details)."},
		},
		{
			name: "short head",
			text: "Yes. This sentence is long enough to stand on its own.",
			want: []string{"Yes. This sentence is long enough to stand on its own."},
		},
		{
			name: "short tail",
			text: "This opening sentence is long enough to stand alone. Tail.",
			want: []string{"This opening sentence is long enough to stand alone. Tail."},
		},
		{
			name: "three",
			text: "First sentence with enough characters for proper detection. Second sentence also has enough characters. Third sentence completes it.",
			want: []string{
				"First sentence with enough characters for proper detection.",
				"Second sentence also has enough characters.",
				"Third sentence completes it.",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := SplitSentences(tc.text)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("SplitSentences(%q) mismatch (-want +got):\n%s", tc.text, diff)
			}
		})
	}
}

func TestSplitSentencesCustomAbbreviations(t *testing.T) {
	text := "This is a comparison of method A vs. method B with more text."
	b := New(WithAbbreviations(nil))
	got := b.SplitSentences(text)
	want := []string{"This is a comparison of method A vs.", "method B with more text."}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	b = New(WithAbbreviations([]string{"approx"}))
	text = "The measured volume came to approx. three litres in every trial we ran."
	if got := b.SplitSentences(text); len(got) != 1 {
		t.Fatalf("expected no split after custom abbreviation, got %q", got)
	}
}

func TestSplitSentencesMinLength(t *testing.T) {
	text := "Short one here. Another short one."
	if got := SplitSentences(text); len(got) != 1 {
		t.Fatalf("expected no split at default length, got %q", got)
	}
	got := New(WithMinSentenceLength(5)).SplitSentences(text)
	want := []string{"Short one here.", "Another short one."}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLastWords(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		n    int
		want []string
	}{
		{"Smith et al", 2, []string{"et", "al"}},
		{"al", 2, []string{"al"}},
		{"method A vs", 1, []string{"vs"}},
		{"ends in space ", 2, nil},
		{"", 2, nil},
	}
	for _, tc := range tests {
		got := lastWords(tc.in, tc.n)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("lastWords(%q, %d) mismatch (-want +got):\n%s", tc.in, tc.n, diff)
		}
	}
}
