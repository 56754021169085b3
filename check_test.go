package linebreak

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestCheckEquivalentFixture(t *testing.T) {
	src, err := os.ReadFile("testdata/paper.qmd")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	out := BreakText(string(src))
	if out == string(src) {
		t.Fatalf("expected fixture to be reflowed")
	}
	if err := CheckEquivalent(src, []byte(out)); err != nil {
		t.Fatalf("reflowed fixture not equivalent: %v", err)
	}
}

func TestCheckEquivalentDetectsChange(t *testing.T) {
	before := []byte("The value was 0.85 in the first test.\n")
	after := []byte("The value was 0.58 in the first test.\n")
	err := CheckEquivalent(before, after)
	if !errors.Is(err, ErrNotEquivalent) {
		t.Fatalf("expected ErrNotEquivalent, got %v", err)
	}
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *MismatchError, got %T", err)
	}
	if mismatch.Offset != len("The value was 0.") {
		t.Fatalf("unexpected offset %d", mismatch.Offset)
	}
}

func TestCheckEquivalentDetectsNewBlock(t *testing.T) {
	before := []byte("Counted to three. - then stopped counting there.\n")
	after := []byte("Counted to three.\n- then stopped counting there.\n")
	if err := CheckEquivalent(before, after); err == nil {
		t.Fatalf("expected list item to change rendered text")
	}
}

func TestRenderedTextCollapsesWhitespace(t *testing.T) {
	got, err := RenderedText([]byte("# Title\n\nFirst line\nsecond   line.\n"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Title First line second line." {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestFormatLineUnspacedEmDashKeepsRenderedText(t *testing.T) {
	t.Parallel()
	tests := []string{
		"The gut microbiome has been shown to be strongly altered in colorectal cancer—with fecal metagenomes predictive of established disease.",
		"Patescibacteria—the most prevalent phylum in the oral cavity—are missed by amplicon surveys. They are found reliably by shotgun metagenomics.",
		"It systematically misses Patescibacteria—the most prevalent phylum in the oral cavity, and (3) cannot resolve subspecies-level variation known to be functionally critical.",
	}
	for _, line := range tests {
		got := FormatLine(line)
		if joined := strings.Join(strings.Fields(got), " "); joined != line {
			t.Fatalf("word sequence changed:\n%s\n%s", line, joined)
		}
		if err := CheckEquivalent([]byte(line), []byte(got)); err != nil {
			t.Fatalf("reflowed line not equivalent: %v\n%s", err, got)
		}
	}
	if got := FormatLine(tests[1]); !strings.Contains(got, "\n") {
		t.Fatalf("expected sentence split: %q", got)
	}
}
