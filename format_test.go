package linebreak

import (
	"strings"
	"testing"
)

func TestFormatLine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "simple",
			line: "This is a simple sentence.",
			want: "This is a simple sentence.",
		},
		{
			name: "empty",
			line: "",
			want: "",
		},
		{
			name: "whitespace only",
			line: "   \t",
			want: "   \t",
		},
		{
			name: "decimals",
			line: "The value was 0.85 in the first test. The second test showed 0.92 as the result.",
			want: "The value was 0.85 in the first test.\nThe second test showed 0.92 as the result.",
		},
		{
			name: "citation",
			line: "Text with citations [@https://doi.org/10.1038/example]. More text here with sufficient length.",
			want: "Text with citations [@https://doi.org/10.1038/example].\nMore text here with sufficient length.",
		},
		{
			name: "colon",
			line: "However, fecal-based approaches show highly inconsistent performance for adenoma detection: a systematic review of microbiome-derived biomarkers found diagnostic values.",
			want: "However, fecal-based approaches show highly inconsistent performance for adenoma detection:\na systematic review of microbiome-derived biomarkers found diagnostic values.",
		},
		{
			name: "em dash",
			line: "The gut microbiome has been shown to be strongly altered in CRC — with fecal metagenomes predictive of established CRC values.",
			want: "The gut microbiome has been shown to be strongly altered in CRC\n— with fecal metagenomes predictive of established CRC values.",
		},
		{
			name: "enumeration",
			line: "They rely exclusively on 16S rRNA amplicon sequencing, which: (1) provides only genus- or species-level resolution, (2) systematically misses Patescibacteria—the most prevalent phylum in the oral cavity, and (3) cannot resolve subspecies-level variation known to be functionally critical.",
			want: strings.Join([]string{
				"They rely exclusively on 16S rRNA amplicon sequencing, which:",
				"(1) provides only genus- or species-level resolution,",
				"(2) systematically misses Patescibacteria—the most prevalent phylum in the oral cavity,",
				"and (3) cannot resolve subspecies-level variation known to be functionally critical.",
			}, "\n"),
		},
		{
			name: "indent and trailing",
			line: "  First sentence with enough characters for detection. Second sentence with enough characters too.  ",
			want: "  First sentence with enough characters for detection.\n  Second sentence with enough characters too.  ",
		},
		{
			name: "list marker not split off",
			line: "The list below has enough words to count. - not a list item but continues here.",
			want: "The list below has enough words to count. - not a list item but continues here.",
		},
		{
			name: "heading marker merged",
			line: "Some issues were numbered in the tracker as follows. #42 was the first one to be filed. The rest came much later on.",
			want: "Some issues were numbered in the tracker as follows. #42 was the first one to be filed.\nThe rest came much later on.",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatLine(tc.line); got != tc.want {
				t.Fatalf("FormatLine mismatch\n---want---\n%s\n---got---\n%s", tc.want, got)
			}
		})
	}
}

func TestFormatLineKeepsTokens(t *testing.T) {
	line := "The _gut_ microbiome has been shown to be strongly altered in CRC, with fecal metagenomes predictive of established CRC (AUC 0.85) [@https://doi.org/10.1038/s41591-025-03693-9]. However, fecal-based approaches show highly inconsistent performance for adenoma detection: a systematic review of microbiome-derived biomarkers (mostly 16S rDNA sequencing) found diagnostic AUCs ranging from 0.28-0.89 with high variability across studies [@https://doi.org/10.1016/j.neo.2022.100868]."
	got := FormatLine(line)
	for _, want := range []string{
		"[@https://doi.org/10.1038/s41591-025-03693-9]",
		"[@https://doi.org/10.1016/j.neo.2022.100868]",
		"0.85",
		"0.28-0.89",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in %q", want, got)
		}
	}
	if !strings.Contains(got, "\n") {
		t.Fatalf("expected line to be split: %q", got)
	}
	if strings.Contains(got, "__N_") || strings.Contains(got, "__CITATION_") {
		t.Fatalf("placeholder leaked: %q", got)
	}
	if joined := strings.Join(strings.Fields(got), " "); joined != line {
		t.Fatalf("words changed:\n%s\n%s", joined, line)
	}
}

func TestFormatLineNoBreakAfterAbbreviation(t *testing.T) {
	line := "This is a comparison study of treatment A vs. treatment B showing significant results with enough text."
	if got := FormatLine(line); strings.Contains(got, "vs.\n") {
		t.Fatalf("split after abbreviation: %q", got)
	}
}

func TestSegmentsUnsplit(t *testing.T) {
	text := "A single sentence."
	got := defaultBreaker.Segments(text)
	if len(got) != 1 || got[0] != text {
		t.Fatalf("unexpected segments: %q", got)
	}
}
