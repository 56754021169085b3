package linebreak

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/ansi"
)

// Report summarises one document pass. Widths are display cells.
type Report struct {
	// Lines is the number of input lines.
	Lines int
	// Reflowed is the number of input lines that were split.
	Reflowed int
	// Emitted is the number of output lines.
	Emitted       int
	LongestBefore int
	LongestAfter  int
	// FirstReflowed is the 1-based line number of the first split line, or 0.
	FirstReflowed int
	// Sample is the first split line as it appeared in the input.
	Sample   string
	Warnings []string
}

// Changed reports whether any line was split.
func (r Report) Changed() bool {
	return r.Reflowed > 0
}

func (r *Report) observe(lineNo int, in, out, newline string) {
	r.Lines++
	r.LongestBefore = max(r.LongestBefore, ansi.PrintableRuneWidth(in))
	if out == in {
		r.Emitted++
		r.LongestAfter = max(r.LongestAfter, ansi.PrintableRuneWidth(in))
		return
	}
	r.Reflowed++
	if r.FirstReflowed == 0 {
		r.FirstReflowed = lineNo
		r.Sample = in
	}
	for _, l := range strings.Split(out, newline) {
		r.Emitted++
		r.LongestAfter = max(r.LongestAfter, ansi.PrintableRuneWidth(l))
	}
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Preview shortens text to at most limit display cells, ending in an
// ellipsis when it was cut.
func Preview(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	var sb strings.Builder
	width := 0
	for _, r := range text {
		w := ansi.PrintableRuneWidth(string(r))
		if width+w > limit-1 {
			break
		}
		sb.WriteRune(r)
		width += w
	}
	sb.WriteString("…")
	return sb.String()
}
