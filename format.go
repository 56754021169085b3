package linebreak

import (
	"regexp"
	"strings"
)

// blockStart matches text that would open a new Markdown block if it began
// a continuation line.
var blockStart = regexp.MustCompile("^(?:[-*+](?:\\s|$)|\\d{1,9}[.)](?:\\s|$)|#|>|<|```|~~~|[=-]+$)")

// FormatLine reflows a single line using the default options.
func FormatLine(line string) string {
	return defaultBreaker.FormatLine(line)
}

// FormatLine reflows line into one sentence or clause per line, joined with
// "\n". A line that does not split is returned unchanged. Leading
// indentation is repeated on every output line and trailing whitespace is
// kept on the last one.
func (b *Breaker) FormatLine(line string) string {
	return b.formatLine(line, "\n")
}

func (b *Breaker) formatLine(line, newline string) string {
	if strings.TrimSpace(line) == "" {
		return line
	}
	body := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(body)]
	trimmed := strings.TrimRight(body, " \t")
	trailing := body[len(trimmed):]

	pieces := b.Segments(trimmed)
	if len(pieces) < 2 {
		return line
	}
	var sb strings.Builder
	sb.Grow(len(line) + len(pieces)*(len(newline)+len(indent)))
	for i, p := range pieces {
		if i > 0 {
			sb.WriteString(newline)
		}
		sb.WriteString(indent)
		sb.WriteString(p)
	}
	sb.WriteString(trailing)
	return sb.String()
}

// Segments returns the pieces text breaks into, in order, with citations
// and numbers restored. Text that does not split yields a single element.
func (b *Breaker) Segments(text string) []string {
	m := Mask(text)
	var pieces []string
	for _, sentence := range b.SplitSentences(m.Text) {
		for _, clause := range splitAll(sentence, b.SplitOnColons) {
			for _, part := range splitAll(clause, b.SplitOnEmDashes) {
				pieces = append(pieces, splitAll(part, b.SplitLong)...)
			}
		}
	}
	if len(pieces) < 2 {
		return []string{text}
	}
	for i, p := range pieces {
		pieces[i] = m.Restore(p)
	}
	return mergeBlockStarts(pieces)
}

// mergeBlockStarts joins any piece that would start a new Markdown block
// back onto the piece before it.
func mergeBlockStarts(pieces []string) []string {
	out := pieces[:1]
	for _, p := range pieces[1:] {
		if blockStart.MatchString(p) {
			out[len(out)-1] += " " + p
			continue
		}
		out = append(out, p)
	}
	return out
}
