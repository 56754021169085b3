package linebreak

import "strings"

const emDash = "—"

// SplitOnColons splits text after the first colon or semicolon that leaves
// two parts of at least DefaultMinPartLength runes, provided text is longer
// than minLength. The delimiter stays on the first part.
func SplitOnColons(text string, minLength int) []string {
	return splitOnColons(text, minLength, DefaultMinPartLength)
}

// SplitOnColons is SplitOnColons with the Breaker's thresholds.
func (b *Breaker) SplitOnColons(text string) []string {
	return splitOnColons(text, b.opts.ColonMinLength, b.opts.MinPartLength)
}

func splitOnColons(text string, minLength, minPart int) []string {
	if runeLen(text) <= minLength {
		return []string{text}
	}
	for i := 0; i < len(text)-1; i++ {
		if c := text[i]; c != ':' && c != ';' {
			continue
		}
		if !isSpace(text[i+1]) {
			continue
		}
		if parts, ok := splitPair(text[:i+1], text[i+1:], minPart); ok {
			return parts
		}
	}
	return []string{text}
}

// SplitOnEmDashes splits text before its first em-dash that follows
// whitespace when text is longer than minLength. The dash opens the second
// part. A dash joining two words, as in "cancer—with", is never split.
func SplitOnEmDashes(text string, minLength int) []string {
	return splitOnEmDashes(text, minLength)
}

// SplitOnEmDashes is SplitOnEmDashes with the Breaker's threshold.
func (b *Breaker) SplitOnEmDashes(text string) []string {
	return splitOnEmDashes(text, b.opts.DashMinLength)
}

func splitOnEmDashes(text string, minLength int) []string {
	if runeLen(text) <= minLength {
		return []string{text}
	}
	from := 0
	for {
		i := strings.Index(text[from:], emDash)
		if i < 0 {
			return []string{text}
		}
		i += from
		if i > 0 && isSpace(text[i-1]) {
			head := strings.TrimSpace(text[:i])
			tail := strings.TrimSpace(text[i:])
			if head != "" && tail != emDash {
				return []string{head, tail}
			}
		}
		from = i + len(emDash)
	}
}
