package linebreak

import "regexp"

// enumerationMarker matches the content of list markers like (1) and (12).
var enumerationMarker = regexp.MustCompile(`^\d+$`)

// SplitLong breaks a piece longer than VeryLongLength once: after the first
// closing parenthesis that is not an enumeration marker, otherwise at the
// comma nearest the middle. Both parts must be at least MinPartLength runes.
func (b *Breaker) SplitLong(text string) []string {
	return splitLong(text, b.opts.VeryLongLength, b.opts.MinPartLength)
}

func splitLong(text string, veryLong, minPart int) []string {
	if runeLen(text) <= veryLong {
		return []string{text}
	}
	if parts, ok := splitAfterParen(text, minPart); ok {
		return parts
	}
	if parts, ok := splitAtComma(text, minPart); ok {
		return parts
	}
	return []string{text}
}

func splitAfterParen(text string, minPart int) ([]string, bool) {
	for i := 0; i < len(text)-1; i++ {
		if text[i] != ')' || !isSpace(text[i+1]) {
			continue
		}
		if isEnumeration(text, i) {
			continue
		}
		if parts, ok := splitPair(text[:i+1], text[i+1:], minPart); ok {
			return parts, true
		}
	}
	return nil, false
}

// isEnumeration reports whether the parenthetical closed at text[end]
// holds a bare integer.
func isEnumeration(text string, end int) bool {
	depth := 0
	for i := end - 1; i >= 0; i-- {
		switch text[i] {
		case ')':
			depth++
		case '(':
			if depth == 0 {
				return enumerationMarker.MatchString(text[i+1 : end])
			}
			depth--
		}
	}
	return false
}

func splitAtComma(text string, minPart int) ([]string, bool) {
	mid := len(text) / 2
	best := -1
	var bestParts []string
	for i := 0; i < len(text)-1; i++ {
		if text[i] != ',' || !isSpace(text[i+1]) {
			continue
		}
		parts, ok := splitPair(text[:i+1], text[i+1:], minPart)
		if !ok {
			continue
		}
		if best < 0 || distance(i, mid) < distance(best, mid) {
			best = i
			bestParts = parts
		}
	}
	return bestParts, best >= 0
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
