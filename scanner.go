package linebreak

import (
	"regexp"
	"strings"
)

type blockKind uint8

const (
	blockFrontMatter blockKind = iota + 1
	blockCode
	blockColon
	blockMath
)

func (k blockKind) String() string {
	switch k {
	case blockFrontMatter:
		return "front-matter"
	case blockCode:
		return "code"
	case blockColon:
		return "colon-fence"
	case blockMath:
		return "math"
	default:
		return "none"
	}
}

// block is one entry of the scanner's protection stack. fence and run record
// the opening delimiter character and its length.
type block struct {
	kind   blockKind
	fence  byte
	run    int
	opened int
}

var (
	atxHeading = regexp.MustCompile(`^#{1,6}(?:\s|$)`)
	linkRefDef = regexp.MustCompile(`^\[[^\]^][^\]]*\]:\s`)
	// htmlLine matches a tag, comment, declaration or autolink at the start
	// of a line.
	htmlLine = regexp.MustCompile(`^<(?:/?[A-Za-z]|!|\?)`)
	listItem = regexp.MustCompile(`^\s*(?:[-*+]|\d{1,9}[.)])(?:\s|$)`)
)

// BreakText reflows every formattable line of doc using the default options.
func BreakText(doc string) string {
	return defaultBreaker.BreakText(doc)
}

// BreakText reflows every formattable line of doc. Front matter, fenced
// code, colon-fenced divs and display math pass through unchanged, as do
// headings, table rows, HTML lines and link definitions. Unterminated
// blocks stay protected to the end of the document. Lines ending in "\r\n"
// get "\r\n" between inserted breaks.
func (b *Breaker) BreakText(doc string) string {
	s := newScanner(b, nil)
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		body, newline := line, "\n"
		if strings.HasSuffix(line, "\r") {
			body, newline = line[:len(line)-1], "\r\n"
		}
		out := s.next(body, newline)
		if newline == "\r\n" {
			out += "\r"
		}
		lines[i] = out
	}
	s.finish()
	return strings.Join(lines, "\n")
}

// scanner walks a document one line at a time and routes formattable lines
// through a Breaker.
type scanner struct {
	b           *Breaker
	stack       []block
	lineNo      int
	frontMatter []string
	disabled    bool
	report      *Report

	prevBlank    bool
	inList       bool
	indentedCode bool
}

func newScanner(b *Breaker, report *Report) *scanner {
	if report == nil {
		report = &Report{}
	}
	return &scanner{b: b, report: report, prevBlank: true}
}

// next consumes one line without its terminator and returns the text to
// emit in its place, using newline between inserted breaks.
func (s *scanner) next(line, newline string) string {
	s.lineNo++
	out := s.classify(line, newline)
	s.track(line)
	s.report.observe(s.lineNo, line, out, newline)
	return out
}

func (s *scanner) classify(line, newline string) string {
	trim := strings.TrimSpace(line)
	top := s.top()
	if top != nil {
		switch top.kind {
		case blockFrontMatter:
			if trim == "---" || trim == "..." {
				s.pop()
				s.applyFrontMatter()
			} else {
				s.frontMatter = append(s.frontMatter, line)
			}
			return line
		case blockCode:
			if closesCodeFence(trim, *top) {
				s.pop()
			}
			return line
		case blockMath:
			if strings.HasSuffix(trim, "$$") {
				s.pop()
			}
			return line
		}
	}
	if len(s.stack) == 0 && s.inIndentedCode(line, trim) {
		return line
	}
	if s.lineNo == 1 && isFrontMatterOpen(line) {
		s.push(block{kind: blockFrontMatter, fence: '-', run: 3})
		return line
	}
	if fence, run, ok := parseCodeFence(trim); ok {
		s.push(block{kind: blockCode, fence: fence, run: run})
		return line
	}
	if opensMath(trim) {
		s.push(block{kind: blockMath, fence: '$', run: 2})
		return line
	}
	if run, bare, ok := parseColonFence(trim); ok {
		if bare && top != nil && top.kind == blockColon && run >= top.run {
			s.pop()
		} else {
			s.push(block{kind: blockColon, fence: ':', run: run})
		}
		return line
	}
	if len(s.stack) > 0 || s.disabled || isStructural(trim) {
		return line
	}
	return s.b.formatLine(line, newline)
}

// inIndentedCode reports whether line belongs to an indented code block: a
// run of lines indented four or more columns that starts after a blank line
// outside a list.
func (s *scanner) inIndentedCode(line, trim string) bool {
	if trim == "" {
		return s.indentedCode
	}
	if indentWidth(line) < 4 {
		s.indentedCode = false
		return false
	}
	if s.indentedCode || (s.prevBlank && !s.inList) {
		s.indentedCode = true
		return true
	}
	return false
}

// track records the list and blank-line context that indented code
// detection depends on.
func (s *scanner) track(line string) {
	blank := strings.TrimSpace(line) == ""
	if !blank && len(s.stack) == 0 && !s.indentedCode {
		switch {
		case listItem.MatchString(line):
			s.inList = true
		case s.prevBlank && indentWidth(line) == 0:
			s.inList = false
		}
	}
	s.prevBlank = blank
}

func (s *scanner) top() *block {
	if len(s.stack) == 0 {
		return nil
	}
	return &s.stack[len(s.stack)-1]
}

func (s *scanner) push(b block) {
	b.opened = s.lineNo
	s.stack = append(s.stack, b)
}

func (s *scanner) pop() {
	s.stack = s.stack[:len(s.stack)-1]
}

// finish records a warning for every block still open at the end of the
// document. Their contents were passed through unchanged.
func (s *scanner) finish() {
	for i := len(s.stack) - 1; i >= 0; i-- {
		b := s.stack[i]
		s.report.warnf("unterminated %s block opened at line %d", b.kind, b.opened)
	}
	s.stack = s.stack[:0]
}

// applyFrontMatter reads the linebreak settings of the closed front matter.
func (s *scanner) applyFrontMatter() {
	yamlText := strings.Join(s.frontMatter, "\n")
	s.frontMatter = nil
	settings, found, err := parseFrontMatterSettings(yamlText)
	if err != nil {
		s.report.warnf("front matter: %v", err)
		return
	}
	if !found {
		return
	}
	if !settings.IsEnabled() {
		s.disabled = true
		return
	}
	s.b = s.b.With(settings.Options()...)
}

func isFrontMatterOpen(line string) bool {
	return strings.TrimSpace(trimBOM(line)) == "---"
}

// parseCodeFence reports whether trim opens a fenced code block with a run
// of at least three backticks or tildes.
func parseCodeFence(trim string) (byte, int, bool) {
	if len(trim) < 3 || (trim[0] != '`' && trim[0] != '~') {
		return 0, 0, false
	}
	fence := trim[0]
	run := leadingRun(trim, fence)
	if run < 3 {
		return 0, 0, false
	}
	return fence, run, true
}

func closesCodeFence(trim string, open block) bool {
	run := leadingRun(trim, open.fence)
	return run >= open.run && run == len(trim)
}

// parseColonFence reports whether trim starts with three or more colons and
// whether the line holds nothing but the colon run.
func parseColonFence(trim string) (run int, bare bool, ok bool) {
	run = leadingRun(trim, ':')
	if run < 3 {
		return 0, false, false
	}
	return run, strings.TrimSpace(trim[run:]) == "", true
}

func opensMath(trim string) bool {
	if !strings.HasPrefix(trim, "$$") {
		return false
	}
	return len(trim) < 4 || !strings.HasSuffix(trim, "$$")
}

func isStructural(trim string) bool {
	if trim == "" {
		return true
	}
	if trim[0] == '|' || strings.HasPrefix(trim, "$$") {
		return true
	}
	return htmlLine.MatchString(trim) || atxHeading.MatchString(trim) || linkRefDef.MatchString(trim)
}

func leadingRun(s string, c byte) int {
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	return n
}

// indentWidth returns the leading indentation of line in columns, with tabs
// advancing to the next multiple of four.
func indentWidth(line string) int {
	w := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			w++
		case '\t':
			w += 4 - w%4
		default:
			return w
		}
	}
	return w
}

func trimBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
