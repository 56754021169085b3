package linebreak

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"
)

// ErrNotEquivalent reports that two documents render to different text.
var ErrNotEquivalent = errors.New("rendered text differs")

const mismatchContext = 40

// MismatchError describes the first difference found by CheckEquivalent.
type MismatchError struct {
	// Offset is the byte offset of the first difference in the normalised text.
	Offset int
	Before string
	After  string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v at offset %d: %q != %q", ErrNotEquivalent, e.Offset, e.Before, e.After)
}

func (e *MismatchError) Unwrap() error {
	return ErrNotEquivalent
}

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Footnote,
		extension.DefinitionList,
	),
)

// CheckEquivalent renders before and after as Markdown, strips the markup
// and compares the remaining text with whitespace collapsed. It returns nil
// when the texts match and a *MismatchError otherwise.
func CheckEquivalent(before, after []byte) error {
	a, err := RenderedText(before)
	if err != nil {
		return err
	}
	b, err := RenderedText(after)
	if err != nil {
		return err
	}
	if a == b {
		return nil
	}
	i := firstDifference(a, b)
	return &MismatchError{
		Offset: i,
		Before: excerpt(a, i),
		After:  excerpt(b, i),
	}
}

// RenderedText renders src to HTML and returns its text content with
// whitespace runs collapsed to single spaces.
func RenderedText(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return htmlText(&buf)
}

func htmlText(r io.Reader) (string, error) {
	z := html.NewTokenizer(r)
	var sb strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return "", fmt.Errorf("read html: %w", err)
			}
			return strings.Join(strings.Fields(sb.String()), " "), nil
		case html.TextToken:
			sb.Write(z.Text())
		}
	}
}

func firstDifference(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func excerpt(s string, at int) string {
	start := max(at-mismatchContext/2, 0)
	end := min(at+mismatchContext/2, len(s))
	return strings.ToValidUTF8(s[start:end], "")
}
