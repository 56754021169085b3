package linebreak

import (
	"errors"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns an error if the input is not valid UTF-8 or appears binary.
func ValidateInput(src []byte) error {
	var v validator
	return v.addString(string(src))
}

// validator accumulates control-character statistics across the lines of
// a stream.
type validator struct {
	total   int
	control int
}

func (v *validator) addString(s string) error {
	if !utf8.ValidString(s) {
		return ErrInvalidUTF8
	}
	for _, r := range s {
		if r == 0 {
			return ErrBinaryInput
		}
		v.total++
		if isControlRune(r) {
			v.control++
		}
	}
	if v.total >= minBinarySample && v.control*100 >= v.total*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' || r == '\f' {
		return false
	}
	if r < 0x20 || r == 0x7F {
		return true
	}
	return false
}
