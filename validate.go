package ytmwiki

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
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	var control int
	for _, b := range src {
		if b == 0x00 {
			return ErrBinaryInput
		}
		if isControlByte(b) {
			control++
		}
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

// Validate checks every text field of m with ValidateInput.
func (m Message) Validate() error {
	fields := []string{m.Text, m.Rendered}
	for _, a := range m.Attachments {
		fields = append(fields, a.Name, a.URL)
	}
	for _, f := range fields {
		if err := ValidateInput([]byte(f)); err != nil {
			return err
		}
	}
	return nil
}

func isControlByte(b byte) bool {
	if b < 0x09 {
		return true
	}
	if b > 0x0D && b < 0x20 {
		return true
	}
	if b == 0x7F {
		return true
	}
	return false
}
