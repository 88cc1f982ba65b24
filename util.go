package unscramble

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrBadFontSource is returned if an @font-face source is not an embedded font.
var ErrBadFontSource = errors.New("bad font source")

// ErrBadCode is returned if a character code is not a hexadecimal Unicode code point.
var ErrBadCode = errors.New("bad character code")

// ParseError is returned when a font lacks a required table or when a table is malformed. The whole font is rejected.
type ParseError struct {
	Table string
	Err   error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", err.Table, err.Err)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

func parseErrorf(table, format string, args ...interface{}) error {
	return &ParseError{Table: table, Err: fmt.Errorf(format, args...)}
}

// SourceError is returned when the source of a font face cannot be decoded. It only affects that font face.
type SourceError struct {
	Name string
	Err  error
}

func (err *SourceError) Error() string {
	if err.Name == "" {
		return fmt.Sprintf("font-face: %v", err.Err)
	}
	return fmt.Sprintf("font-face %s: %v", err.Name, err.Err)
}

func (err *SourceError) Unwrap() error {
	return err.Err
}

// ParseCode parses a hexadecimal character code such as 4e2d or 0x4e2d.
func ParseCode(s string) (rune, error) {
	hex := s
	if strings.HasPrefix(hex, "0x") || strings.HasPrefix(hex, "0X") || strings.HasPrefix(hex, "U+") {
		hex = hex[2:]
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || !utf8.ValidRune(rune(v)) {
		return 0, fmt.Errorf("%w: %q", ErrBadCode, s)
	}
	return rune(v), nil
}

// FormatCode formats a character code the way fontTools writes it in cmap tables.
func FormatCode(r rune) string {
	return fmt.Sprintf("0x%x", r)
}
