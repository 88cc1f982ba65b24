package main

import (
	"context"
	"fmt"
	"image"
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/image/font/gofont/goregular"
)

type countingRecognizer struct {
	calls int
}

func (r *countingRecognizer) Recognize(_ context.Context, _ image.Image) (string, error) {
	r.calls++
	return fmt.Sprint(r.calls), nil
}

func TestRecognizeLines(t *testing.T) {
	r := &countingRecognizer{}
	lines, err := recognizeLines(r, goregular.TTF, []string{"first", "", "second"}, 40, 1)
	test.Error(t, err)
	test.T(t, lines, []string{"1", "", "2"})
	test.T(t, r.calls, 2)
}

func TestDescribeRune(t *testing.T) {
	test.String(t, describeRune('A'), "U+0041 A (LATIN CAPITAL LETTER A)")
	test.String(t, printableRune('\n'), "0x0A")
	test.String(t, printableRune('\ue001'), "U+E001")
}
