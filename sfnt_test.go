package unscramble

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseSFNT(t *testing.T) {
	font, err := ParseSFNT(goregular.TTF)
	test.Error(t, err)
	test.That(t, 100 < len(font.Glyphs), "expected many glyphs, got", len(font.Glyphs))
	test.That(t, 0 < len(font.Codes))
	test.String(t, font.Glyphs[0].Name, ".notdef")

	names := map[string]bool{}
	for _, g := range font.Glyphs {
		test.That(t, !names[g.Name], "duplicate glyph name", g.Name)
		names[g.Name] = true
	}

	var glyphA *Glyph
	for i, g := range font.Glyphs {
		if r, ok := font.Codes[g.Name]; ok && r == 'A' {
			glyphA = &font.Glyphs[i]
		}
	}
	test.That(t, glyphA != nil, "no glyph for A")
	test.That(t, 0 < len(glyphA.Contours))
	test.That(t, glyphA.BBox.XMin < glyphA.BBox.XMax && glyphA.BBox.YMin < glyphA.BBox.YMax)
	for _, contour := range glyphA.Contours {
		test.That(t, 0 < len(contour))
	}
}

func TestParseSFNTSelfMatch(t *testing.T) {
	font, err := ParseSFNT(goregular.TTF)
	test.Error(t, err)

	idx := NewIndex(font, KeepLast)
	m := Match(font, idx)
	test.T(t, len(m), len(font.Codes))

	// without collisions every character resolves to itself
	ambiguous := map[Fingerprint]bool{}
	for _, c := range idx.Collisions() {
		ambiguous[c.Fingerprint] = true
	}
	for _, g := range font.Glyphs {
		r, ok := font.Codes[g.Name]
		if ok && !ambiguous[g.Fingerprint()] {
			test.T(t, m[r], r, "glyph", g.Name)
		}
	}
}

func TestParseSFNTOtherFont(t *testing.T) {
	regular, err := ParseSFNT(goregular.TTF)
	test.Error(t, err)
	bold, err := ParseSFNT(gobold.TTF)
	test.Error(t, err)

	// bold shapes have other extents, so few characters can resolve
	m := Match(bold, NewIndex(regular, KeepLast))
	test.That(t, len(m) < len(bold.Codes)/2, "too many matches between regular and bold:", len(m))
}

func TestParseSFNTErrors(t *testing.T) {
	for _, b := range [][]byte{nil, []byte("wOF2garbage"), []byte("\x00\x01\x00\x00\x00\x00")} {
		_, err := ParseSFNT(b)
		var perr *ParseError
		test.That(t, errors.As(err, &perr), "expected parse error, got", err)
	}
}
