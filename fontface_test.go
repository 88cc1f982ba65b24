package unscramble

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/image/font/gofont/goregular"
)

func TestDecodeFontFace(t *testing.T) {
	data := base64.StdEncoding.EncodeToString(goregular.TTF)
	var tests = []struct {
		src string
		ext string
	}{
		{`url("data:font/ttf;charset=utf-8;base64,` + data + `") format("truetype")`, "ttf"},
		{`url('data:application/x-font-ttf;base64,` + data + `')`, "ttf"},
		{`url(data:font/woff2;base64,` + data + `) format("woff2")`, "woff2"},
		{`local("Go"), url("https://example.com/go.ttf"), url("data:font/truetype;base64,` + data + `")`, "ttf"},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			ext, b, err := DecodeFontFace(FontFace{Name: "Go", Src: tt.src})
			test.Error(t, err)
			test.String(t, ext, tt.ext)
			test.Bytes(t, b, goregular.TTF)
		})
	}
}

func TestDecodeFontFaceErrors(t *testing.T) {
	for _, src := range []string{
		``,
		`url("https://example.com/font.woff2") format("woff2")`,
		`url("data:image/png;base64,iVBORw0KGgo=")`,
		`url("data:font/woff2;base64,")`,
		`local("Arial")`,
	} {
		t.Run(src, func(t *testing.T) {
			_, _, err := DecodeFontFace(FontFace{Name: "scrambled", Src: src})
			test.That(t, errors.Is(err, ErrBadFontSource), "expected bad font source, got", err)
			var serr *SourceError
			test.That(t, errors.As(err, &serr))
			test.String(t, serr.Name, "scrambled")
		})
	}
}

func TestResolve(t *testing.T) {
	reference, err := ParseSFNT(goregular.TTF)
	test.Error(t, err)
	idx := NewIndex(reference, KeepLast)

	faces := []FontFace{
		{Name: "bad", Src: `url("https://example.com/font.woff2")`},
		{Name: "go", Src: `url("data:font/ttf;base64,` + base64.StdEncoding.EncodeToString(goregular.TTF) + `")`},
		{Name: "garbage", Src: `url("data:font/ttf;base64,` + base64.StdEncoding.EncodeToString([]byte("not a font")) + `")`},
	}
	m, err := Resolve(faces, idx)
	test.That(t, err != nil)
	test.That(t, errors.Is(err, ErrBadFontSource))
	var perr *ParseError
	test.That(t, errors.As(err, &perr), "expected the parse error of the garbage font")
	test.T(t, len(m), len(reference.Codes))

	m, err = Resolve(nil, idx)
	test.Error(t, err)
	test.T(t, len(m), 0)
}
