package unscramble

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
)

// FontFace is an @font-face rule of a page.
type FontFace struct {
	Name string // font-family
	Src  string
}

var srcURL = regexp.MustCompile(`url\(\s*(?:"([^"]*)"|'([^']*)'|([^"'\s)]*))\s*\)`)

var mimetypeExt = map[string]string{
	"font/ttf":                      "ttf",
	"font/truetype":                 "ttf",
	"font/otf":                      "otf",
	"font/opentype":                 "otf",
	"font/woff":                     "woff",
	"font/woff2":                    "woff2",
	"font/sfnt":                     "ttf",
	"application/font-woff":         "woff",
	"application/font-woff2":        "woff2",
	"application/x-font-woff":       "woff",
	"application/x-font-ttf":        "ttf",
	"application/x-font-otf":        "otf",
	"application/font-sfnt":         "ttf",
	"application/vnd.ms-fontobject": "eot",
}

// DecodeFontFace decodes the first data URI of the src descriptor of a font face. It returns the file extension of the font and its binary data.
func DecodeFontFace(face FontFace) (string, []byte, error) {
	for _, match := range srcURL.FindAllStringSubmatch(face.Src, -1) {
		uri := match[1] + match[2] + match[3]
		if !strings.HasPrefix(uri, "data:") {
			continue
		}

		mediatype, data, err := parse.DataURI([]byte(uri))
		if err != nil {
			return "", nil, &SourceError{Name: face.Name, Err: fmt.Errorf("%w: %v", ErrBadFontSource, err)}
		} else if len(data) == 0 {
			return "", nil, &SourceError{Name: face.Name, Err: fmt.Errorf("%w: empty data URI", ErrBadFontSource)}
		}

		mimetype := strings.ToLower(string(mediatype))
		if semicolon := strings.IndexByte(mimetype, ';'); semicolon != -1 {
			mimetype = mimetype[:semicolon]
		}
		ext, ok := mimetypeExt[strings.TrimSpace(mimetype)]
		if !ok {
			return "", nil, &SourceError{Name: face.Name, Err: fmt.Errorf("%w: unsupported media type %q", ErrBadFontSource, mimetype)}
		}
		return ext, data, nil
	}
	return "", nil, &SourceError{Name: face.Name, Err: fmt.Errorf("%w: no data URI", ErrBadFontSource)}
}

// Resolve decodes and matches every font face against the reference index and merges their substitutions in order. A font face that fails does not stop the others; all failures are returned joined together with the substitutions of the faces that succeeded.
func Resolve(faces []FontFace, idx *Index) (SubstitutionMap, error) {
	m := SubstitutionMap{}
	var errs []error
	for _, face := range faces {
		_, data, err := DecodeFontFace(face)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		font, err := ParseSFNT(data)
		if err != nil {
			errs = append(errs, &SourceError{Name: face.Name, Err: err})
			continue
		}
		m.Merge(Match(font, idx))
	}
	return m, errors.Join(errs...)
}
