package unscramble

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
)

// Point is an outline control point. OnCurve is false for quadratic control points.
type Point struct {
	X, Y    int
	OnCurve bool
}

// Contour is a closed outline path.
type Contour []Point

// BoundingBox is the declared extents of a glyph.
type BoundingBox struct {
	XMin, YMin, XMax, YMax int
}

// Glyph is a glyph outline as stored in the font. The name is unique within a font.
type Glyph struct {
	Name     string
	BBox     BoundingBox
	Contours []Contour
}

// Fingerprint returns the structural fingerprint of the glyph.
func (g Glyph) Fingerprint() Fingerprint {
	return NewFingerprint(g.BBox, len(g.Contours))
}

func (g Glyph) String() string {
	numPoints := 0
	for _, contour := range g.Contours {
		numPoints += len(contour)
	}
	return fmt.Sprintf("%s bbox=(%d,%d,%d,%d) contours=%d points=%d", g.Name, g.BBox.XMin, g.BBox.YMin, g.BBox.XMax, g.BBox.YMax, len(g.Contours), numPoints)
}

// CodeTable maps glyph names to the character codes that the font's cmap assigns to them.
type CodeTable map[string]rune

// Font is the glyph outline table and code table of a single font.
type Font struct {
	Glyphs []Glyph
	Codes  CodeTable
}

// Glyph returns the glyph with the given name.
func (font *Font) Glyph(name string) (Glyph, bool) {
	for _, g := range font.Glyphs {
		if g.Name == name {
			return g, true
		}
	}
	return Glyph{}, false
}

// Runes returns the character codes of the font in increasing order.
func (font *Font) Runes() []rune {
	rs := make([]rune, 0, len(font.Codes))
	for _, r := range font.Codes {
		rs = append(rs, r)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	return rs
}

////////////////////////////////////////////////////////////////

// Fingerprint is a coarse identity of a glyph shape. Glyphs with the same declared bounding box and number of contours share a fingerprint, regardless of their points.
type Fingerprint [md5.Size]byte

// NewFingerprint returns the fingerprint for a bounding box and contour count.
func NewFingerprint(bbox BoundingBox, numContours int) Fingerprint {
	s := fmt.Sprintf("%d,%d,%d,%d,%d", bbox.XMax, bbox.YMax, bbox.XMin, bbox.YMin, numContours)
	return md5.Sum([]byte(s))
}

// ParseFingerprint parses a fingerprint from its lowercase hexadecimal form.
func ParseFingerprint(s string) (Fingerprint, error) {
	var fp Fingerprint
	if len(s) != 2*len(fp) {
		return fp, fmt.Errorf("bad fingerprint %q", s)
	} else if _, err := hex.Decode(fp[:], []byte(s)); err != nil {
		return fp, fmt.Errorf("bad fingerprint %q", s)
	}
	return fp, nil
}

func (fp Fingerprint) String() string {
	return hex.EncodeToString(fp[:])
}

// MarshalText implements encoding.TextMarshaler.
func (fp Fingerprint) MarshalText() ([]byte, error) {
	return []byte(fp.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (fp *Fingerprint) UnmarshalText(b []byte) error {
	var err error
	*fp, err = ParseFingerprint(string(b))
	return err
}
