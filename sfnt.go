package unscramble

import (
	"bytes"
	"fmt"

	"github.com/tdewolff/font"
	"github.com/tdewolff/parse/v2"
)

// ParseSFNT parses a binary font file (TTF, WOFF, WOFF2, EOT) with TrueType outlines. Glyph names and bounding boxes are taken as declared by the font, so that the result is identical to parsing the ttx dump of the same file.
func ParseSFNT(b []byte) (*Font, error) {
	b, err := font.ToSFNT(b)
	if err != nil {
		return nil, &ParseError{Table: "sfnt", Err: err}
	}
	sfnt, err := font.ParseSFNT(b, 0)
	if err != nil {
		return nil, &ParseError{Table: "sfnt", Err: err}
	} else if !sfnt.IsTrueType || sfnt.Glyf == nil {
		return nil, parseErrorf("glyf", "missing table, only TrueType outlines are supported")
	}

	// select the first format 4 cmap subtable
	cmap := -1
	for _, record := range sfnt.Cmap.EncodingRecords {
		if record.Format == 4 && int(record.Subtable) < len(sfnt.Cmap.Subtables) {
			cmap = int(record.Subtable)
			break
		}
	}
	if cmap == -1 {
		return nil, parseErrorf("cmap", "missing format 4 subtable")
	}

	numGlyphs := sfnt.NumGlyphs()
	f := &Font{
		Glyphs: make([]Glyph, 0, numGlyphs),
		Codes:  CodeTable{},
	}
	names := map[string]int{}
	for glyphID := uint16(0); glyphID < numGlyphs; glyphID++ {
		g, err := sfntGlyph(sfnt, glyphID)
		if err != nil {
			return nil, err
		}

		// name glyphs like fontTools does
		g.Name = sfnt.GlyphName(glyphID)
		if g.Name == "" {
			if glyphID == 0 {
				g.Name = ".notdef"
			} else {
				g.Name = fmt.Sprintf("glyph%05d", glyphID)
			}
		}
		if n, ok := names[g.Name]; ok {
			names[g.Name] = n + 1
			g.Name = fmt.Sprintf("%s#%d", g.Name, n)
		} else {
			names[g.Name] = 1
		}

		if r, ok := sfnt.Cmap.Subtables[cmap].ToUnicode(glyphID); ok {
			f.Codes[g.Name] = r
		}
		f.Glyphs = append(f.Glyphs, g)
	}
	return f, nil
}

func sfntGlyph(sfnt *font.SFNT, glyphID uint16) (Glyph, error) {
	b := sfnt.Glyf.Get(glyphID)
	if b == nil {
		return Glyph{}, parseErrorf("glyf", "bad glyphID %v", glyphID)
	} else if len(b) == 0 {
		return Glyph{}, nil // empty glyph such as space
	} else if len(b) < 10 {
		return Glyph{}, parseErrorf("glyf", "bad table for glyphID %v", glyphID)
	}

	g := Glyph{}
	r := parse.NewBinaryReaderBytes(b)
	numberOfContours := r.ReadInt16()
	g.BBox.XMin = int(r.ReadInt16())
	g.BBox.YMin = int(r.ReadInt16())
	g.BBox.XMax = int(r.ReadInt16())
	g.BBox.YMax = int(r.ReadInt16())
	if numberOfContours <= 0 {
		// composite glyphs consist of components, not contours
		return g, nil
	}

	contour, err := sfnt.Glyf.Contour(glyphID)
	if err != nil {
		return Glyph{}, &ParseError{Table: "glyf", Err: err}
	}
	g.Contours = make([]Contour, 0, len(contour.EndPoints))
	start := 0
	for _, endPoint := range contour.EndPoints {
		end := int(endPoint) + 1
		if end < start || len(contour.XCoordinates) < end || len(contour.YCoordinates) < end || len(contour.OnCurve) < end {
			return Glyph{}, parseErrorf("glyf", "bad contour end points for glyphID %v", glyphID)
		}
		points := make(Contour, 0, end-start)
		for i := start; i < end; i++ {
			points = append(points, Point{
				X:       int(contour.XCoordinates[i]),
				Y:       int(contour.YCoordinates[i]),
				OnCurve: contour.OnCurve[i],
			})
		}
		g.Contours = append(g.Contours, points)
		start = end
	}
	return g, nil
}

// Parse parses a font from either its ttx dump or its binary file.
func Parse(b []byte) (*Font, error) {
	if isXML(b) {
		return ParseTTX(b)
	}
	return ParseSFNT(b)
}

func isXML(b []byte) bool {
	b = bytes.TrimPrefix(b, []byte("\xEF\xBB\xBF"))
	b = bytes.TrimLeft(b, " \t\r\n")
	return bytes.HasPrefix(b, []byte("<?xml")) || bytes.HasPrefix(b, []byte("<ttFont"))
}
