package unscramble

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

var xmlEntities = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&quot;", "\"", "&apos;", "'", "&amp;", "&")

type ttxElement struct {
	name  string
	attrs map[string]string
}

func (el ttxElement) int(table, key string) (int, error) {
	s, ok := el.attrs[key]
	if !ok || s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, parseErrorf(table, "bad %s attribute %q in %s", key, s, el.name)
	}
	return v, nil
}

// ttxParser reads the glyf and cmap tables of a TTX document. It keeps a stack of open elements so that each element is interpreted by its parent.
type ttxParser struct {
	font    *Font
	stack   []string
	glyph   int // index of the open TTGlyph or -1
	hasGlyf bool
	hasCmap bool // first cmap_format_4 seen
	inCmap  bool // inside the first cmap_format_4
}

// ParseTTX parses the XML font description written by fontTools' ttx. It reads the glyph outlines from the glyf table and the character codes from the first format 4 cmap subtable.
func ParseTTX(b []byte) (*Font, error) {
	p := &ttxParser{
		font:  &Font{Codes: CodeTable{}},
		glyph: -1,
	}

	l := xml.NewLexer(parse.NewInputBytes(b))
	var el *ttxElement
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return nil, parseErrorf("ttx", "%v", l.Err())
			} else if len(p.stack) != 0 {
				return nil, parseErrorf("ttx", "unexpected end of document in %s", p.stack[len(p.stack)-1])
			} else if !p.hasGlyf {
				return nil, parseErrorf("glyf", "missing table")
			} else if !p.hasCmap {
				return nil, parseErrorf("cmap", "missing format 4 subtable")
			}
			return p.font, nil
		case xml.StartTagToken:
			el = &ttxElement{name: string(l.Text()), attrs: map[string]string{}}
		case xml.AttributeToken:
			if el != nil {
				val := string(bytes.Trim(l.AttrVal(), `"'`))
				el.attrs[string(l.Text())] = xmlEntities.Replace(val)
			}
		case xml.StartTagCloseToken, xml.StartTagCloseVoidToken:
			if el == nil {
				continue
			}
			if err := p.open(*el); err != nil {
				return nil, err
			}
			p.stack = append(p.stack, el.name)
			if tt == xml.StartTagCloseVoidToken {
				p.close()
			}
			el = nil
		case xml.EndTagToken:
			name := string(l.Text())
			if len(p.stack) == 0 || p.stack[len(p.stack)-1] != name {
				return nil, parseErrorf("ttx", "unexpected end tag %s", name)
			}
			p.close()
		case xml.StartTagPIToken:
			el = nil // <?xml ... ?>
		}
	}
}

func (p *ttxParser) parent() string {
	if len(p.stack) == 0 {
		return ""
	}
	return p.stack[len(p.stack)-1]
}

func (p *ttxParser) close() {
	switch p.parent() {
	case "cmap_format_4":
		p.inCmap = false
	case "TTGlyph":
		p.glyph = -1
	}
	p.stack = p.stack[:len(p.stack)-1]
}

func (p *ttxParser) open(el ttxElement) error {
	switch parent := p.parent(); {
	case el.name == "glyf" && parent == "ttFont":
		p.hasGlyf = true
	case el.name == "TTGlyph" && parent == "glyf":
		name, ok := el.attrs["name"]
		if !ok || name == "" {
			return parseErrorf("glyf", "glyph %d without name", len(p.font.Glyphs))
		}
		g := Glyph{Name: name}
		var err error
		if g.BBox.XMin, err = el.int("glyf", "xMin"); err != nil {
			return err
		} else if g.BBox.YMin, err = el.int("glyf", "yMin"); err != nil {
			return err
		} else if g.BBox.XMax, err = el.int("glyf", "xMax"); err != nil {
			return err
		} else if g.BBox.YMax, err = el.int("glyf", "yMax"); err != nil {
			return err
		}
		p.glyph = len(p.font.Glyphs)
		p.font.Glyphs = append(p.font.Glyphs, g)
	case el.name == "contour" && parent == "TTGlyph" && p.glyph != -1:
		g := &p.font.Glyphs[p.glyph]
		g.Contours = append(g.Contours, Contour{})
	case el.name == "pt" && parent == "contour" && p.glyph != -1:
		g := &p.font.Glyphs[p.glyph]
		x, okX := el.attrs["x"]
		y, okY := el.attrs["y"]
		if !okX || !okY {
			return parseErrorf("glyf", "point without coordinates in glyph %s", g.Name)
		}
		var pt Point
		var err error
		if pt.X, err = strconv.Atoi(x); err != nil {
			return parseErrorf("glyf", "bad point %q in glyph %s", x, g.Name)
		} else if pt.Y, err = strconv.Atoi(y); err != nil {
			return parseErrorf("glyf", "bad point %q in glyph %s", y, g.Name)
		}
		pt.OnCurve = el.attrs["on"] == "1"
		contour := &g.Contours[len(g.Contours)-1]
		*contour = append(*contour, pt)
	case el.name == "cmap_format_4" && parent == "cmap":
		if !p.hasCmap {
			p.hasCmap = true
			p.inCmap = true
		}
	case el.name == "map" && parent == "cmap_format_4" && p.inCmap:
		code, okCode := el.attrs["code"]
		name, okName := el.attrs["name"]
		if !okCode || !okName {
			return parseErrorf("cmap", "map entry without code or name")
		}
		r, err := ParseCode(code)
		if err != nil {
			return &ParseError{Table: "cmap", Err: fmt.Errorf("glyph %s: %w", name, err)}
		}
		p.font.Codes[name] = r
	}
	return nil
}
