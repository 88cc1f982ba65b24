package unscramble

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// DefaultSelector selects the container of obfuscated text.
const DefaultSelector = "#manuscript"

// ErrNoContainer is returned when a page has no element matching the container selector.
var ErrNoContainer = errors.New("text container not found")

var textSelector = cascadia.MustCompile("h1, h2, h3, h4, h5, h6, p")
var styleSelector = cascadia.MustCompile("style")

// Page is the text and embedded fonts scraped from a page.
type Page struct {
	Lines      []string
	FontFamily string // first family of the container's font-family
	FontFaces  []FontFace
}

// ParsePage reads a saved HTML page. It extracts the text of the headings and paragraphs inside the container matched by selector, and the @font-face rules for the container's font family.
func ParsePage(r io.Reader, selector string) (*Page, error) {
	if selector == "" {
		selector = DefaultSelector
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("bad selector %q: %w", selector, err)
	}

	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	container := sel.MatchFirst(doc)
	if container == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoContainer, selector)
	}

	page := &Page{}
	for _, n := range textSelector.MatchAll(container) {
		page.Lines = append(page.Lines, strings.TrimSpace(textContent(n)))
	}
	if style, ok := attr(container, "style"); ok {
		if decls, err := parser.ParseDeclarations(style); err == nil {
			for _, decl := range decls {
				if strings.EqualFold(decl.Property, "font-family") {
					page.FontFamily = firstFamily(decl.Value)
				}
			}
		}
	}

	for _, n := range styleSelector.MatchAll(doc) {
		stylesheet, err := parser.Parse(textContent(n))
		if err != nil {
			continue // skip stylesheets that cannot be parsed, as browsers do
		}
		page.FontFaces = appendFontFaces(page.FontFaces, stylesheet.Rules, page.FontFamily)
	}
	return page, nil
}

func appendFontFaces(faces []FontFace, rules []*css.Rule, family string) []FontFace {
	for _, rule := range rules {
		if rule.Kind != css.AtRule {
			continue
		} else if !strings.EqualFold(rule.Name, "@font-face") {
			faces = appendFontFaces(faces, rule.Rules, family)
			continue
		}

		face := FontFace{}
		for _, decl := range rule.Declarations {
			switch strings.ToLower(decl.Property) {
			case "font-family":
				face.Name = firstFamily(decl.Value)
			case "src":
				face.Src = decl.Value
			}
		}
		if family == "" || face.Name == family {
			faces = append(faces, face)
		}
	}
	return faces
}

func firstFamily(value string) string {
	if comma := strings.IndexByte(value, ','); comma != -1 {
		value = value[:comma]
	}
	return strings.Trim(strings.TrimSpace(value), `"'`)
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
