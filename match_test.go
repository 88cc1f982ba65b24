package unscramble

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tdewolff/test"
)

const targetTTX = `<?xml version="1.0" encoding="UTF-8"?>
<ttFont sfntVersion="\x00\x01\x00\x00" ttLibVersion="4.38">
  <cmap>
    <tableVersion version="0"/>
    <cmap_format_4 platformID="3" platEncID="1" language="0">
      <map code="0xe001" name="uniF100"/>
      <map code="0xe002" name="uniF101"/>
      <map code="0xe003" name="uniF102"/>
    </cmap_format_4>
  </cmap>
  <glyf>
    <TTGlyph name=".notdef"/>
    <TTGlyph name="uniF100" xMin="0" yMin="0" xMax="500" yMax="700">
      <contour>
        <pt x="100" y="100" on="1"/>
        <pt x="400" y="600" on="1"/>
        <pt x="500" y="0" on="0"/>
      </contour>
      <instructions/>
    </TTGlyph>
    <TTGlyph name="uniF101" xMin="1" yMin="2" xMax="3" yMax="4">
      <contour>
        <pt x="1" y="2" on="1"/>
      </contour>
    </TTGlyph>
    <TTGlyph name="uniF102" xMin="10" yMin="-20" xMax="480" yMax="690">
      <contour>
        <pt x="10" y="-20" on="1"/>
      </contour>
      <contour>
        <pt x="480" y="690" on="1"/>
      </contour>
    </TTGlyph>
    <TTGlyph name="uniF103" xMin="0" yMin="0" xMax="500" yMax="700">
      <contour>
        <pt x="0" y="0" on="1"/>
      </contour>
    </TTGlyph>
  </glyf>
</ttFont>
`

func TestMatch(t *testing.T) {
	reference, err := ParseTTX([]byte(referenceTTX))
	test.Error(t, err)
	target, err := ParseTTX([]byte(targetTTX))
	test.Error(t, err)

	idx := NewIndex(reference, KeepLast)
	m := Match(target, idx)
	expected := SubstitutionMap{
		'\ue001': '中', // same bbox and contour count as uniE000, different points
		'\ue003': '文',
	}
	if diff := cmp.Diff(expected, m); diff != "" {
		t.Errorf("substitutions mismatch (-want +got):\n%s", diff)
	}
	test.T(t, m.Runes(), []rune{'\ue001', '\ue003'})

	// U+E002 has no match and stays unchanged
	test.String(t, m.Rewrite("\ue001\ue002\ue003!"), "中\ue002文!")
}

func TestMatchScenario(t *testing.T) {
	idx := NewIndex(&Font{
		Glyphs: []Glyph{{Name: "uniE000", BBox: BoundingBox{0, 0, 500, 700}, Contours: []Contour{{{0, 0, true}}}}},
		Codes:  CodeTable{"uniE000": 0x4e2d},
	}, KeepLast)
	target := &Font{
		Glyphs: []Glyph{
			{Name: "uniF100", BBox: BoundingBox{0, 0, 500, 700}, Contours: []Contour{{{42, 7, false}}}},
			{Name: "unmapped", BBox: BoundingBox{0, 0, 500, 700}, Contours: []Contour{{{0, 0, true}}}},
		},
		Codes: CodeTable{"uniF100": 0xe001},
	}
	test.T(t, Match(target, idx), SubstitutionMap{0xe001: 0x4e2d})
}

func TestMatchOrderIndependent(t *testing.T) {
	reference, err := ParseTTX([]byte(referenceTTX))
	test.Error(t, err)
	target, err := ParseTTX([]byte(targetTTX))
	test.Error(t, err)
	idx := NewIndex(reference, KeepLast)

	m := Match(target, idx)
	reversed := &Font{Codes: target.Codes}
	for i := len(target.Glyphs) - 1; 0 <= i; i-- {
		reversed.Glyphs = append(reversed.Glyphs, target.Glyphs[i])
	}
	test.T(t, Match(reversed, idx), m)
}

func TestRewrite(t *testing.T) {
	var tests = []struct {
		line     string
		m        SubstitutionMap
		expected string
	}{
		{"", SubstitutionMap{'A': 'B'}, ""},
		{"hello", SubstitutionMap{'A': 'B'}, "hello"},
		{"hello", nil, "hello"},
		{"AB", SubstitutionMap{'A': 'B', 'B': 'A'}, "BA"}, // single pass
		{"AAB", SubstitutionMap{'A': 'B', 'B': 'C'}, "BBC"},
		{"\ue001你好", SubstitutionMap{'\ue001': '中'}, "中你好"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			test.String(t, Rewrite(tt.line, tt.m), tt.expected)
		})
	}
}

func TestRewriteLines(t *testing.T) {
	m := SubstitutionMap{'a': 'b'}
	test.T(t, RewriteLines([]string{"a", "", "ca"}, m), []string{"b", "", "cb"})
}

func TestSubstitutionMapMerge(t *testing.T) {
	m := SubstitutionMap{'a': 'b', 'c': 'd'}
	m.Merge(SubstitutionMap{'c': 'e', 'f': 'g'})
	test.T(t, m, SubstitutionMap{'a': 'b', 'c': 'e', 'f': 'g'})
}
