package unscramble

import (
	"sort"
	"strings"
)

// SubstitutionMap maps the apparent character of a scrambled glyph to the character that the glyph actually renders.
type SubstitutionMap map[rune]rune

// Match resolves the glyphs of a scrambled font against a reference index. Glyphs without a character code or without a matching fingerprint are left out, no mapping is guessed.
func Match(font *Font, idx *Index) SubstitutionMap {
	m := SubstitutionMap{}
	for _, g := range font.Glyphs {
		apparent, ok := font.Codes[g.Name]
		if !ok {
			continue
		}
		if resolved, ok := idx.Lookup(g.Fingerprint()); ok {
			m[apparent] = resolved
		}
	}
	return m
}

// Merge adds the substitutions of other, overwriting existing ones.
func (m SubstitutionMap) Merge(other SubstitutionMap) {
	for from, to := range other {
		m[from] = to
	}
}

// Runes returns the apparent characters in increasing order.
func (m SubstitutionMap) Runes() []rune {
	rs := make([]rune, 0, len(m))
	for r := range m {
		rs = append(rs, r)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	return rs
}

// Rewrite replaces every character of the line by its substitution. Characters without substitution are kept. It is a single pass: a map {A: B, B: A} swaps A and B.
func (m SubstitutionMap) Rewrite(line string) string {
	return Rewrite(line, m)
}

// Rewrite replaces every character of the line by its substitution in m.
func Rewrite(line string, m SubstitutionMap) string {
	if len(m) == 0 {
		return line
	}
	return strings.Map(func(r rune) rune {
		if to, ok := m[r]; ok {
			return to
		}
		return r
	}, line)
}

// RewriteLines rewrites each line.
func RewriteLines(lines []string, m SubstitutionMap) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Rewrite(line, m)
	}
	return out
}
