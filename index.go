package unscramble

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/andybalholm/brotli"
)

// CollisionPolicy decides what an index does when two reference glyphs share a fingerprint but have different character codes.
type CollisionPolicy int

// see CollisionPolicy
const (
	KeepLast      CollisionPolicy = iota // the glyph inserted last overwrites earlier ones
	DropAmbiguous                        // the fingerprint is removed from the index
)

// Collision is a fingerprint that was seen with two different character codes while building an index.
type Collision struct {
	Fingerprint
	Glyph    string // glyph name of the later entry, empty when merging indices
	Previous rune
	Code     rune
}

func (c Collision) String() string {
	if c.Glyph == "" {
		return fmt.Sprintf("%v: %U and %U", c.Fingerprint, c.Previous, c.Code)
	}
	return fmt.Sprintf("%v: %U and %U (glyph %s)", c.Fingerprint, c.Previous, c.Code, c.Glyph)
}

// Index maps glyph fingerprints of a reference font to their true character codes. An index is not modified after it has been built and is safe for concurrent use.
type Index struct {
	entries    map[Fingerprint]rune
	dropped    map[Fingerprint]rune // ambiguous fingerprints with their last code
	collisions []Collision
	policy     CollisionPolicy
}

func newIndex(policy CollisionPolicy) *Index {
	return &Index{
		entries: map[Fingerprint]rune{},
		dropped: map[Fingerprint]rune{},
		policy:  policy,
	}
}

// NewIndex builds an index from a reference font whose glyph shapes correspond to their character codes. Glyphs without a character code are skipped.
func NewIndex(font *Font, policy CollisionPolicy) *Index {
	idx := newIndex(policy)
	for _, g := range font.Glyphs {
		r, ok := font.Codes[g.Name]
		if !ok {
			continue
		}
		idx.insert(g.Fingerprint(), r, g.Name)
	}
	return idx
}

func (idx *Index) insert(fp Fingerprint, r rune, name string) {
	if prev, ok := idx.dropped[fp]; ok {
		if prev != r {
			idx.collisions = append(idx.collisions, Collision{fp, name, prev, r})
			idx.dropped[fp] = r
		}
		return
	} else if prev, ok := idx.entries[fp]; ok && prev != r {
		idx.collisions = append(idx.collisions, Collision{fp, name, prev, r})
		if idx.policy == DropAmbiguous {
			delete(idx.entries, fp)
			idx.dropped[fp] = r
			return
		}
	}
	idx.entries[fp] = r
}

// Lookup returns the character code for a fingerprint.
func (idx *Index) Lookup(fp Fingerprint) (rune, bool) {
	r, ok := idx.entries[fp]
	return r, ok
}

// Len returns the number of fingerprints in the index.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Collisions returns the fingerprints that were seen with different character codes, in the order they were encountered.
func (idx *Index) Collisions() []Collision {
	return idx.collisions
}

// Fingerprints returns all fingerprints in the index in lexicographical order.
func (idx *Index) Fingerprints() []Fingerprint {
	fps := make([]Fingerprint, 0, len(idx.entries))
	for fp := range idx.entries {
		fps = append(fps, fp)
	}
	sort.Slice(fps, func(i, j int) bool { return fps[i].String() < fps[j].String() })
	return fps
}

// Merge returns a new index holding the entries of both indices. Entries of other overwrite those of idx, unless the policy of idx drops ambiguous fingerprints.
func (idx *Index) Merge(other *Index) *Index {
	merged := newIndex(idx.policy)
	for _, fp := range idx.Fingerprints() {
		merged.entries[fp] = idx.entries[fp]
	}
	for fp, r := range idx.dropped {
		merged.dropped[fp] = r
	}
	merged.collisions = append(merged.collisions, idx.collisions...)
	merged.collisions = append(merged.collisions, other.collisions...)
	for _, fp := range other.Fingerprints() {
		merged.insert(fp, other.entries[fp], "")
	}
	return merged
}

////////////////////////////////////////////////////////////////

// WriteTo writes the index as a flat JSON object of fingerprints to character codes.
func (idx *Index) WriteTo(w io.Writer) (int64, error) {
	m := make(map[string]string, len(idx.entries))
	for fp, r := range idx.entries {
		m[fp.String()] = FormatCode(r)
	}
	b, err := json.Marshal(m) // sorts keys
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}

// ReadIndex reads an index written by WriteTo. Character codes may have a 0x prefix.
func ReadIndex(r io.Reader) (*Index, error) {
	m := map[string]string{}
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}
	idx := newIndex(KeepLast)
	for key, code := range m {
		fp, err := ParseFingerprint(key)
		if err != nil {
			return nil, fmt.Errorf("index: %w", err)
		}
		r, err := ParseCode(code)
		if err != nil {
			return nil, fmt.Errorf("index: fingerprint %v: %w", fp, err)
		}
		idx.entries[fp] = r
	}
	return idx, nil
}

// LoadIndex reads an index from a file. Files with the .br extension are Brotli compressed.
func LoadIndex(filename string) (*Index, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if filepath.Ext(filename) == ".br" {
		r = brotli.NewReader(f)
	}
	return ReadIndex(r)
}

// Save writes the index to a file. Files with the .br extension are Brotli compressed.
func (idx *Index) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	if filepath.Ext(filename) == ".br" {
		w := brotli.NewWriterLevel(f, brotli.BestCompression)
		if _, err := idx.WriteTo(w); err != nil {
			f.Close()
			return err
		} else if err := w.Close(); err != nil {
			f.Close()
			return err
		}
	} else if _, err := idx.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
