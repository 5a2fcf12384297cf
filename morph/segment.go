package morph

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/glossa/lexicon"
)

// Morpheme is a string drawn from the dictionary's key set.
type Morpheme string

// Root is the ordered, non-empty sequence of morphemes segmented from one
// suffix-stripped word. Concatenating its morphemes reproduces the word.
type Root []Morpheme

// Segment splits word into a root. It fails for the empty word and for words
// which cannot be fully covered by a chain of dictionary morphemes.
func Segment(dict *lexicon.Dictionary, word string) (Root, bool) {
	if word == "" {
		return nil, false
	}
	if IsLiteral(word) {
		return Root{Morpheme(word)}, true
	}
	runes := []rune(word)
	var root Root
	start := 0
	for end := 1; end <= len(runes); end++ {
		if end-start > dict.MaxLen() { // no morpheme can match any more
			break
		}
		if candidate := string(runes[start:end]); dict.Has(candidate) {
			root = append(root, Morpheme(candidate))
			start = end
		}
	}
	if start < len(runes) {
		tracer().Debugf("cannot segment %q: residue %q", word, string(runes[start:]))
		return nil, false
	}
	tracer().P("word", word).Debugf("segmented into %v", root)
	return root, true
}

// IsLiteral is a predicate: is word a numeric literal or a proper noun?
// Literals bypass segmentation.
func IsLiteral(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	if unicode.IsUpper(r) {
		return true
	}
	_, err := strconv.ParseFloat(word, 64)
	return err == nil
}

// String returns the surface form of a root, i.e. the concatenation of its
// morphemes.
func (r Root) String() string {
	var b strings.Builder
	for _, m := range r {
		b.WriteString(string(m))
	}
	return b.String()
}

// Gloss returns the concatenated glosses of a root's morphemes.
func (r Root) Gloss(dict *lexicon.Dictionary) string {
	var b strings.Builder
	for _, m := range r {
		b.WriteString(dict.Lookup(string(m)))
	}
	return b.String()
}

// First returns the first morpheme of r, or "" for an empty root.
func (r Root) First() Morpheme {
	if len(r) == 0 {
		return ""
	}
	return r[0]
}

// Last returns the last morpheme of r, or "" for an empty root.
func (r Root) Last() Morpheme {
	if len(r) == 0 {
		return ""
	}
	return r[len(r)-1]
}

// At returns the morpheme at position i, or "" if i is out of range.
func (r Root) At(i int) Morpheme {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Equal is a predicate: are r and other the same morpheme sequence?
func (r Root) Equal(other Root) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}

// Strings returns the morphemes of r as plain strings.
func (r Root) Strings() []string {
	s := make([]string, len(r))
	for i, m := range r {
		s[i] = string(m)
	}
	return s
}
