package lexicon

import (
	"sync"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Dictionary is an immutable mapping from morpheme to gloss.
type Dictionary struct {
	glosses map[string]string
	keys    *treeset.Set // ordered morpheme set
	maxLen  int          // length of the longest morpheme, in runes
}

// New creates a dictionary from a list of morpheme/gloss pairs.
// Later duplicates overwrite earlier ones.
func New(entries []Entry) *Dictionary {
	d := &Dictionary{
		glosses: make(map[string]string, len(entries)),
		keys:    treeset.NewWith(utils.StringComparator),
	}
	for _, e := range entries {
		if e.Morpheme == "" {
			continue
		}
		d.glosses[e.Morpheme] = e.Gloss
		d.keys.Add(e.Morpheme)
		if n := utf8.RuneCountInString(e.Morpheme); n > d.maxLen {
			d.maxLen = n
		}
	}
	tracer().Debugf("dictionary with %d morphemes", d.keys.Size())
	return d
}

// Entry is a single dictionary entry.
type Entry struct {
	Morpheme string
	Gloss    string
}

var defaultDict *Dictionary
var initOnce sync.Once

// Default returns the built-in dictionary of the language.
func Default() *Dictionary {
	initOnce.Do(func() {
		defaultDict = New(table)
	})
	return defaultDict
}

// Has is a predicate: is m a known morpheme?
func (d *Dictionary) Has(m string) bool {
	_, ok := d.glosses[m]
	return ok
}

// Lookup returns the gloss of morpheme m. Unknown morphemes are their own
// gloss.
func (d *Dictionary) Lookup(m string) string {
	if g, ok := d.glosses[m]; ok {
		return g
	}
	return m
}

// Size counts the morphemes in the dictionary.
func (d *Dictionary) Size() int {
	return len(d.glosses)
}

// MaxLen returns the rune length of the longest morpheme.
func (d *Dictionary) MaxLen() int {
	return d.maxLen
}

// Morphemes returns all morphemes in lexical order.
func (d *Dictionary) Morphemes() []string {
	morphemes := make([]string, 0, d.keys.Size())
	it := d.keys.Iterator()
	for it.Next() {
		morphemes = append(morphemes, it.Value().(string))
	}
	return morphemes
}

// Each iterates over the dictionary in lexical order of morphemes, executing
// a mapper function.
func (d *Dictionary) Each(mapper func(morpheme, gloss string)) {
	for _, m := range d.Morphemes() {
		mapper(m, d.glosses[m])
	}
}
