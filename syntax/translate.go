package syntax

import (
	"strings"

	"github.com/npillmayer/glossa/lexicon"
)

// Particles are the connective particles a translation inserts in place of
// case suffixes.
type Particles struct {
	Subject    string
	Object     string
	Adverbial  string
	Possessive string
	Adjectival string
}

// Japanese is the default set of particles.
var Japanese = Particles{
	Subject:    "が",
	Object:     "を",
	Adverbial:  "に",
	Possessive: "の",
	Adjectival: "な",
}

// Translate renders a gloss translation of a tree, using Japanese particles.
// Morphemes missing from dict translate to themselves.
func Translate(n Node, dict *lexicon.Dictionary) string {
	return Japanese.Translate(n, dict)
}

// Translate renders a gloss translation of a tree with particles pt.
// Subjects and adverbials precede the object, the verb comes last.
func (pt Particles) Translate(n Node, dict *lexicon.Dictionary) string {
	var b strings.Builder
	pt.translate(&b, n, dict)
	return b.String()
}

func (pt Particles) translate(b *strings.Builder, n Node, dict *lexicon.Dictionary) {
	switch x := n.(type) {
	case *Phrase:
		if x.Possessor != nil {
			pt.translate(b, x.Possessor, dict)
			b.WriteString(pt.Possessive)
		}
		for _, m := range x.Modifiers {
			pt.translate(b, m, dict)
			b.WriteString(pt.Adjectival)
		}
		b.WriteString(x.Word.Gloss(dict))
	case *Clause:
		if x.Subject != nil {
			pt.translate(b, x.Subject, dict)
			b.WriteString(pt.Subject)
		}
		for _, a := range x.Adverbs {
			pt.translate(b, a, dict)
			b.WriteString(pt.Adverbial)
		}
		pt.translate(b, x.Object, dict)
		b.WriteString(pt.Object)
		b.WriteString(x.Verb.Gloss(dict))
	}
}
