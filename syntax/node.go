package syntax

import (
	"fmt"
	"strings"

	"github.com/npillmayer/glossa/morph"
)

// Node is a node of a parse tree. It is either a *Phrase or a *Clause.
type Node interface {
	fmt.Stringer
	isNode()
}

// Phrase is a noun-like node: a head word with an optional possessor and an
// ordered chain of adjectival modifiers.
type Phrase struct {
	Word      morph.Root
	Possessor *Phrase   // may be nil
	Modifiers []*Phrase // adjectives, in surface order
}

// Clause is a verb-like node. Subject may be nil, denoting an impersonal
// reading. Object is always present.
type Clause struct {
	Verb    morph.Root
	Adverbs []*Phrase // in surface order
	Subject Node      // *Phrase or *Clause, may be nil
	Object  Node      // *Phrase or *Clause
}

func (p *Phrase) isNode() {}
func (c *Clause) isNode() {}

var _ Node = (*Phrase)(nil)
var _ Node = (*Clause)(nil)

// String is a debug Stringer for phrases, in Lisp-like notation.
func (p *Phrase) String() string {
	var b strings.Builder
	b.WriteString("(phrase ")
	b.WriteString(rootString(p.Word))
	if p.Possessor != nil {
		b.WriteString(" (poss ")
		b.WriteString(p.Possessor.String())
		b.WriteString(")")
	}
	for _, m := range p.Modifiers {
		b.WriteString(" (adj ")
		b.WriteString(m.String())
		b.WriteString(")")
	}
	b.WriteString(")")
	return b.String()
}

// String is a debug Stringer for clauses, in Lisp-like notation.
func (c *Clause) String() string {
	var b strings.Builder
	b.WriteString("(clause ")
	b.WriteString(rootString(c.Verb))
	for _, a := range c.Adverbs {
		b.WriteString(" (adv ")
		b.WriteString(a.String())
		b.WriteString(")")
	}
	if c.Subject != nil {
		b.WriteString(" (subj ")
		b.WriteString(c.Subject.String())
		b.WriteString(")")
	}
	b.WriteString(" (obj ")
	if c.Object != nil {
		b.WriteString(c.Object.String())
	}
	b.WriteString("))")
	return b.String()
}

func rootString(r morph.Root) string {
	return strings.Join(r.Strings(), "|")
}

// Equal is a predicate: are a and b structurally equal trees?
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case *Phrase:
		y, ok := b.(*Phrase)
		return ok && equalPhrases(x, y)
	case *Clause:
		y, ok := b.(*Clause)
		if !ok || x == nil || y == nil {
			return ok && x == y
		}
		if !x.Verb.Equal(y.Verb) || len(x.Adverbs) != len(y.Adverbs) {
			return false
		}
		for i := range x.Adverbs {
			if !equalPhrases(x.Adverbs[i], y.Adverbs[i]) {
				return false
			}
		}
		return Equal(x.Subject, y.Subject) && Equal(x.Object, y.Object)
	}
	return false
}

func equalPhrases(x, y *Phrase) bool {
	if x == nil || y == nil {
		return x == y
	}
	if !x.Word.Equal(y.Word) || !equalPhrases(x.Possessor, y.Possessor) {
		return false
	}
	if len(x.Modifiers) != len(y.Modifiers) {
		return false
	}
	for i := range x.Modifiers {
		if !equalPhrases(x.Modifiers[i], y.Modifiers[i]) {
			return false
		}
	}
	return true
}
