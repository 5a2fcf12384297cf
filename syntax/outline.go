package syntax

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/glossa/lexicon"
	"github.com/npillmayer/glossa/morph"
)

// --- Structural fingerprints -----------------------------------------------

// shape mirrors a tree with plain data only, as input for hashing.
type shape struct {
	Kind      string
	Root      []string
	Possessor []shape
	Modifiers []shape // adjectives or adverbs
	Subject   []shape
	Object    []shape
}

func shapeOf(n Node) []shape {
	switch x := n.(type) {
	case *Phrase:
		if x == nil {
			return nil
		}
		s := shape{Kind: "phrase", Root: x.Word.Strings()}
		if x.Possessor != nil {
			s.Possessor = shapeOf(x.Possessor)
		}
		for _, m := range x.Modifiers {
			s.Modifiers = append(s.Modifiers, shapeOf(m)...)
		}
		return []shape{s}
	case *Clause:
		if x == nil {
			return nil
		}
		s := shape{Kind: "clause", Root: x.Verb.Strings()}
		for _, a := range x.Adverbs {
			s.Modifiers = append(s.Modifiers, shapeOf(a)...)
		}
		s.Subject = shapeOf(x.Subject)
		s.Object = shapeOf(x.Object)
		return []shape{s}
	}
	return nil
}

// Fingerprint returns a structural hash of a tree. Structurally equal trees
// have equal fingerprints.
func Fingerprint(n Node) (string, error) {
	return structhash.Hash(shapeOf(n), 1)
}

// --- Outlines --------------------------------------------------------------

// OutlineItem is a line of a tree outline.
type OutlineItem struct {
	Level int
	Text  string
}

// Outline flattens a tree into a leveled list, suitable for tree rendering.
// If dict is non-nil, every root is followed by its gloss.
func Outline(n Node, dict *lexicon.Dictionary) []OutlineItem {
	return outline(nil, n, "", 0, dict)
}

func outline(items []OutlineItem, n Node, role string, level int, dict *lexicon.Dictionary) []OutlineItem {
	label := func(kind string, root morph.Root) string {
		text := kind + " " + rootString(root)
		if role != "" {
			text = role + ": " + text
		}
		if dict != nil {
			text += "  " + root.Gloss(dict)
		}
		return text
	}
	switch x := n.(type) {
	case *Phrase:
		items = append(items, OutlineItem{level, label("phrase", x.Word)})
		if x.Possessor != nil {
			items = outline(items, x.Possessor, "possessor", level+1, dict)
		}
		for _, m := range x.Modifiers {
			items = outline(items, m, "adjective", level+1, dict)
		}
	case *Clause:
		items = append(items, OutlineItem{level, label("clause", x.Verb)})
		for _, a := range x.Adverbs {
			items = outline(items, a, "adverb", level+1, dict)
		}
		if x.Subject != nil {
			items = outline(items, x.Subject, "subject", level+1, dict)
		}
		items = outline(items, x.Object, "object", level+1, dict)
	}
	return items
}

// Dump returns an indented, multi-line rendering of a tree.
func Dump(n Node, dict *lexicon.Dictionary) string {
	var b strings.Builder
	for _, item := range Outline(n, dict) {
		fmt.Fprintf(&b, "%s%s\n", strings.Repeat("  ", item.Level), item.Text)
	}
	return b.String()
}
