package syntax

import (
	"strings"

	"github.com/npillmayer/glossa"
)

// Format renders a tree as canonical surface text. The result re-parses to a
// tree equal to n. Format is total over trees produced by the parser.
func Format(n Node) string {
	return strings.Join(formatWords(n), " ")
}

func formatWords(n Node) []string {
	var words []string
	switch x := n.(type) {
	case *Phrase:
		if x.Possessor != nil {
			words = append(words, reattach(x.Possessor, glossa.Possessive)...)
		}
		for _, m := range x.Modifiers {
			words = append(words, reattach(m, glossa.Adjective)...)
		}
		words = append(words, x.Word.String()+string(glossa.Object))
	case *Clause:
		if x.Subject != nil {
			words = append(words, formatWords(x.Subject)...)
		}
		for _, a := range x.Adverbs {
			words = append(words, reattach(a, glossa.Adverb)...)
		}
		words = append(words, x.Verb.String()+string(glossa.Verb))
		words = append(words, formatWords(x.Object)...)
	}
	return words
}

// reattach formats a modifying phrase and swaps the object suffix of its last
// word for suffix c.
func reattach(p *Phrase, c glossa.Case) []string {
	words := formatWords(p)
	last := len(words) - 1
	words[last] = glossa.Object.Swap(words[last], c)
	return words
}
