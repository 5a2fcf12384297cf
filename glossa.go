package glossa

import (
	"fmt"
	"strings"
)

// --- Case suffixes ---------------------------------------------------------

// Case is a single-character case suffix, marking the grammatical role of a
// word. The suffix alphabet is fixed language-wide.
type Case rune

// The case suffix alphabet.
const (
	Object     Case = 'o' // object / bare noun
	Verb       Case = 'u' // verb
	Adjective  Case = 'a' // modifies a noun
	Adverb     Case = 'e' // modifies a verb
	Possessive Case = 'i' // possessor of a noun
)

var caseNames = map[Case]string{
	Object:     "object",
	Verb:       "verb",
	Adjective:  "adjective",
	Adverb:     "adverb",
	Possessive: "possessive",
}

func (c Case) String() string {
	if n, ok := caseNames[c]; ok {
		return n
	}
	return fmt.Sprintf("<case %q>", rune(c))
}

// Marks is a predicate: does word end in suffix c?
// Dispatch is by the final character only.
func (c Case) Marks(word string) bool {
	return strings.HasSuffix(word, string(c))
}

// Strip removes suffix c from word. If word does not carry c, Strip returns
// word unchanged and false.
func (c Case) Strip(word string) (string, bool) {
	if !c.Marks(word) {
		return word, false
	}
	return strings.TrimSuffix(word, string(c)), true
}

// Swap replaces suffix c of word with suffix to. Words not carrying c are
// returned unchanged.
func (c Case) Swap(word string, to Case) string {
	if stem, ok := c.Strip(word); ok {
		return stem + string(to)
	}
	return word
}

// CaseOf returns the case suffix of word, if any.
func CaseOf(word string) (Case, bool) {
	for _, c := range []Case{Object, Verb, Adjective, Adverb, Possessive} {
		if c.Marks(word) {
			return c, true
		}
	}
	return 0, false
}

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Scanners define their own constants.
type TokType int

// Tokens represent input tokens as produced by a scanner. An example would
// be a word of a script:
//
//    TokType = Word        // identifier for this kind of tokens
//    Lexeme  = "prosactu"  // lexeme how it appeared in the input stream
//    Span    = 4…12        // occured from position 4 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input run. A span denotes
// a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
