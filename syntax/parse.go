package syntax

import (
	"errors"
	"strings"

	"github.com/npillmayer/glossa"
	"github.com/npillmayer/glossa/lexicon"
	"github.com/npillmayer/glossa/morph"
)

// ErrNoParse is returned for every input which cannot be parsed. No further
// diagnostics are available.
var ErrNoParse = errors.New("no parse")

// DefaultMaxTokens is the default limit on the number of words of a single
// parse. Use WithMaxTokens to change it.
const DefaultMaxTokens = 256

// Parser is a parser for sentences of the language. A Parser carries no
// mutable state and may be used concurrently.
type Parser struct {
	dict      *lexicon.Dictionary
	maxTokens int
}

// Option configures a parser.
type Option func(p *Parser)

// WithDictionary sets the dictionary used for segmenting words.
func WithDictionary(dict *lexicon.Dictionary) Option {
	return func(p *Parser) {
		if dict != nil {
			p.dict = dict
		}
	}
}

// WithMaxTokens sets the maximum number of words of an input.
func WithMaxTokens(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxTokens = n
		}
	}
}

// NewParser creates a parser. Without options it uses the built-in dictionary.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		dict:      lexicon.Default(),
		maxTokens: DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Dictionary returns the dictionary of a parser.
func (p *Parser) Dictionary() *lexicon.Dictionary {
	return p.dict
}

// Parse parses a single clause with the built-in dictionary.
func Parse(text string) (Node, error) {
	return NewParser().Parse(text)
}

// Parse parses text, which has to be a single clause without clause-separating
// punctuation. It returns either a tree or ErrNoParse.
func (p *Parser) Parse(text string) (Node, error) {
	tokens := strings.Fields(text)
	if len(tokens) > p.maxTokens {
		tracer().Infof("input of %d words exceeds limit of %d", len(tokens), p.maxTokens)
		return nil, ErrNoParse
	}
	node, ok := p.parse(tokens)
	if !ok {
		tracer().Debugf("no parse for %q", text)
		return nil, ErrNoParse
	}
	tracer().Debugf("parsed %q as %v", text, node)
	return node, nil
}

// parse dispatches on the whole sequence of words: a verb-suffixed word
// anywhere makes it a clause, otherwise an object-suffixed word makes it a
// phrase.
func (p *Parser) parse(tokens []string) (Node, bool) {
	switch {
	case len(tokens) == 0:
		return nil, false
	case len(tokens) == 1:
		stem, ok := glossa.Object.Strip(tokens[0])
		if !ok {
			return nil, false
		}
		root, ok := morph.Segment(p.dict, stem)
		if !ok {
			return nil, false
		}
		return &Phrase{Word: root}, true
	case anyMarked(tokens, glossa.Verb):
		return p.parseClause(tokens)
	case anyMarked(tokens, glossa.Object):
		return p.parsePhrase(tokens)
	}
	tracer().Debugf("no verb or object in %v", tokens)
	return nil, false
}

// parseClause scans up to the first verb-suffixed word. Words before it form
// the subject, adverbs and their modifying words; words after it form the
// object.
func (p *Parser) parseClause(tokens []string) (Node, bool) {
	clause := &Clause{}
	var subject, pending []string
	seenObject := false
	for i, token := range tokens {
		c, _ := glossa.CaseOf(token)
		switch c {
		case glossa.Verb:
			if len(pending) > 0 {
				tracer().Debugf("ignoring words %v before verb %q", pending, token)
			}
			stem, _ := glossa.Verb.Strip(token)
			root, ok := morph.Segment(p.dict, stem)
			if !ok {
				return nil, false
			}
			clause.Verb = root
			if len(subject) > 0 {
				if clause.Subject, ok = p.parse(subject); !ok {
					return nil, false
				}
			}
			if clause.Object, ok = p.parse(tokens[i+1:]); !ok {
				return nil, false
			}
			return clause, true
		case glossa.Adverb:
			adverb, ok := p.parseModifier(pending, token, glossa.Adverb)
			if !ok {
				return nil, false
			}
			clause.Adverbs = append(clause.Adverbs, adverb)
			pending = nil
		case glossa.Object:
			subject = append(subject, token)
			seenObject = true
		default:
			if seenObject {
				pending = append(pending, token)
			} else {
				subject = append(subject, token)
			}
		}
	}
	return nil, false
}

// parsePhrase first consumes a leading possessor, then collects adjectives
// up to the head noun, which is the first object-suffixed word.
func (p *Parser) parsePhrase(tokens []string) (Node, bool) {
	phrase := &Phrase{}
	start := 0
	for i, token := range tokens {
		if glossa.Object.Marks(token) {
			break
		}
		if glossa.Possessive.Marks(token) {
			possessor, ok := p.parseModifier(tokens[:i], token, glossa.Possessive)
			if !ok {
				return nil, false
			}
			phrase.Possessor = possessor
			start = i + 1
			break
		}
	}
	var pending []string
	for i := start; i < len(tokens); i++ {
		token := tokens[i]
		c, _ := glossa.CaseOf(token)
		switch c {
		case glossa.Object:
			if len(pending) > 0 {
				tracer().Debugf("ignoring words %v before head %q", pending, token)
			}
			if i < len(tokens)-1 {
				tracer().Debugf("ignoring words %v after head %q", tokens[i+1:], token)
			}
			stem, _ := glossa.Object.Strip(token)
			root, ok := morph.Segment(p.dict, stem)
			if !ok {
				return nil, false
			}
			phrase.Word = root
			return phrase, true
		case glossa.Adjective:
			adjective, ok := p.parseModifier(pending, token, glossa.Adjective)
			if !ok {
				return nil, false
			}
			phrase.Modifiers = append(phrase.Modifiers, adjective)
			pending = nil
		default:
			pending = append(pending, token)
		}
	}
	return nil, false
}

// parseModifier parses a run of words, closed by a word with case suffix c,
// as a phrase. The closing word's suffix is replaced by the object suffix.
func (p *Parser) parseModifier(run []string, closing string, c glossa.Case) (*Phrase, bool) {
	words := make([]string, 0, len(run)+1)
	words = append(words, run...)
	words = append(words, c.Swap(closing, glossa.Object))
	node, ok := p.parse(words)
	if !ok {
		return nil, false
	}
	phrase, ok := node.(*Phrase)
	return phrase, ok
}

func anyMarked(tokens []string, c glossa.Case) bool {
	for _, t := range tokens {
		if c.Marks(t) {
			return true
		}
	}
	return false
}
