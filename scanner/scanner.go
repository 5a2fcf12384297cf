package scanner

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/glossa"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types produced by the scanner.
const (
	EOF       glossa.TokType = -1
	Word      glossa.TokType = 1
	Separator glossa.TokType = 2
)

// Scanner is a lexmachine based scanner for scripts. A Scanner may be used
// concurrently once created.
type Scanner struct {
	lexer *lexmachine.Lexer
}

// New creates a scanner. It returns an error if compiling the DFA failed.
func New() (*Scanner, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`#[^\n]*`), Skip)
	lexer.Add([]byte(`;`), MakeToken(Separator))
	lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	lexer.Add([]byte(`[^ \t\n\r;#]+`), MakeToken(Word))
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return &Scanner{lexer: lexer}, nil
}

var defaultScanner struct {
	once    sync.Once
	scanner *Scanner
	err     error
}

// Default returns a shared scanner instance.
func Default() (*Scanner, error) {
	defaultScanner.once.Do(func() {
		defaultScanner.scanner, defaultScanner.err = New()
	})
	return defaultScanner.scanner, defaultScanner.err
}

// Tokens scans text and returns all words and separators, in order.
func (s *Scanner) Tokens(text string) ([]glossa.Token, error) {
	lms, err := s.lexer.Scanner([]byte(text))
	if err != nil {
		return nil, err
	}
	var tokens []glossa.Token
	for tok, err, eof := lms.Next(); !eof; tok, err, eof = lms.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return tokens, fmt.Errorf("cannot scan input at offset %d: %w", ui.FailTC, err)
			}
			return tokens, err
		}
		token := tok.(*lexmachine.Token)
		from := uint64(token.TC)
		tokens = append(tokens, MakeDefaultToken(
			glossa.TokType(token.Type),
			string(token.Lexeme),
			glossa.Span{from, from + uint64(len(token.Lexeme))},
		))
	}
	tracer().Debugf("scanned %d tokens", len(tokens))
	return tokens, nil
}

// Clauses scans text and groups its words into clauses. Empty clauses are
// dropped.
func (s *Scanner) Clauses(text string) ([]Clause, error) {
	tokens, err := s.Tokens(text)
	if err != nil {
		return nil, err
	}
	var clauses []Clause
	var words []glossa.Token
	for _, token := range tokens {
		if token.TokType() == Separator {
			if len(words) > 0 {
				clauses = append(clauses, Clause{Words: words})
			}
			words = nil
			continue
		}
		words = append(words, token)
	}
	if len(words) > 0 {
		clauses = append(clauses, Clause{Words: words})
	}
	return clauses, nil
}

// Clauses splits text into clauses, using the default scanner.
func Clauses(text string) ([]Clause, error) {
	s, err := Default()
	if err != nil {
		return nil, err
	}
	return s.Clauses(text)
}

// Clause is a non-empty sequence of words, delimited by separators.
type Clause struct {
	Words []glossa.Token
}

// Text returns the words of a clause, separated by single spaces.
func (c Clause) Text() string {
	lexemes := make([]string, len(c.Words))
	for i, w := range c.Words {
		lexemes[i] = w.Lexeme()
	}
	return strings.Join(lexemes, " ")
}

// Span returns the input range covered by a clause.
func (c Clause) Span() glossa.Span {
	var span glossa.Span
	for _, w := range c.Words {
		span = span.Extend(w.Span())
	}
	return span
}

// --- lexmachine actions ----------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(typ glossa.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type.
type DefaultToken struct {
	kind   glossa.TokType
	lexeme string
	span   glossa.Span
}

var _ glossa.Token = DefaultToken{}

func MakeDefaultToken(typ glossa.TokType, lexeme string, span glossa.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() glossa.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() glossa.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%q%v", t.lexeme, t.span)
}
