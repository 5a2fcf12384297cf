package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/glossa/morph"
	"github.com/npillmayer/glossa/runtime"
	"github.com/npillmayer/glossa/syntax"
)

// Verb morphemes the evaluator knows about.
const (
	numeral  morph.Morpheme = "nam"
	copula   morph.Morpheme = "est"
	cond     morph.Morpheme = "if"
	get      morph.Morpheme = "ge*t"
	question morph.Morpheme = "c^"
	look     morph.Morpheme = "lu*k"
	cause    morph.Morpheme = "scir"
)

var arithmetic = map[morph.Morpheme]func(x, y float64) float64{
	"a*d": func(x, y float64) float64 { return x + y },
	"pul": func(x, y float64) float64 { return x - y },
	"kak": func(x, y float64) float64 { return x * y },
	"div": func(x, y float64) float64 { return x / y },
}

var concatenation = morph.Root{"car", "a-l", "a*d"}

// Evaluator evaluates trees against a runtime environment. It is not safe
// for concurrent use; see Engine.
type Evaluator struct {
	Runtime *runtime.Runtime
	Out     io.Writer // receives printed values
}

// Evaluate evaluates a tree against the variables of rt, printing to stdout.
// interrogative selects equality instead of assignment for the copula.
// The second return value is false if node has no value.
func Evaluate(node syntax.Node, rt *runtime.Runtime, interrogative bool) (Value, bool) {
	ev := &Evaluator{Runtime: rt, Out: os.Stdout}
	return ev.Evaluate(node, interrogative)
}

// Evaluate evaluates a tree. The second return value is false if node has
// no value.
func (ev *Evaluator) Evaluate(node syntax.Node, interrogative bool) (Value, bool) {
	v, ok := ev.eval(node, interrogative)
	if !ok {
		tracer().Debugf("no value for %v", node)
	}
	return v, ok
}

func (ev *Evaluator) eval(node syntax.Node, ask bool) (Value, bool) {
	switch n := node.(type) {
	case *syntax.Phrase:
		if n == nil || n.Possessor != nil {
			return Null, false
		}
		return literal(n.Word.String()), true
	case *syntax.Clause:
		if n == nil || len(n.Adverbs) > 0 {
			return Null, false
		}
		if n.Subject != nil {
			return ev.binary(n, ask)
		}
		return ev.unary(n, ask)
	}
	return Null, false
}

func (ev *Evaluator) binary(c *syntax.Clause, ask bool) (Value, bool) {
	verb := c.Verb
	switch {
	case arithmeticOp(verb) != nil:
		op := arithmeticOp(verb)
		x, y, ok := ev.operands(c, ask)
		if !ok {
			return Null, false
		}
		a, ok1 := x.AsNumber()
		b, ok2 := y.AsNumber()
		if !ok1 || !ok2 {
			return Null, false
		}
		return Number(op(a, b)), true
	case verb.Equal(concatenation):
		x, y, ok := ev.operands(c, ask)
		if !ok {
			return Null, false
		}
		a, ok1 := x.AsString()
		b, ok2 := y.AsString()
		if !ok1 || !ok2 {
			return Null, false
		}
		return String(a + b), true
	case verb.First() == copula:
		x, y, ok := ev.operands(c, ask)
		if !ok {
			return Null, false
		}
		if ask {
			return Bool(x.Equal(y)), true
		}
		name, ok := x.AsString()
		if !ok {
			return Null, false
		}
		ev.Runtime.Assign(name, y.Type, y)
		return y, true
	case verb.Last() == cond:
		test, ok := ev.eval(c.Object, ask)
		if !ok {
			return Null, false
		}
		b, ok := test.AsBool()
		if !ok {
			return Null, false
		}
		if !b {
			return Null, true
		}
		return ev.eval(c.Subject, ask)
	}
	tracer().Debugf("unknown binary verb %v", verb)
	return Null, false
}

func (ev *Evaluator) unary(c *syntax.Clause, ask bool) (Value, bool) {
	verb := c.Verb
	switch {
	case verb.First() == get:
		v, ok := ev.eval(c.Object, ask)
		if !ok {
			return Null, false
		}
		name, ok := v.AsString()
		if !ok {
			return Null, false
		}
		tag := ev.Runtime.Lookup(name)
		if tag == nil {
			tracer().Debugf("variable %q is undefined", name)
			return Null, false
		}
		value, ok := tag.UData.(Value)
		return value, ok
	case verb.First() == question:
		return ev.eval(c.Object, true)
	case verb.First() == look && verb.Last() == cause:
		v, ok := ev.eval(c.Object, ask)
		if !ok {
			return Null, false
		}
		out := ev.Out
		if out == nil {
			out = os.Stdout
		}
		fmt.Fprintln(out, v.String())
		return Null, true
	}
	tracer().Debugf("unknown unary verb %v", verb)
	return Null, false
}

// operands evaluates subject and object, in this order.
func (ev *Evaluator) operands(c *syntax.Clause, ask bool) (Value, Value, bool) {
	x, ok := ev.eval(c.Subject, ask)
	if !ok {
		return Null, Null, false
	}
	y, ok := ev.eval(c.Object, ask)
	if !ok {
		return Null, Null, false
	}
	return x, y, true
}

// arithmeticOp returns the operation of a verb built from 'nam' and an
// arithmetic morpheme, in either order.
func arithmeticOp(verb morph.Root) func(x, y float64) float64 {
	if len(verb) != 2 {
		return nil
	}
	switch {
	case verb.At(0) == numeral:
		return arithmetic[verb.At(1)]
	case verb.At(1) == numeral:
		return arithmetic[verb.At(0)]
	}
	return nil
}
