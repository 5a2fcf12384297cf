package eval

import (
	"io"
	"os"
	"sync"

	"github.com/npillmayer/glossa/runtime"
	"github.com/npillmayer/glossa/syntax"
)

// Engine is an evaluator with its own variable store, safe for concurrent
// use. Each top-level evaluation holds the engine's lock.
type Engine struct {
	mu sync.Mutex
	ev *Evaluator
}

// NewEngine creates an engine with an empty variable store. Printed values
// go to out, or to stdout if out is nil.
func NewEngine(out io.Writer) *Engine {
	if out == nil {
		out = os.Stdout
	}
	return &Engine{
		ev: &Evaluator{
			Runtime: runtime.NewRuntimeEnvironment(),
			Out:     out,
		},
	}
}

// Eval evaluates a tree. Copula clauses assign.
func (e *Engine) Eval(node syntax.Node) (Value, bool) {
	return e.evaluate(node, false)
}

// Ask evaluates a tree in interrogative mode. Copula clauses test for
// equality.
func (e *Engine) Ask(node syntax.Node) (Value, bool) {
	return e.evaluate(node, true)
}

func (e *Engine) evaluate(node syntax.Node, interrogative bool) (Value, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ev.Evaluate(node, interrogative)
}

// Define presets a global variable. Globals survive Reset and are shadowed
// by assignments.
func (e *Engine) Define(name string, v Value) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if tag, _ := e.ev.Runtime.Globals().DefineTag(name); tag != nil {
		tag.WithType(v.Type).UData = v
	}
}

// Lookup returns the value of a variable.
func (e *Engine) Lookup(name string) (Value, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	tag := e.ev.Runtime.Lookup(name)
	if tag == nil {
		return Null, false
	}
	v, ok := tag.UData.(Value)
	return v, ok
}

// Variables returns a snapshot of all variables, session variables shadowing
// globals.
func (e *Engine) Variables() map[string]Value {
	e.mu.Lock()
	defer e.mu.Unlock()
	vars := make(map[string]Value)
	collect := func(name string, tag *runtime.Tag) {
		if v, ok := tag.UData.(Value); ok {
			vars[name] = v
		}
	}
	e.ev.Runtime.Globals().Tags().Each(collect)
	e.ev.Runtime.Session().Tags().Each(collect)
	return vars
}

// Reset forgets all assignments.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ev.Runtime.Reset()
}
