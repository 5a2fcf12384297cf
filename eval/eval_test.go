package eval

import (
	"bytes"
	"sync"
	"testing"

	"github.com/npillmayer/glossa/runtime"
	"github.com/npillmayer/glossa/syntax"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func parse(t *testing.T, input string) syntax.Node {
	node, err := syntax.Parse(input)
	if err != nil {
		t.Fatalf("cannot parse %q", input)
	}
	return node
}

func TestAssignArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glossa.eval")
	defer teardown()
	//
	rt := runtime.NewRuntimeEnvironment()
	v, ok := Evaluate(parse(t, "Fugoo estu 1o a*dnamu 2o kaknamu 3o"), rt, false)
	if !ok || !v.Equal(Number(7)) {
		t.Errorf("expected 7, got %v", v)
	}
	tag := rt.Lookup("Fugo")
	if tag == nil || !tag.UData.(Value).Equal(Number(7)) {
		t.Errorf("expected Fugo to be assigned 7, got %v", tag)
	}
	if tag.Typ != runtime.FloatType {
		t.Errorf("expected Fugo to be numeric")
	}
}

func TestArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glossa.eval")
	defer teardown()
	//
	e := NewEngine(nil)
	for _, input := range []struct {
		text   string
		result float64
	}{
		{"1o a*dnamu 2o", 3},
		{"5o pulnamu 2o", 3},
		{"2o kaknamu 3.5o", 7},
		{"10o divnamu 4o", 2.5},
		{"1o nama*du 2o", 3},
		{"10o divnamu 5o pulnamu 3o", 5},
	} {
		v, ok := e.Eval(parse(t, input.text))
		if !ok || !v.Equal(Number(input.result)) {
			t.Errorf("expected %q to evaluate to %g, got %v", input.text, input.result, v)
		}
	}
}

func TestInterrogative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glossa.eval")
	defer teardown()
	//
	e := NewEngine(nil)
	if v, ok := e.Ask(parse(t, "1o estu 1o")); !ok || !v.Equal(Bool(true)) {
		t.Errorf("expected 1 = 1 to be true, got %v", v)
	}
	if v, ok := e.Ask(parse(t, "1o estu 2o")); !ok || !v.Equal(Bool(false)) {
		t.Errorf("expected 1 = 2 to be false, got %v", v)
	}
	if v, ok := e.Eval(parse(t, "c^u Fugoo estu 2o")); !ok || !v.Equal(Bool(false)) {
		t.Errorf("expected question to compare, got %v", v)
	}
	if _, ok := e.Lookup("Fugo"); ok {
		t.Errorf("expected question not to assign")
	}
	if _, ok := e.Eval(parse(t, "1o estu 2o")); ok {
		t.Errorf("expected assignment to a number to have no value")
	}
}

func TestVariables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glossa.eval")
	defer teardown()
	//
	e := NewEngine(nil)
	e.Eval(parse(t, "Fugoo estu 1o a*dnamu 2o kaknamu 3o"))
	v, ok := e.Eval(parse(t, "10o divnamu 5o pulnamu ge*tu Fugoo"))
	if !ok || !v.Equal(Number(-5)) {
		t.Errorf("expected -5, got %v", v)
	}
	if _, ok := e.Eval(parse(t, "ge*tu Hogeo")); ok {
		t.Errorf("expected undefined variable to have no value")
	}
	e.Define("Pai", Number(3))
	if v, ok := e.Eval(parse(t, "ge*tu Paio")); !ok || !v.Equal(Number(3)) {
		t.Errorf("expected global Pai = 3, got %v", v)
	}
	if vars := e.Variables(); len(vars) != 2 {
		t.Errorf("expected 2 variables, have %v", vars)
	}
	e.Reset()
	if _, ok := e.Lookup("Fugo"); ok {
		t.Errorf("expected Fugo to be gone after reset")
	}
	if _, ok := e.Lookup("Pai"); !ok {
		t.Errorf("expected global Pai to survive reset")
	}
}

func TestStringsAndConditions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glossa.eval")
	defer teardown()
	//
	e := NewEngine(nil)
	if v, ok := e.Eval(parse(t, "Hogeo cara-la*du Fugao")); !ok || !v.Equal(String("HogeFuga")) {
		t.Errorf("expected concatenation, got %v", v)
	}
	if v, ok := e.Eval(parse(t, "3o ifu yeso")); !ok || !v.Equal(Number(3)) {
		t.Errorf("expected 3 if yes, got %v", v)
	}
	if v, ok := e.Eval(parse(t, "3o ifu neo")); !ok || !v.IsNull() {
		t.Errorf("expected null if ne, got %v", v)
	}
	if _, ok := e.Eval(parse(t, "3o ifu 1o")); ok {
		t.Errorf("expected non-boolean condition to have no value")
	}
}

func TestPrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glossa.eval")
	defer teardown()
	//
	var out bytes.Buffer
	e := NewEngine(&out)
	v, ok := e.Eval(parse(t, "lu*ksciru Hogeo"))
	if !ok || !v.IsNull() {
		t.Errorf("expected print to yield null, got %v", v)
	}
	e.Eval(parse(t, "lu*ksciru 1o a*dnamu 2o"))
	// non-string values print as well
	if v, ok := e.Eval(parse(t, "lu*ksciru yeso")); !ok || !v.IsNull() {
		t.Errorf("expected printing a boolean to yield null, got %v", v)
	}
	if out.String() != "Hoge\n3\nyes\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestNoValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glossa.eval")
	defer teardown()
	//
	e := NewEngine(nil)
	for _, input := range []string{
		"mio lavu yuo",        // unknown verb
		"gu*de 1o a*dnamu 2o", // adverbial
		"mii 1o a*dnamu 2o",   // possessor
		"Hogeo a*dnamu 2o",    // not a number
		"Hogeo cara-la*du 2o", // not a string
		"prosactu lango",      // unknown impersonal verb
	} {
		if v, ok := e.Eval(parse(t, input)); ok {
			t.Errorf("expected %q to have no value, got %v", input, v)
		}
	}
}

func TestLiterals(t *testing.T) {
	for _, input := range []struct {
		word  string
		value Value
	}{
		{"12", Number(12)},
		{"yes", Bool(true)},
		{"ne", Bool(false)},
		{"Fugo", String("Fugo")},
		{"mi", String("mi")},
	} {
		if v := literal(input.word); !v.Equal(input.value) {
			t.Errorf("expected literal %q to be %v, got %v", input.word, input.value, v)
		}
	}
	if Number(7).String() != "7" || Bool(false).String() != "ne" || Null.String() != "null" {
		t.Errorf("unexpected value rendering")
	}
}

func TestConcurrentEngine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glossa.eval")
	defer teardown()
	//
	e := NewEngine(nil)
	tree := parse(t, "Fugoo estu 1o a*dnamu 2o")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.Eval(tree)
			e.Variables()
		}()
	}
	wg.Wait()
	if v, ok := e.Lookup("Fugo"); !ok || !v.Equal(Number(3)) {
		t.Errorf("expected Fugo = 3, got %v", v)
	}
}
