package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/glossa/eval"
	"github.com/npillmayer/glossa/scanner"
	"github.com/npillmayer/glossa/syntax"
	"github.com/pterm/pterm"
)

// runScript splits a script into clauses and parses, translates and
// evaluates them in order. With ask set, clauses are evaluated as questions.
// It returns the number of clauses which could not be parsed.
func runScript(script string, parser *syntax.Parser, engine *eval.Engine, ask bool, out io.Writer) (int, error) {
	clauses, err := scanner.Clauses(script)
	if err != nil {
		return 0, err
	}
	failed := 0
	for _, clause := range clauses {
		text := clause.Text()
		tree, err := parser.Parse(text)
		if err != nil {
			fmt.Fprintf(out, "%v %s: %v\n", clause.Span(), text, err)
			failed++
			continue
		}
		fmt.Fprintf(out, "%s\n  %s\n", syntax.Format(tree), syntax.Translate(tree, parser.Dictionary()))
		evaluate := engine.Eval
		if ask {
			evaluate = engine.Ask
		}
		if v, ok := evaluate(tree); ok && !v.IsNull() {
			fmt.Fprintf(out, "  = %s\n", v)
		}
	}
	tracer().Infof("executed %d clause(s)", len(clauses))
	return failed, nil
}

// printTree prints the surface form, translation and structure of a tree.
func printTree(tree syntax.Node, parser *syntax.Parser) {
	pterm.Info.Println(syntax.Format(tree))
	pterm.Info.Println(syntax.Translate(tree, parser.Dictionary()))
	if fp, err := syntax.Fingerprint(tree); err == nil {
		tracer().Debugf("fingerprint %s", fp)
	}
	renderTree(tree, parser)
}

func renderTree(tree syntax.Node, parser *syntax.Parser) {
	var ll pterm.LeveledList
	for _, item := range syntax.Outline(tree, parser.Dictionary()) {
		ll = append(ll, pterm.LeveledListItem{Level: item.Level, Text: item.Text})
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func printValue(v eval.Value, ok bool) {
	if !ok {
		pterm.Error.Println("no value")
		return
	}
	pterm.Info.Println(v.String())
}
