package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/glossa/eval"
	"github.com/npillmayer/glossa/syntax"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	parser *syntax.Parser
	engine *eval.Engine
	repl   *readline.Instance
	last   syntax.Node // last tree successfully parsed
}

func execREPL(conf *Config, parser *syntax.Parser, engine *eval.Engine) int {
	repl, err := readline.New(conf.Prompt)
	if err != nil {
		tracer().Errorf(err.Error())
		return 3
	}
	defer repl.Close()
	intp := &Intp{
		parser: parser,
		engine: engine,
		repl:   repl,
	}
	pterm.Info.Println("Welcome to glossa") // colored welcome message
	tracer().Infof("Quit with <ctrl>D or :quit")
	intp.REPL()
	return 0
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Execute executes a command, if line starts with ':', or else parses and
// evaluates each clause of line.
func (intp *Intp) Execute(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		return false, intp.Eval(line, false)
	}
	args := strings.Fields(line)
	switch args[0] {
	case ":quit", ":q":
		return true, nil
	case ":ask":
		return false, intp.Eval(strings.TrimSpace(strings.TrimPrefix(line, ":ask")), true)
	case ":tree":
		if intp.last == nil {
			return false, fmt.Errorf("nothing parsed yet")
		}
		renderTree(intp.last, intp.parser)
	case ":dump":
		if intp.last == nil {
			return false, fmt.Errorf("nothing parsed yet")
		}
		pterm.Println(syntax.Dump(intp.last, nil))
	case ":vars":
		intp.printVariables()
	case ":dict":
		intp.printDictionary(args[1:])
	case ":reset":
		intp.engine.Reset()
		pterm.Info.Println("session variables cleared")
	case ":help":
		pterm.Println(replHelp)
	default:
		return false, fmt.Errorf("unknown command %s", args[0])
	}
	return false, nil
}

const replHelp = `<clause>; <clause> …  parse, translate and evaluate
:ask <clause>         evaluate as a question
:tree                 show the last tree
:dump                 dump the last tree
:vars                 list variables
:dict [prefix]        list dictionary morphemes
:reset                clear session variables
:quit                 leave`

// Eval parses and evaluates line, remembering the tree. A line holding
// several clauses is executed as a script.
func (intp *Intp) Eval(line string, ask bool) error {
	if strings.Contains(line, ";") {
		var b strings.Builder
		failed, err := runScript(line, intp.parser, intp.engine, ask, &b)
		pterm.Print(b.String())
		if err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d clause(s) could not be parsed", failed)
		}
		return nil
	}
	tree, err := intp.parser.Parse(line)
	if err != nil {
		return fmt.Errorf("%v: %q", err, line)
	}
	intp.last = tree
	printTree(tree, intp.parser)
	var v eval.Value
	var ok bool
	if ask {
		v, ok = intp.engine.Ask(tree)
	} else {
		v, ok = intp.engine.Eval(tree)
	}
	printValue(v, ok)
	return nil
}

func (intp *Intp) printVariables() {
	vars := intp.engine.Variables()
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	data := pterm.TableData{{"variable", "value"}}
	for _, name := range names {
		data = append(data, []string{name, vars[name].String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) printDictionary(prefixes []string) {
	dict := intp.parser.Dictionary()
	data := pterm.TableData{{"morpheme", "gloss"}}
	dict.Each(func(m, gloss string) {
		if len(prefixes) == 0 || strings.HasPrefix(m, prefixes[0]) {
			data = append(data, []string{m, gloss})
		}
	})
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Info.Println(fmt.Sprintf("%d of %d morphemes", len(data)-1, dict.Size()))
}
