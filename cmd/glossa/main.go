package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/ComedicChimera/olive"
	"github.com/npillmayer/glossa/eval"
	"github.com/npillmayer/glossa/syntax"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
)

var traceKeys = []string{
	"glossa.cli",
	"glossa.lexicon",
	"glossa.morph",
	"glossa.syntax",
	"glossa.eval",
	"glossa.scanner",
	"glossa.runtime",
}

func main() {
	os.Exit(execute(os.Args))
}

// execute runs the command line and returns the exit code.
func execute(args []string) int {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()

	cli := olive.NewCLI("glossa", "glossa parses, translates and evaluates glossa sentences", true)
	cli.AddStringArg("config", "c", "the path to a TOML config file", false)
	cli.AddSelectorArg("trace", "t", "the trace level", false, []string{"Debug", "Info", "Error"})
	cli.AddStringArg("max-tokens", "m", "the maximum number of words of a clause", false)

	replCmd := cli.AddSubcommand("repl", "start interactive mode", true)
	replCmd.AddStringArg("prompt", "p", "the input prompt", false)

	runCmd := cli.AddSubcommand("run", "execute a script", true)
	runCmd.AddPrimaryArg("file", "the path to the script", true)

	parseCmd := cli.AddSubcommand("parse", "parse a single clause", true)
	parseCmd.AddPrimaryArg("text", "the clause to parse", true)
	parseCmd.AddFlag("eval", "e", "evaluate the clause")
	parseCmd.AddFlag("ask", "a", "evaluate the clause as a question")

	serveCmd := cli.AddSubcommand("serve", "serve a JSON API", true)
	serveCmd.AddStringArg("addr", "l", "the listen address", false)

	result, err := olive.ParseArgs(cli, args)
	if err != nil {
		pterm.Error.Println(fmt.Sprintf("usage: %v", err))
		return 2
	}
	conf, err := setup(result)
	if err != nil {
		pterm.Error.Println(err.Error())
		return 2
	}
	subcmdName, subResult, _ := result.Subcommand()
	if subResult != nil {
		if err := conf.override(subResult.Arguments); err != nil {
			pterm.Error.Println(err.Error())
			return 2
		}
	}
	parser := conf.newParser()
	engine := eval.NewEngine(os.Stdout)
	conf.define(engine)

	switch subcmdName {
	case "repl":
		return execREPL(conf, parser, engine)
	case "run":
		filename, _ := subResult.PrimaryArg()
		return execRun(filename, parser, engine)
	case "parse":
		text, _ := subResult.PrimaryArg()
		return execParse(text, parser, engine, subResult.HasFlag("eval"), subResult.HasFlag("ask"))
	case "serve":
		return execServe(conf, parser, engine)
	}
	pterm.Error.Println("no subcommand given; try 'glossa --help'")
	return 2
}

// setup reads the configuration and initializes tracing.
func setup(result *olive.ArgParseResult) (*Config, error) {
	path := ""
	if v, ok := result.Arguments["config"]; ok {
		path = v.(string)
	}
	conf, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := conf.override(result.Arguments); err != nil {
		return nil, err
	}
	level := tracing.TraceLevelFromString(conf.Trace)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Debugf("trace level is %s", conf.Trace)
	return conf, nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// execRun executes a script file clause by clause.
func execRun(filename string, parser *syntax.Parser, engine *eval.Engine) int {
	buff, err := ioutil.ReadFile(filename)
	if err != nil {
		pterm.Error.Println(err.Error())
		return 1
	}
	failed, err := runScript(string(buff), parser, engine, false, os.Stdout)
	if err != nil {
		pterm.Error.Println(err.Error())
		return 1
	}
	if failed > 0 {
		tracer().Errorf("%d clause(s) of %s could not be parsed", failed, filename)
		return 1
	}
	return 0
}

func execParse(text string, parser *syntax.Parser, engine *eval.Engine, evaluate, ask bool) int {
	tree, err := parser.Parse(text)
	if err != nil {
		pterm.Error.Println(fmt.Sprintf("%v: %q", err, text))
		return 1
	}
	printTree(tree, parser)
	if evaluate || ask {
		var v eval.Value
		var ok bool
		if ask {
			v, ok = engine.Ask(tree)
		} else {
			v, ok = engine.Eval(tree)
		}
		printValue(v, ok)
	}
	return 0
}
