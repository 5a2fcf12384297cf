package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"sort"
	"strconv"

	"github.com/npillmayer/glossa/eval"
	"github.com/npillmayer/glossa/syntax"
	"github.com/pelletier/go-toml"
)

// defaultConfigFile is read from the working directory if no config file is
// given on the command line.
const defaultConfigFile = "glossa.toml"

// Config holds the settings of the command, as read from a TOML file.
type Config struct {
	Trace     string                 `toml:"trace"`
	MaxTokens int                    `toml:"max-tokens"`
	Addr      string                 `toml:"addr"`
	Prompt    string                 `toml:"prompt"`
	Globals   map[string]interface{} `toml:"globals"`
}

func defaultConfig() *Config {
	return &Config{
		Trace:  "Info",
		Addr:   ":8080",
		Prompt: "glossa> ",
	}
}

// loadConfig reads a configuration file. An empty path selects the default
// config file, which may be missing.
func loadConfig(path string) (*Config, error) {
	conf := defaultConfig()
	optional := path == ""
	if optional {
		path = defaultConfigFile
	}
	buff, err := ioutil.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return conf, nil
		}
		return nil, err
	}
	if err := parseConfig(buff, conf); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	tracer().Debugf("read config file %s", path)
	return conf, nil
}

func parseConfig(buff []byte, conf *Config) error {
	if err := toml.Unmarshal(buff, conf); err != nil {
		return err
	}
	if conf.MaxTokens < 0 {
		return fmt.Errorf("max-tokens must not be negative: %d", conf.MaxTokens)
	}
	for name, v := range conf.Globals {
		if _, err := globalValue(v); err != nil {
			return fmt.Errorf("global %q: %w", name, err)
		}
	}
	return nil
}

// override applies command line arguments to the configuration.
func (conf *Config) override(args map[string]interface{}) error {
	if v, ok := args["trace"]; ok {
		conf.Trace = v.(string)
	}
	if v, ok := args["addr"]; ok {
		conf.Addr = v.(string)
	}
	if v, ok := args["prompt"]; ok {
		conf.Prompt = v.(string)
	}
	if v, ok := args["max-tokens"]; ok {
		n, err := strconv.Atoi(v.(string))
		if err != nil || n < 0 {
			return fmt.Errorf("invalid max-tokens: %q", v)
		}
		conf.MaxTokens = n
	}
	return nil
}

// newParser creates a parser honoring the configured word limit.
func (conf *Config) newParser() *syntax.Parser {
	return syntax.NewParser(syntax.WithMaxTokens(conf.MaxTokens))
}

// define presets the configured globals in an engine, in name order.
func (conf *Config) define(engine *eval.Engine) {
	names := make([]string, 0, len(conf.Globals))
	for name := range conf.Globals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v, _ := globalValue(conf.Globals[name])
		engine.Define(name, v)
		tracer().Debugf("global %s = %v", name, v)
	}
}

func globalValue(v interface{}) (eval.Value, error) {
	switch x := v.(type) {
	case int64:
		return eval.Number(float64(x)), nil
	case float64:
		return eval.Number(x), nil
	case bool:
		return eval.Bool(x), nil
	case string:
		return eval.String(x), nil
	}
	return eval.Null, fmt.Errorf("unsupported value type %T", v)
}
