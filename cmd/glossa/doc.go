/*
Command glossa parses, translates and evaluates sentences of the glossa
language.

Subcommands:

    glossa repl                  interactive mode
    glossa run <file>            execute a script of ';'-separated clauses
    glossa parse <text>          parse a single clause and print its forms
    glossa serve [--addr :8080]  serve a JSON API

Settings are read from a TOML file (--config, or glossa.toml in the working
directory):

    trace      = "Info"
    max-tokens = 256
    addr       = ":8080"
    prompt     = "glossa> "

    [globals]
    Pai = 3.14159

Command line arguments override the file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glossa.cli'
func tracer() tracing.Trace {
	return tracing.Select("glossa.cli")
}
