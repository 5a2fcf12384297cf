/*
Package scanner splits scripts into clauses.

A script is a sequence of clauses separated by semicolons. Line comments
start with '#' and extend to the end of the line. Words are runs of
anything else which is not white space. The scanner is built on lexmachine;
the clause parser of package syntax works on single clauses only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glossa.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("glossa.scanner")
}
