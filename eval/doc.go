/*
Package eval evaluates parse trees as an arithmetic-and-assignment language.

Phrases evaluate to literals: numbers, the booleans 'yes' and 'ne', or
strings. Clauses evaluate according to the morphemes of their verb:

    nam + a*d|pul|kak|div    arithmetic on subject and object
    car a-l a*d              string concatenation
    est                      assignment of the object to the variable named
                             by the subject, or, in interrogative mode, an
                             equality test
    … if                     the subject, if the object is true
    ge*t                     the value of the variable named by the object
    c^                       the object, evaluated in interrogative mode
    lu*k … scir              prints the object

Everything else, including clauses with adverbials, evaluates to nothing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package eval

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glossa.eval'.
func tracer() tracing.Trace {
	return tracing.Select("glossa.eval")
}
