/*
Package lexicon provides the morpheme dictionary of the language.

The dictionary maps every known morpheme to its gloss. It is constructed
once and never mutated afterwards; clients hold it by reference and pass it
into segmentation and translation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexicon

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glossa.lexicon'.
func tracer() tracing.Trace {
	return tracing.Select("glossa.lexicon")
}
