/*
Package morph segments words into morphemes.

A word of the language, once its case suffix is stripped, is a chain of
dictionary morphemes without separators. Segmentation scans left to right and
commits a morpheme boundary at the first position where the characters since
the last boundary form a dictionary entry. This is a shortest-match policy:
a longer morpheme sharing a prefix with a shorter one is never reached.

Numeric literals and proper nouns (leading upper-case letter) are not
segmented; they form a root of a single morpheme.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package morph

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glossa.morph'.
func tracer() tracing.Trace {
	return tracing.Select("glossa.morph")
}
