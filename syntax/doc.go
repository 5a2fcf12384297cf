/*
Package syntax implements the clause parser of the language and the tree
walkers consuming its parse trees.

Parsing works on whitespace-separated words and dispatches on the final
character of each word, its case suffix. There is no separate lexer pass:
the parser decides word by word whether it is building a verb clause or a
bare noun phrase, and recurses into sub-spans for subjects, objects and
modifiers.

Parse trees are immutable after construction. Format renders a tree back to
canonical surface text, which re-parses to an equal tree. Translate renders a
gloss translation from the dictionary.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'glossa.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("glossa.syntax")
}
