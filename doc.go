/*
Package glossa parses, renders and evaluates sentences of a small
agglutinative constructed language.

Words of the language are built from short dictionary morphemes, concatenated
without separators, and end in a single case suffix marking their grammatical
role. Package structure is as follows:

■ lexicon: Package lexicon holds the fixed morpheme dictionary.

■ morph: Package morph segments a suffix-stripped word into morphemes.

■ syntax: Package syntax implements the clause parser and the two tree
walkers rendering surface text and gloss translations.

■ eval: Package eval evaluates parse trees as an arithmetic-and-assignment
language.

■ runtime: Package runtime provides scopes and symbol tables, used as the
evaluator's variable store.

■ scanner: Package scanner splits scripts into clauses.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glossa
