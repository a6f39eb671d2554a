/*
Package styledtree implements the styled document tree.

Overview

A styled tree mirrors an HTML parse tree node for node — text nodes
included — and attaches to every node the property map the cascade
resolved for it. Styled nodes do not own the document: they hold
non-owning pointers into the html.Node tree, which clients must keep
alive for as long as the styled tree (or any box tree derived from it)
is in use.

Building a styled tree is a pure recursive descent. Since no property
inherits from parent elements in this engine, construction order carries
no semantics, and building twice from the same inputs yields structurally
identical, independently allocated trees.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxtree.style'.
func tracer() tracing.Trace {
	return tracing.Select("boxtree.style")
}
