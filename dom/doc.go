/*
Package dom provides the document model consumed by the styling engine.

Overview

We do not invent a DOM type of our own: the tree handed to the styler is a
tree of golang.org/x/net/html nodes, usually the output of a full HTML
parse. This package adds the few things the styling engine needs on top of
it: constructors for hand-building small trees, attribute lookup helpers
with CSS semantics, a fragment parser that synthesizes a root element when
necessary, and a debug serialization used for diffing trees in tests.

The styler never owns a DOM. Styled trees and layout box trees hold
non-owning pointers into the html.Node tree, so clients have to keep the
document alive for as long as any derived tree is in use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'boxtree.dom'
func tracer() tracing.Trace {
	return tracing.Select("boxtree.dom")
}
