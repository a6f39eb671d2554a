/*
Package layout constructs the tree of layout boxes for a styled tree.

Overview

Box construction is the structural half of layout: it decides which boxes
exist and how they nest, driven by each node's resolved display mode. The
numeric half — computing positions and sizes — is a downstream pass and
not part of this package's job; every box starts out with all-zero
dimensions.

The one structural invariant enforced here is the CSS rule that a block
container never holds inline content directly: inline boxes appearing
among block siblings are collected into anonymous block boxes, and
consecutive inline siblings share one.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'boxtree.layout'
func tracer() tracing.Trace {
	return tracing.Select("boxtree.layout")
}
