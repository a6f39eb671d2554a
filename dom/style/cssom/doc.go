/*
Package cssom provides the stylesheet object model for the styling engine.

Overview

A stylesheet is an ordered list of rules, a rule an ordered list of
alternative selectors plus an ordered list of property declarations.
Order matters twice: rule order is the tie-breaker of the cascade, and
the first selector of a rule that matches an element determines the
rule's specificity for that element.

The selector model is deliberately small: simple selectors only, i.e. an
optional tag name, an optional id and a (possibly empty) set of classes,
all ANDed. Combinators, pseudo-classes and attribute selectors are not
part of the model; an upstream parser encountering one has to drop that
selector (see package douceuradapter). This package does not parse CSS
text — ingestion of concrete CSS syntax is the job of adapter packages.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'boxtree.style'.
func tracer() tracing.Trace {
	return tracing.Select("boxtree.style")
}
