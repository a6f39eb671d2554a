/*
Package style defines CSS property values and the property map attached to
styled nodes.

Overview

The cascade produces, per element, a fresh map from property names to
values. Values are a small closed set of variants: most of the styling
engine carries them around opaquely, and only the box-construction stage
ever looks inside one (the display keyword). Numeric layout, which would
interpret lengths and colors, happens downstream of this module.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'boxtree.style'
func tracer() tracing.Trace {
	return tracing.Select("boxtree.style")
}
