package css

import "github.com/npillmayer/boxtree/dom/style"

// DisplayMode is a type for CSS property "display".
type DisplayMode uint8

// Display modes relevant for box construction. Inline is the CSS default
// for an unset display property.
const (
	InlineMode  DisplayMode = iota // CSS inline context
	BlockMode                      // CSS block context
	DisplayNone                    // CSS display = none
)

func (disp DisplayMode) String() string {
	switch disp {
	case BlockMode:
		return "block"
	case DisplayNone:
		return "none"
	}
	return "inline"
}

// Display reads the display mode from a property map. Only the keyword
// value "block" produces BlockMode and only the keyword "none" produces
// DisplayNone; every other value — other keywords, non-keyword variants,
// or an unset property — is treated as inline.
func Display(pmap *style.PropertyMap) DisplayMode {
	v, ok := pmap.Property("display")
	if !ok {
		return InlineMode
	}
	if kw, ok := v.(style.Keyword); ok {
		switch kw {
		case "block":
			return BlockMode
		case "none":
			return DisplayNone
		}
	}
	return InlineMode
}
