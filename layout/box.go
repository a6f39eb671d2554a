package layout

import (
	"fmt"

	"github.com/npillmayer/boxtree/dom/styledtree"
	"github.com/npillmayer/tyse/core/dimen"
	"golang.org/x/net/html"
)

// Rect is a rectangle, position and size in device units.
type Rect struct {
	X, Y dimen.DU
	W, H dimen.DU
}

// EdgeSizes is a set of four edge widths, following the CSS box model.
type EdgeSizes struct {
	Top, Right, Bottom, Left dimen.DU
}

// Dimensions is the geometry of a box: a content area surrounded by
// padding, border and margin edges. Box construction leaves all fields
// zero; a later layout pass fills them in.
type Dimensions struct {
	Content Rect
	Padding EdgeSizes
	Border  EdgeSizes
	Margin  EdgeSizes
}

// BoxKind discriminates the box variants of the box tree.
type BoxKind uint8

const (
	BlockBox     BoxKind = iota // box of a block-level element
	InlineBox                   // box of an inline-level element or text
	AnonymousBox                // synthesized block box holding inline content
)

func (k BoxKind) String() string {
	switch k {
	case BlockBox:
		return "block"
	case InlineBox:
		return "inline"
	}
	return "anonymous"
}

// LayoutBox is a node of the box tree. Block and inline boxes reference
// the styled node they were generated from; anonymous boxes have no
// corresponding styled node and exist purely to hold inline content that
// appears alongside block siblings.
type LayoutBox struct {
	Kind       BoxKind
	Styled     *styledtree.StyNode // nil iff Kind == AnonymousBox
	Dimensions Dimensions
	Children   []*LayoutBox
}

func newBox(kind BoxKind, styled *styledtree.StyNode) *LayoutBox {
	return &LayoutBox{Kind: kind, Styled: styled}
}

func (box *LayoutBox) String() string {
	if box == nil {
		return "(no box)"
	}
	if box.Styled == nil {
		return fmt.Sprintf("(%s box)", box.Kind)
	}
	h := box.Styled.HTMLNode()
	if h.Type == html.TextNode {
		return fmt.Sprintf("(%s box %q)", box.Kind, h.Data)
	}
	return fmt.Sprintf("(%s box <%s>)", box.Kind, h.Data)
}

// inlineContainer returns the box new inline content of this box should
// go into. Inline and anonymous boxes take inline content themselves. A
// block box routes it into a trailing anonymous box, creating one unless
// the previous child already is one.
func (box *LayoutBox) inlineContainer() *LayoutBox {
	switch box.Kind {
	case InlineBox, AnonymousBox:
		return box
	}
	if n := len(box.Children); n > 0 && box.Children[n-1].Kind == AnonymousBox {
		return box.Children[n-1]
	}
	anon := newBox(AnonymousBox, nil)
	box.Children = append(box.Children, anon)
	return anon
}
