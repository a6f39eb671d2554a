package layout

import (
	"errors"

	"github.com/npillmayer/boxtree/dom/style/css"
	"github.com/npillmayer/boxtree/dom/styledtree"
)

// ErrDisplayNoneRoot is returned when the root of the styled tree resolves
// to display:none, leaving the document without anything to render.
var ErrDisplayNoneRoot = errors.New("layout: root node has display:none")

// ErrNoStyledTree is returned for a nil styled tree.
var ErrNoStyledTree = errors.New("layout: no styled tree to build boxes from")

// BuildLayoutTree transforms a styled tree into a tree of layout boxes,
// without performing any geometry calculations. Nodes with display:none
// are omitted entirely, subtree included. A root with display:none is a
// configuration error: the build fails atomically with ErrDisplayNoneRoot
// and no partial tree is returned.
func BuildLayoutTree(sn *styledtree.StyNode) (*LayoutBox, error) {
	if sn == nil {
		return nil, ErrNoStyledTree
	}
	if css.Display(sn.Styles()) == css.DisplayNone {
		return nil, ErrDisplayNoneRoot
	}
	box := buildBox(sn)
	tracer().Debugf("built box tree rooted at %v", box)
	return box, nil
}

// buildBox constructs the box subtree for a styled node known not to be
// display:none.
func buildBox(sn *styledtree.StyNode) *LayoutBox {
	var box *LayoutBox
	if css.Display(sn.Styles()) == css.BlockMode {
		box = newBox(BlockBox, sn)
	} else {
		box = newBox(InlineBox, sn)
	}
	for _, ch := range sn.Children() {
		child := styledtree.Node(ch)
		switch css.Display(child.Styles()) {
		case css.BlockMode:
			box.Children = append(box.Children, buildBox(child))
		case css.InlineMode:
			container := box.inlineContainer()
			container.Children = append(container.Children, buildBox(child))
		case css.DisplayNone:
			// contributes nothing, not even an anonymous box
		}
	}
	return box
}
