/*
Package boxtree resolves CSS styles for a document tree and constructs a
tree of layout boxes from it.

Overview

The pipeline has two stages. First the cascade: for every element of the
document the matching rules of a stylesheet are resolved into a property
map, producing a styled tree that mirrors the document node for node
(package dom/styledtree). Then box construction: the styled tree is
transformed into a tree of block, inline and anonymous-block boxes, with
all geometry zeroed out, ready for a later layout pass (package layout).

Both stages borrow their inputs. The document tree and the stylesheet must
stay alive for as long as any styled tree or box tree derived from them.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxtree

import (
	"github.com/npillmayer/boxtree/dom/style/cssom"
	"github.com/npillmayer/boxtree/dom/styledtree"
	"github.com/npillmayer/boxtree/layout"
	"golang.org/x/net/html"
)

// BuildBoxTree runs the whole pipeline: it styles a document tree with a
// stylesheet and constructs the layout box tree from the result.
//
// It fails if the root element resolves to display:none (see
// layout.ErrDisplayNoneRoot); there is no partial result in that case.
func BuildBoxTree(root *html.Node, sheet *cssom.Stylesheet) (*layout.LayoutBox, error) {
	styled := styledtree.Build(root, sheet)
	return layout.BuildLayoutTree(styled)
}
