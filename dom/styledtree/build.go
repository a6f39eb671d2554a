package styledtree

import (
	"github.com/npillmayer/boxtree/dom/style"
	"github.com/npillmayer/boxtree/dom/style/css"
	"github.com/npillmayer/boxtree/dom/style/cssom"
	"golang.org/x/net/html"
)

// Build creates a styled tree for a document tree and a stylesheet.
// The resulting tree has exactly the shape of the document tree: one
// styled node per document node, children in document order. Element
// nodes carry the property map the cascade resolves for them; every
// other node type carries an empty map.
//
// Neither the document tree nor the stylesheet are modified; both have
// to outlive the returned tree.
func Build(root *html.Node, sheet *cssom.Stylesheet) *StyNode {
	if root == nil {
		return nil
	}
	tracer().Debugf("styling tree rooted at %v", root.Data)
	return buildNode(root, sheet)
}

func buildNode(n *html.Node, sheet *cssom.Stylesheet) *StyNode {
	sn := Node(NewNodeForHTMLNode(n))
	if n.Type == html.ElementNode {
		sn.SetStyles(css.SpecifiedValues(n, sheet))
	} else {
		sn.SetStyles(style.NewPropertyMap())
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		child := buildNode(ch, sheet)
		sn.AddChild(&child.Node)
	}
	return sn
}
