package layout_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/boxtree/dom"
	"github.com/npillmayer/boxtree/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/boxtree/dom/styledtree"
	"github.com/npillmayer/boxtree/layout"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func styleFor(t *testing.T, doc *html.Node, csstext string) *styledtree.StyNode {
	t.Helper()
	sheet, err := douceuradapter.Parse(csstext)
	if err != nil {
		t.Fatalf("cannot parse test stylesheet: %v", err)
	}
	return styledtree.Build(doc, sheet)
}

func TestBoxForBlockAndInline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.layout")
	defer teardown()
	//
	doc := dom.Elem("div", nil,
		dom.Elem("p", nil),
		dom.Elem("span", nil),
	)
	root, err := layout.BuildLayoutTree(styleFor(t, doc, `
		div, p { display: block; }
	`))
	if err != nil {
		t.Fatalf("box construction failed: %v", err)
	}
	t.Logf("box tree:\n%s", layout.TreeString(root))
	if root.Kind != layout.BlockBox {
		t.Fatalf("expected root to be a block box, is %s", root.Kind)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected root to have 2 children, has %d", len(root.Children))
	}
	if root.Children[0].Kind != layout.BlockBox {
		t.Errorf("expected first child to be a block box, is %s", root.Children[0].Kind)
	}
	if root.Children[1].Kind != layout.AnonymousBox {
		t.Errorf("expected inline child to be wrapped in an anonymous box, is %s",
			root.Children[1].Kind)
	}
	anon := root.Children[1]
	if len(anon.Children) != 1 || anon.Children[0].Kind != layout.InlineBox {
		t.Errorf("expected anonymous box to hold the inline <span>, holds %v", anon.Children)
	}
	if anon.Children[0].Styled.HTMLNode().Data != "span" {
		t.Errorf("expected the wrapped inline box to reference <span>, references %v",
			anon.Children[0].Styled.HTMLNode().Data)
	}
}

func TestConsecutiveInlinesShareAnonymousBox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.layout")
	defer teardown()
	//
	doc := dom.Elem("div", nil,
		dom.Elem("p", nil),
		dom.Elem("span", nil),
		dom.Elem("b", nil),
	)
	root, err := layout.BuildLayoutTree(styleFor(t, doc, `div, p { display: block; }`))
	if err != nil {
		t.Fatalf("box construction failed: %v", err)
	}
	if len(root.Children) != 2 {
		t.Logf("box tree:\n%s", layout.TreeString(root))
		t.Fatalf("expected 2 children (block + shared anonymous), are %d", len(root.Children))
	}
	anon := root.Children[1]
	if anon.Kind != layout.AnonymousBox || len(anon.Children) != 2 {
		t.Errorf("expected both inlines to share one anonymous box, box is %v with %d children",
			anon.Kind, len(anon.Children))
	}
}

func TestDisplayNoneChildOmitted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.layout")
	defer teardown()
	//
	doc := dom.Elem("div", nil,
		dom.Elem("p", nil),
		dom.Elem("aside", nil, dom.Elem("span", nil)),
		dom.Elem("p", nil),
	)
	root, err := layout.BuildLayoutTree(styleFor(t, doc, `
		div, p { display: block; }
		aside { display: none; }
	`))
	if err != nil {
		t.Fatalf("box construction failed: %v", err)
	}
	if len(root.Children) != 2 {
		t.Logf("box tree:\n%s", layout.TreeString(root))
		t.Fatalf("expected display:none subtree to vanish without placeholder, children are %d",
			len(root.Children))
	}
	for _, ch := range root.Children {
		if ch.Kind != layout.BlockBox {
			t.Errorf("expected only the two <p> block boxes to remain, found %s", ch.Kind)
		}
	}
}

func TestInlineRootTakesInlineChildrenDirectly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.layout")
	defer teardown()
	//
	doc := dom.Elem("span", nil,
		dom.Text("hello"),
		dom.Elem("b", nil),
	)
	root, err := layout.BuildLayoutTree(styleFor(t, doc, ``))
	if err != nil {
		t.Fatalf("box construction failed: %v", err)
	}
	if root.Kind != layout.InlineBox {
		t.Fatalf("expected root to default to inline, is %s", root.Kind)
	}
	// inline content flows directly into the nearest inline context
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 direct children, are %d", len(root.Children))
	}
	for _, ch := range root.Children {
		if ch.Kind != layout.InlineBox {
			t.Errorf("expected no anonymous wrapper under an inline box, found %s", ch.Kind)
		}
	}
}

func TestRootDisplayNoneIsError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.layout")
	defer teardown()
	//
	doc := dom.Elem("div", nil, dom.Elem("p", nil))
	_, err := layout.BuildLayoutTree(styleFor(t, doc, `div { display: none; }`))
	if err == nil {
		t.Fatalf("expected building boxes for a display:none root to fail, doesn't")
	}
	if !errors.Is(err, layout.ErrDisplayNoneRoot) {
		t.Errorf("expected ErrDisplayNoneRoot, is %v", err)
	}
}

func TestDimensionsStartAtZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.layout")
	defer teardown()
	//
	doc := dom.Elem("div", nil, dom.Elem("p", nil))
	root, err := layout.BuildLayoutTree(styleFor(t, doc, `
		div, p { display: block; margin-top: 10px; width: 100px; }
	`))
	if err != nil {
		t.Fatalf("box construction failed: %v", err)
	}
	var check func(box *layout.LayoutBox)
	check = func(box *layout.LayoutBox) {
		if box.Dimensions != (layout.Dimensions{}) {
			t.Errorf("expected box %v to have all-zero dimensions, has %v", box, box.Dimensions)
		}
		for _, ch := range box.Children {
			check(ch)
		}
	}
	check(root)
}
