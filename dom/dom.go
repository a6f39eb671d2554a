package dom

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrEmptyFragment is returned by Parse for input without any content nodes.
var ErrEmptyFragment = errors.New("dom: fragment contains no nodes")

// Elem creates an element node with a given tag name and attributes, and
// appends the given children. Attributes are stored sorted by name, so that
// trees built from Go maps are deterministic.
func Elem(tag string, attrs map[string]string, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if len(attrs) > 0 {
		keys := make([]string, 0, len(attrs))
		for k := range attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			n.Attr = append(n.Attr, html.Attribute{Key: k, Val: attrs[k]})
		}
	}
	for _, ch := range children {
		n.AppendChild(ch)
	}
	return n
}

// Text creates a text node.
func Text(data string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: data}
}

// Attribute looks up an attribute of an element node. Lookup is a
// case-sensitive exact string comparison. Non-element nodes have no
// attributes.
func Attribute(n *html.Node, key string) (string, bool) {
	if n == nil || n.Type != html.ElementNode {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// ID returns the value of an element's id attribute, or "" if unset.
func ID(n *html.Node) string {
	id, _ := Attribute(n, "id")
	return id
}

// Classes returns the whitespace-split values of an element's class
// attribute. An element without a class attribute has an empty class set.
func Classes(n *html.Node) []string {
	cls, ok := Attribute(n, "class")
	if !ok {
		return nil
	}
	return strings.Fields(cls)
}

// Parse parses an HTML fragment into a document tree rooted at a single
// node. The fragment is parsed in body context. Whitespace-only text
// between top-level nodes is dropped. If the fragment contains more than
// one top-level node, an <html> root element is synthesized to hold them.
func Parse(src string) (*html.Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(src), ctx)
	if err != nil {
		return nil, err
	}
	top := nodes[:0]
	for _, n := range nodes {
		if n.Type == html.TextNode && strings.TrimSpace(n.Data) == "" {
			continue
		}
		top = append(top, n)
	}
	tracer().Debugf("dom: fragment has %d top-level node(s)", len(top))
	switch len(top) {
	case 0:
		return nil, ErrEmptyFragment
	case 1:
		return top[0], nil
	}
	root := Elem("html", nil)
	for _, n := range top {
		root.AppendChild(n)
	}
	return root, nil
}

// OuterHTML serializes a node back to tag-bracketed text form, with
// attributes emitted in sorted-by-name order as name="value" pairs.
//
// This is a debugging aid for diffing and inspecting trees, not a full
// HTML serialization: it does not escape special characters and does not
// self-close void elements.
func OuterHTML(n *html.Node) string {
	var b strings.Builder
	outerHTML(&b, n)
	return b.String()
}

func outerHTML(b *strings.Builder, n *html.Node) {
	if n == nil {
		return
	}
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.ElementNode:
		b.WriteByte('<')
		b.WriteString(n.Data)
		attrs := make([]html.Attribute, len(n.Attr))
		copy(attrs, n.Attr)
		sort.Slice(attrs, func(i, j int) bool { return attrs[i].Key < attrs[j].Key })
		for _, a := range attrs {
			b.WriteByte(' ')
			b.WriteString(a.Key)
			b.WriteString(`="`)
			b.WriteString(a.Val)
			b.WriteByte('"')
		}
		b.WriteByte('>')
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			outerHTML(b, ch)
		}
		b.WriteString("</")
		b.WriteString(n.Data)
		b.WriteByte('>')
	default:
		// document and comment nodes carry no text form of their own
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			outerHTML(b, ch)
		}
	}
}
