package dom

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// There is not very much open source Go code around for working with CSS
// selectors, except the great work of cascadia. We use it for ad-hoc
// queries on document trees; the styling cascade has its own matcher with
// a deliberately smaller selector model.

// Query returns the first node under root matching a CSS selector, or nil.
func Query(root *html.Node, selector string) (*html.Node, error) {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, err
	}
	return cascadia.Query(root, sel), nil
}

// QueryAll returns all nodes under root matching a CSS selector.
func QueryAll(root *html.Node, selector string) ([]*html.Node, error) {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, err
	}
	return cascadia.QueryAll(root, sel), nil
}
