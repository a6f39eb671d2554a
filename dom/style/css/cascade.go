package css

import (
	"sort"

	"github.com/npillmayer/boxtree/dom/style"
	"github.com/npillmayer/boxtree/dom/style/cssom"
	"golang.org/x/net/html"
)

// matchedRule pairs a rule with the specificity of its first matching
// selector for a concrete element.
type matchedRule struct {
	spec cssom.Specificity
	rule cssom.Rule
}

// matchingRules collects all rules of a stylesheet matching an element,
// in stylesheet order.
func matchingRules(n *html.Node, sheet *cssom.Stylesheet) []matchedRule {
	var matches []matchedRule
	for _, rule := range sheet.Rules {
		if spec, ok := rule.Match(n); ok {
			matches = append(matches, matchedRule{spec: spec, rule: rule})
		}
	}
	return matches
}

// SpecifiedValues resolves the cascade for a single element: all rules of
// the stylesheet with a matching selector are ordered by specificity and
// their declarations folded into one property map. Among rules of equal
// specificity the one declared later in the stylesheet wins, which is why
// the sort has to be stable.
//
// An element matching no rule at all gets an empty map; this is not an
// error. Non-element nodes always get an empty map.
func SpecifiedValues(n *html.Node, sheet *cssom.Stylesheet) *style.PropertyMap {
	values := style.NewPropertyMap()
	if n == nil || n.Type != html.ElementNode || sheet.Empty() {
		return values
	}
	matches := matchingRules(n, sheet)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].spec.Less(matches[j].spec)
	})
	// lowest specificity first; every declaration overwrites earlier ones
	for _, m := range matches {
		for _, d := range m.rule.Declarations {
			values.Set(d.Name, d.Value)
		}
	}
	tracer().Debugf("element <%s> has %d specified properties from %d rules",
		n.Data, values.Size(), len(matches))
	return values
}
