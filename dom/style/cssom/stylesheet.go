package cssom

import (
	"strings"

	"github.com/npillmayer/boxtree/dom"
	"github.com/npillmayer/boxtree/dom/style"
	"golang.org/x/net/html"
)

// Specificity is the matching strength of a selector, as defined in
// https://www.w3.org/TR/selectors/#specificity-rules with the convention
// Specificity = [id-count, class-count, tag-count]. Specificities compare
// lexicographically; higher wins.
type Specificity [3]int

// Less returns true if s < other (strictly), false otherwise.
func (s Specificity) Less(other Specificity) bool {
	for i := range s {
		if s[i] < other[i] {
			return true
		}
		if s[i] > other[i] {
			return false
		}
	}
	return false
}

// Selector is a simple selector: an optional tag name, an optional id and
// a set of class names. All present constraints are ANDed; an absent
// constraint always matches. The zero Selector is the universal selector.
type Selector struct {
	TagName string   // "" = no tag constraint
	ID      string   // "" = no id constraint
	Classes []string // empty = no class constraints
}

func (sel Selector) String() string {
	var b strings.Builder
	b.WriteString(sel.TagName)
	if sel.ID != "" {
		b.WriteByte('#')
		b.WriteString(sel.ID)
	}
	for _, c := range sel.Classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	if b.Len() == 0 {
		return "*"
	}
	return b.String()
}

// Specificity returns the specificity triple derived from the selector's
// constraints.
func (sel Selector) Specificity() Specificity {
	var s Specificity
	if sel.ID != "" {
		s[0] = 1
	}
	s[1] = len(sel.Classes)
	if sel.TagName != "" {
		s[2] = 1
	}
	return s
}

// Matches decides wether the selector matches an element node.
// Non-element nodes never match.
func (sel Selector) Matches(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	if sel.TagName != "" && sel.TagName != n.Data {
		return false
	}
	if sel.ID != "" && sel.ID != dom.ID(n) {
		return false
	}
	if len(sel.Classes) > 0 {
		classes := dom.Classes(n)
		for _, c := range sel.Classes {
			if !contains(classes, c) {
				return false
			}
		}
	}
	return true
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// Declaration sets a single property to a value, e.g. "margin-top: 15px".
type Declaration struct {
	Name  string
	Value style.Value
}

// Rule is the type stylesheets consist of: one or more alternative
// selectors, plus the declarations applied when one of them matches.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// Match finds the first selector of the rule matching an element,
// in declared order, and returns its specificity. A rule without
// selectors never matches.
func (r Rule) Match(n *html.Node) (Specificity, bool) {
	for _, sel := range r.Selectors {
		if sel.Matches(n) {
			return sel.Specificity(), true
		}
	}
	return Specificity{}, false
}

// Stylesheet is an ordered list of rules. Rule order is significant: the
// cascade breaks specificity ties by it.
type Stylesheet struct {
	Rules []Rule
}

// Empty checks wether this stylesheet contains any rules.
func (sheet *Stylesheet) Empty() bool {
	return sheet == nil || len(sheet.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
func (sheet *Stylesheet) AppendRules(other *Stylesheet) {
	if other == nil {
		return
	}
	sheet.Rules = append(sheet.Rules, other.Rules...)
}
