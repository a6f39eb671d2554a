/*
Package douceuradapter feeds CSS text to the styling engine.

The CSS grammar parser is not ours: we delegate tokenizing and parsing of
stylesheet text to aymerick/douceur and convert its output into the cssom
model. Conversion is lossy on purpose — selectors using constructs outside
the simple-selector model (combinators, pseudo-classes, attribute
selectors) are dropped, never fatal, and at-rules are skipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strconv"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/boxtree/dom/style"
	"github.com/npillmayer/boxtree/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tyse/core/dimen"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'boxtree.style'.
func tracer() tracing.Trace {
	return tracing.Select("boxtree.style")
}

// Parse parses CSS stylesheet text into a cssom.Stylesheet.
// Rules whose selectors are all unsupported are kept with an empty
// selector list; they will simply never match.
func Parse(csstext string) (*cssom.Stylesheet, error) {
	parsed, err := parser.Parse(csstext)
	if err != nil {
		return nil, err
	}
	return Convert(parsed), nil
}

// Convert translates a douceur stylesheet into the cssom model.
func Convert(parsed *css.Stylesheet) *cssom.Stylesheet {
	sheet := &cssom.Stylesheet{}
	for _, r := range parsed.Rules {
		if r.Kind != css.QualifiedRule {
			tracer().Infof("skipping at-rule %s", r.Name)
			continue
		}
		rule := cssom.Rule{}
		for _, s := range r.Selectors {
			sel, ok := parseSimpleSelector(s)
			if !ok {
				tracer().Infof("unsupported selector dropped: %q", s)
				continue
			}
			rule.Selectors = append(rule.Selectors, sel)
		}
		for _, d := range r.Declarations {
			rule.Declarations = append(rule.Declarations, cssom.Declaration{
				Name:  d.Property,
				Value: parseValue(d.Value),
			})
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
	return sheet
}

// ExtractStyleElements searches an HTML parse tree for embedded <style>
// elements and returns their contents as stylesheets, in document order.
func ExtractStyleElements(htmldoc *html.Node) []*cssom.Stylesheet {
	var sheets []*cssom.Stylesheet
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n == nil {
			return
		}
		if n.DataAtom == atom.Style && n.FirstChild != nil {
			sheet, err := Parse(n.FirstChild.Data)
			if err != nil {
				tracer().Errorf("cannot parse embedded stylesheet: %v", err)
			} else {
				sheets = append(sheets, sheet)
			}
			return
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(htmldoc)
	return sheets
}

// --- Selector conversion ----------------------------------------------

// parseSimpleSelector parses a selector of the form "tag#id.class1.class2"
// (every part optional, "*" for universal). Anything beyond that —
// whitespace combinators, '>', '+', '~', pseudo-classes, attribute
// selectors — makes the selector unsupported.
func parseSimpleSelector(s string) (cssom.Selector, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return cssom.Selector{}, false
	}
	var sel cssom.Selector
	i := 0
	readIdent := func() string {
		start := i
		for i < len(s) && isIdentChar(s[i]) {
			i++
		}
		return s[start:i]
	}
	switch {
	case s[0] == '*':
		i++
	case isIdentChar(s[0]):
		sel.TagName = readIdent()
	}
	for i < len(s) {
		switch s[i] {
		case '#':
			i++
			if sel.ID = readIdent(); sel.ID == "" {
				return cssom.Selector{}, false
			}
		case '.':
			i++
			class := readIdent()
			if class == "" {
				return cssom.Selector{}, false
			}
			sel.Classes = append(sel.Classes, class)
		default:
			return cssom.Selector{}, false
		}
	}
	return sel, true
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '-' || c == '_'
}

// --- Value conversion -------------------------------------------------

// parseValue maps a declaration value string onto a style.Value variant.
// Colors and pixel lengths get typed variants; everything else is carried
// as a keyword.
func parseValue(s string) style.Value {
	s = strings.TrimSpace(s)
	if c, ok := style.ParseColor(s); ok {
		return style.Color{C: c}
	}
	if strings.HasSuffix(s, "px") {
		if n, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64); err == nil {
			return style.Dimen{D: dimen.DU(n * float64(style.PX))}
		}
	}
	return style.Keyword(s)
}
