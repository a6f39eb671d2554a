package cssom_test

import (
	"testing"

	"github.com/npillmayer/boxtree/dom"
	"github.com/npillmayer/boxtree/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSpecificityTriple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.style")
	defer teardown()
	//
	sel := cssom.Selector{TagName: "div", ID: "main", Classes: []string{"a", "b"}}
	if s := sel.Specificity(); s != (cssom.Specificity{1, 2, 1}) {
		t.Errorf("expected specificity (1,2,1), is %v", s)
	}
	if s := (cssom.Selector{}).Specificity(); s != (cssom.Specificity{0, 0, 0}) {
		t.Errorf("expected universal selector specificity (0,0,0), is %v", s)
	}
}

func TestSpecificityOrdering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.style")
	defer teardown()
	//
	id := cssom.Specificity{1, 0, 0}
	classes := cssom.Specificity{0, 9, 9}
	tag := cssom.Specificity{0, 0, 1}
	if !classes.Less(id) {
		t.Errorf("expected any number of classes to lose against an id")
	}
	if !tag.Less(classes) {
		t.Errorf("expected a tag to lose against a class")
	}
	if id.Less(id) {
		t.Errorf("expected Less to be strict, isn't")
	}
}

func TestSelectorMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.style")
	defer teardown()
	//
	elem := dom.Elem("p", map[string]string{"id": "intro", "class": "note wide"})
	cases := []struct {
		sel   cssom.Selector
		match bool
	}{
		{cssom.Selector{}, true}, // universal
		{cssom.Selector{TagName: "p"}, true},
		{cssom.Selector{TagName: "div"}, false},
		{cssom.Selector{ID: "intro"}, true},
		{cssom.Selector{ID: "outro"}, false},
		{cssom.Selector{Classes: []string{"note"}}, true},
		{cssom.Selector{Classes: []string{"note", "wide"}}, true},
		{cssom.Selector{Classes: []string{"note", "narrow"}}, false},
		{cssom.Selector{TagName: "p", ID: "intro", Classes: []string{"wide"}}, true},
		{cssom.Selector{TagName: "div", ID: "intro"}, false},
	}
	for _, c := range cases {
		if m := c.sel.Matches(elem); m != c.match {
			t.Errorf("expected selector %s matching <p> to be %v, is %v", c.sel, c.match, m)
		}
	}
	if (cssom.Selector{}).Matches(dom.Text("hello")) {
		t.Errorf("expected text node never to match a selector, does")
	}
}

func TestRuleMatchFirstSelectorWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.style")
	defer teardown()
	//
	elem := dom.Elem("h1", map[string]string{"id": "title"})
	rule := cssom.Rule{
		Selectors: []cssom.Selector{
			{TagName: "h1"}, // matches first, tried in declared order
			{ID: "title"},   // more specific, but never reached
			{TagName: "h2"}, // no match
		},
	}
	spec, ok := rule.Match(elem)
	if !ok {
		t.Fatalf("expected rule to match <h1>, doesn't")
	}
	if spec != (cssom.Specificity{0, 0, 1}) {
		t.Errorf("expected first matching selector to set specificity (0,0,1), is %v", spec)
	}
}

func TestRuleWithoutSelectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.style")
	defer teardown()
	//
	rule := cssom.Rule{}
	if _, ok := rule.Match(dom.Elem("div", nil)); ok {
		t.Errorf("expected rule without selectors never to match, does")
	}
}

func TestStylesheetAppend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree.style")
	defer teardown()
	//
	sheet := &cssom.Stylesheet{}
	if !sheet.Empty() {
		t.Errorf("expected fresh stylesheet to be empty, isn't")
	}
	other := &cssom.Stylesheet{Rules: []cssom.Rule{
		{Selectors: []cssom.Selector{{TagName: "p"}}},
	}}
	sheet.AppendRules(other)
	if sheet.Empty() || len(sheet.Rules) != 1 {
		t.Errorf("expected appended stylesheet to have 1 rule, has %d", len(sheet.Rules))
	}
}
