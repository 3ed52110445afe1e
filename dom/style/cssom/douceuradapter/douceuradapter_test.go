package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/domino/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

var sheet = `
.title, h1 { -domino-container: header; color: red; }
@media only screen and (min-width: 480px) {
	footer { -domino-order: 50; }
}
`

func TestParseAndWrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domino.cssom")
	defer teardown()
	//
	css, err := Parse(sheet)
	if err != nil {
		t.Fatal(err)
	}
	if css.Empty() {
		t.Fatal("expected stylesheet to contain rules, doesn't")
	}
	rules := css.Rules()
	if len(rules) != 2 {
		t.Fatalf("expected 2 top-level rules, have %d", len(rules))
	}
	sels := rules[0].SelectorList()
	if len(sels) != 2 || sels[0] != ".title" || sels[1] != "h1" {
		t.Errorf("expected selectors [.title h1], have %v", sels)
	}
	if v := rules[0].Value("-domino-container"); v.Selector() != "header" {
		t.Errorf("expected container to be 'header', is %q", v)
	}
	if rules[0].AtKeyword() != "" || rules[0].Embedded() != nil {
		t.Errorf("expected first rule to be a qualified rule, isn't")
	}
	if !cssom.IsMedia(rules[1]) {
		t.Fatalf("expected second rule to be @media, is %q", rules[1].AtKeyword())
	}
	if !strings.Contains(rules[1].Selector(), "min-width: 480px") {
		t.Errorf("expected prelude to contain media feature, is %q", rules[1].Selector())
	}
	emb := rules[1].Embedded()
	if len(emb) != 1 || emb[0].Value("-domino-order") != "50" {
		t.Errorf("expected one embedded order rule, have %v", emb)
	}
}

func TestAppendRules(t *testing.T) {
	a, _ := Parse("a { -domino-order: 1; }")
	b, _ := Parse("b { -domino-order: 2; } c { -domino-order: 3; }")
	a.AppendRules(b)
	if len(a.Rules()) != 3 {
		t.Errorf("expected 3 rules after append, have %d", len(a.Rules()))
	}
}

var page = `<html><head>
<style>.a { -domino-order: 1; }</style>
<link rel="icon" href="favicon.ico">
<link rel="preload stylesheet" href="/css/site.css">
</head><body>
<style>.b { -domino-order: 2; }</style>
<p>Hello</p>
</body></html>`

func TestExtractStyleSources(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domino.cssom")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	srcs := ExtractStyleSources(doc)
	if len(srcs) != 3 {
		t.Fatalf("expected 3 style sources, have %d: %v", len(srcs), srcs)
	}
	if srcs[0].IsLink() || !strings.Contains(srcs[0].Inline, ".a") {
		t.Errorf("expected first source to be inline style .a, is %v", srcs[0])
	}
	if !srcs[1].IsLink() || srcs[1].Href != "/css/site.css" {
		t.Errorf("expected second source to be link to site.css, is %v", srcs[1])
	}
	if srcs[2].IsLink() || !strings.Contains(srcs[2].Inline, ".b") {
		t.Errorf("expected third source to be inline style .b, is %v", srcs[2])
	}
	styles := ExtractStyleElements(doc)
	if len(styles) != 2 {
		t.Errorf("expected 2 parsed <style> elements, have %d", len(styles))
	}
}
