/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/domino/dom/style"
	"github.com/npillmayer/domino/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'domino.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("domino.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	if css == nil {
		return &CSSStyles{}
	}
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS text with the douceur parser.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return Wrap(c), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss, ok := other.(*CSSStyles)
	if !ok || othercss == nil {
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the rules of a stylesheet.
//
// Interface style.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	return wrapRules(sheet.css.Rules)
}

func wrapRules(rs []*css.Rule) []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			rules = append(rules, Rule(*r))
		}
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// SelectorList returns the comma-separated selectors of a qualified rule.
func (r Rule) SelectorList() []string {
	if r.Kind != css.QualifiedRule {
		return nil
	}
	if len(r.Selectors) > 0 {
		return r.Selectors
	}
	var sels []string
	for _, s := range strings.Split(r.Prelude, ",") {
		if s = strings.TrimSpace(s); s != "" {
			sels = append(sels, s)
		}
	}
	return sels
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for given key with this rule, e.g. "15px".
// If a key is declared more than once, the last declaration wins.
func (r Rule) Value(key string) style.Property {
	var v style.Property
	for _, d := range r.Declarations {
		if d.Property == key {
			v = style.Property(d.Value)
		}
	}
	return v
}

// AtKeyword returns the name of an at-rule, e.g. "@media".
func (r Rule) AtKeyword() string {
	if r.Kind != css.AtRule {
		return ""
	}
	return strings.ToLower(r.Name)
}

// Embedded returns the rules nested within an at-rule.
func (r Rule) Embedded() []cssom.Rule {
	cr := css.Rule(r)
	if !cr.EmbedsRules() {
		return nil
	}
	return wrapRules(r.Rules)
}

var _ cssom.Rule = &Rule{}

// --- Style sources of a document ------------------------------------------

// StyleSource is either the text of a <style> element or the reference of
// a <link rel="stylesheet"> element.
type StyleSource struct {
	Inline string // CSS text of a <style> element
	Href   string // href of a <link> element
}

// IsLink is true if s references an external stylesheet.
func (s StyleSource) IsLink() bool {
	return s.Href != ""
}

var styleSourceSelector = cascadia.MustCompile(`style, link[rel]`)

// ExtractStyleSources visits an HTML parse tree and collects
// <style> and <link rel="stylesheet"> elements, in document order.
func ExtractStyleSources(htmldoc *html.Node) []StyleSource {
	if htmldoc == nil {
		return nil
	}
	var sources []StyleSource
	for _, n := range cascadia.QueryAll(htmldoc, styleSourceSelector) {
		switch n.DataAtom {
		case atom.Style:
			var b strings.Builder
			for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
				if ch.Type == html.TextNode {
					b.WriteString(ch.Data)
				}
			}
			sources = append(sources, StyleSource{Inline: b.String()})
		case atom.Link:
			if !isStylesheetLink(n) {
				continue
			}
			if href := attr(n, "href"); href != "" {
				sources = append(sources, StyleSource{Href: href})
			}
		}
	}
	tracer().Debugf("found %d style sources in document", len(sources))
	return sources
}

// ExtractStyleElements returns the content of <style> elements as
// style sheets. Style elements which fail to parse are skipped.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	var css []*CSSStyles
	for _, src := range ExtractStyleSources(htmldoc) {
		if src.IsLink() {
			continue
		}
		c, err := Parse(src.Inline)
		if err != nil {
			tracer().Errorf("cannot parse <style> element: %v", err)
			continue
		}
		css = append(css, c)
	}
	return css
}

func isStylesheetLink(n *html.Node) bool {
	for _, rel := range strings.Fields(attr(n, "rel")) {
		if strings.EqualFold(rel, "stylesheet") {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}
