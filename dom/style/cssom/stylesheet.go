package cssom

import "github.com/npillmayer/domino/dom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// extraction of placement rules, we introduce an interface
// for CSS stylesheets. Clients will have to
// provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the top-level rules of a stylesheet
}

// Rule is the type stylesheets consists of. A rule is either a qualified
// rule (selectors and declarations) or an at-rule. At-rules like @media
// embed other rules.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	SelectorList() []string      // selectors of a qualified rule, split at commas
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	AtKeyword() string           // at-rule name, e.g. "@media"; empty for qualified rules
	Embedded() []Rule            // rules nested within an at-rule
}

// IsMedia is a predicate: is r a @media at-rule?
func IsMedia(r Rule) bool {
	return r != nil && r.AtKeyword() == "@media"
}
