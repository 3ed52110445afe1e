package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/npillmayer/domino/dom/style"
	"github.com/npillmayer/domino/dom/style/cssom"
	"github.com/npillmayer/domino/dom/style/cssom/douceuradapter"
)

// Subject selectors must be simple: a selector with a combinator is
// never a placement subject.
var combinator = regexp.MustCompile(`\s|>|\+|~`)

// Parse extracts placement rules from CSS text.
func Parse(css string) (*Stylesheet, error) {
	sheet, err := douceuradapter.Parse(css)
	if err != nil {
		return nil, fmt.Errorf("cannot parse stylesheet: %w", err)
	}
	return FromStyleSheet(sheet), nil
}

// FromStyleSheet extracts placement rules from a CSSOM stylesheet.
// Top-level qualified rules contribute to the base rule set, @media blocks
// become media layers if they contribute at least one rule. Everything
// else is ignored.
func FromStyleSheet(sheet cssom.StyleSheet) *Stylesheet {
	ss := NewStylesheet()
	if sheet == nil || sheet.Empty() {
		return ss
	}
	for _, r := range sheet.Rules() {
		switch {
		case cssom.IsMedia(r):
			layer := MediaLayer{Directive: strings.TrimSpace(r.Selector())}
			layer.Rules.normalize()
			for _, emb := range r.Embedded() {
				extract(emb, &layer.Rules)
			}
			if !layer.Rules.Empty() {
				ss.MediaQueries = append(ss.MediaQueries, layer)
			}
		case r.AtKeyword() == "":
			extract(r, &ss.Rules)
		}
	}
	tracer().Debugf("parsed %d base rules and %d media layers", ss.Rules.Len(), len(ss.MediaQueries))
	return ss
}

// extract appends the placement declarations of a qualified rule to rs, once
// per simple selector of the rule's selector list.
func extract(r cssom.Rule, rs *RuleSet) {
	if r.AtKeyword() != "" {
		return
	}
	for _, sel := range r.SelectorList() {
		if combinator.MatchString(sel) {
			tracer().Debugf("skipping selector with combinator: %q", sel)
			continue
		}
		for _, key := range r.Properties() {
			switch strings.ToLower(key) {
			case style.PropContainer:
				target := r.Value(key).Selector()
				if target == "" {
					tracer().P("selector", sel).Infof("dropping container rule without target")
					continue
				}
				rs.Container = append(rs.Container, ContainerRule{
					Selector:  sel,
					Container: target,
				})
			case style.PropOrder:
				rank, err := r.Value(key).Rank()
				if err != nil {
					tracer().P("selector", sel).Infof("dropping order rule: %v", err)
					continue
				}
				rs.Order = append(rs.Order, OrderRule{Selector: sel, Order: rank})
			}
		}
	}
}
