/*
Package rules holds the rule model for CSS-driven re-parenting and
re-ordering.

Rules are extracted from stylesheets (see Parse) or loaded from compiled
bundles (see Load). A Stylesheet consists of a base RuleSet and a list of
media layers, each of them carrying a RuleSet of its own:

   .title  { -domino-container: header; }
   @media only screen and (min-width: 480px) {
       footer { -domino-order: 50; }
   }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rules

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domino.rules'.
func tracer() tracing.Trace {
	return tracing.Select("domino.rules")
}

// ContainerRule moves nodes matching Selector into the first node matching
// Container.
type ContainerRule struct {
	Selector  string `json:"selector" yaml:"selector"`
	Container string `json:"value" yaml:"value"`
}

// OrderRule ranks nodes matching Selector among their siblings. Lower ranks
// go first.
type OrderRule struct {
	Selector string `json:"selector" yaml:"selector"`
	Order    int    `json:"value" yaml:"value"`
}

// RuleSet is a list of container rules and a list of order rules, each in
// declaration order.
type RuleSet struct {
	Container []ContainerRule `json:"container" yaml:"container"`
	Order     []OrderRule     `json:"order" yaml:"order"`
}

// Empty is true if neither container nor order rules are present.
func (rs RuleSet) Empty() bool {
	return len(rs.Container) == 0 && len(rs.Order) == 0
}

// Len returns the number of rules.
func (rs RuleSet) Len() int {
	return len(rs.Container) + len(rs.Order)
}

func (rs *RuleSet) append(other RuleSet) {
	rs.Container = append(rs.Container, other.Container...)
	rs.Order = append(rs.Order, other.Order...)
}

func (rs *RuleSet) normalize() {
	if rs.Container == nil {
		rs.Container = []ContainerRule{}
	}
	if rs.Order == nil {
		rs.Order = []OrderRule{}
	}
}

// MediaLayer is a rule set which applies only if Directive (a media query
// list) currently matches.
type MediaLayer struct {
	Directive string  `json:"directive" yaml:"directive"`
	Rules     RuleSet `json:"rules" yaml:"rules"`
}

// Stylesheet is the unit rule sources deliver: base rules, followed by media
// layers in declaration order.
type Stylesheet struct {
	Rules        RuleSet      `json:"rules" yaml:"rules"`
	MediaQueries []MediaLayer `json:"mediaQueries" yaml:"mediaQueries"`
}

// NewStylesheet creates an empty stylesheet.
func NewStylesheet() *Stylesheet {
	ss := &Stylesheet{}
	ss.normalize()
	return ss
}

// Empty is true if the stylesheet carries no rules at all.
func (ss *Stylesheet) Empty() bool {
	if ss == nil {
		return true
	}
	if !ss.Rules.Empty() {
		return false
	}
	for _, m := range ss.MediaQueries {
		if !m.Rules.Empty() {
			return false
		}
	}
	return true
}

// Append concatenates the rules of other to ss: base rules to base rules,
// media layers after the media layers of ss.
func (ss *Stylesheet) Append(other *Stylesheet) *Stylesheet {
	if other == nil {
		return ss
	}
	ss.Rules.append(other.Rules)
	ss.MediaQueries = append(ss.MediaQueries, other.MediaQueries...)
	return ss
}

// Merge concatenates a list of stylesheets into a new one, preserving order.
func Merge(sheets ...*Stylesheet) *Stylesheet {
	ss := NewStylesheet()
	for _, s := range sheets {
		ss.Append(s)
	}
	return ss
}

// normalize replaces nil slices by empty ones, so that encoded bundles
// always show lists.
func (ss *Stylesheet) normalize() {
	ss.Rules.normalize()
	if ss.MediaQueries == nil {
		ss.MediaQueries = []MediaLayer{}
	}
	for i := range ss.MediaQueries {
		ss.MediaQueries[i].Rules.normalize()
	}
}
