/*
Package style holds raw CSS property values and the vocabulary of
placement properties.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     -domino-order: 10
//
// a property value of "10" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

func (p Property) String() string {
	return string(p)
}

// Selector interprets a property value as a CSS selector. Surrounding
// white space and quotes are removed:
//
//     -domino-container: ".header-container"   =>  .header-container
//
func (p Property) Selector() string {
	s := strings.TrimSpace(string(p))
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// Rank interprets a property value as an integer rank. Ranks may be negative.
// Like JavaScript's parseInt, an optional sign and the leading digits are
// read and anything after them is ignored:
//
//     "2.5"  =>  2
//     "10px" =>  10
//
// A value without leading digits is not a rank.
func (p Property) Rank() (int, error) {
	s := strings.TrimSpace(string(p))
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, fmt.Errorf("property value %q is not an integer rank", s)
	}
	r, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, fmt.Errorf("property value %q is out of range for a rank", s)
	}
	return r, nil
}

// --- Placement properties -------------------------------------------------

// Property keys for CSS-driven placement of elements.
//
//     .cta   { -domino-container: .card; }   // move .cta into .card
//     .price { -domino-order: -1; }          // .price goes first
//
const (
	PropContainer = "-domino-container"
	PropOrder     = "-domino-order"
)

// IsPlacementProperty is true for the property keys of placement rules.
// Keys are compared case-insensitively.
func IsPlacementProperty(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case PropContainer, PropOrder:
		return true
	}
	return false
}
