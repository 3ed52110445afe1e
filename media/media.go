/*
Package media evaluates CSS media query lists against a viewport.

We support the subset of Media Queries Level 4 which is useful for
re-arranging documents:

   screen, print and (min-width: 480px)
   not print and (orientation: landscape)
   (400px <= width < 64em)
   only screen and (min-aspect-ratio: 16/9)

Media types are all, screen and print. Features are width, height (with
min- and max- prefixes or in range syntax), orientation and aspect-ratio
(with min- and max- prefixes). Lengths are given in px, em or rem, where
1em = 1rem = 16px. Unknown media types, unknown features and malformed
queries never match, not even when negated.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package media

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'domino.media'.
func tracer() tracing.Trace {
	return tracing.Select("domino.media")
}

// Media types.
const (
	All    = "all"
	Screen = "screen"
	Print  = "print"
)

// Viewport describes the output device media queries are evaluated against.
type Viewport struct {
	Width  int    `json:"width" yaml:"width" mapstructure:"width"`    // in px
	Height int    `json:"height" yaml:"height" mapstructure:"height"` // in px
	Type   string `json:"type" yaml:"type" mapstructure:"type"`       // media type, defaults to screen
}

// Default is a desktop-sized screen.
var Default = Viewport{Width: 1280, Height: 800, Type: Screen}

func (vp Viewport) String() string {
	return fmt.Sprintf("%s %dx%d", vp.mediaType(), vp.Width, vp.Height)
}

func (vp Viewport) mediaType() string {
	if vp.Type == "" {
		return Screen
	}
	return strings.ToLower(vp.Type)
}

// Matches is true if directive, a comma-separated media query list, matches
// the viewport. An empty directive matches everything.
func (vp Viewport) Matches(directive string) bool {
	ok, err := Evaluate(directive, vp)
	if err != nil {
		tracer().Infof("media query %q: %v", directive, err)
	}
	return ok
}

// ErrSyntax is returned for malformed media queries.
var ErrSyntax = errors.New("media query syntax error")

// ErrUnknown is returned for unknown media types or features.
var ErrUnknown = errors.New("unknown media feature")

// Evaluate evaluates a media query list against a viewport. A list
// matches if any of its queries matches. Queries which cannot be evaluated
// are false; the first error encountered is returned along with the result
// of the remaining queries.
func Evaluate(directive string, vp Viewport) (bool, error) {
	directive = strings.TrimSpace(directive)
	if directive == "" {
		return true, nil
	}
	var firstErr error
	result := false
	for _, q := range splitList(directive) {
		ok, err := evalQuery(q, vp)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		result = result || ok
	}
	return result, firstErr
}

// splitList splits a media query list at top-level commas.
func splitList(s string) []string {
	var list []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				list = append(list, s[start:i])
				start = i + 1
			}
		}
	}
	return append(list, s[start:])
}

// token is either a word or a parenthesized feature expression.
type token struct {
	text    string
	feature bool
}

func tokenize(q string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(q) {
		c := q[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			depth, j := 0, i
			for ; j < len(q); j++ {
				if q[j] == '(' {
					depth++
				} else if q[j] == ')' {
					depth--
					if depth == 0 {
						break
					}
				}
			}
			if j == len(q) {
				return nil, fmt.Errorf("%w: unbalanced parenthesis in %q", ErrSyntax, q)
			}
			tokens = append(tokens, token{text: strings.TrimSpace(q[i+1 : j]), feature: true})
			i = j + 1
		case c == ')':
			return nil, fmt.Errorf("%w: unexpected ')' in %q", ErrSyntax, q)
		default:
			j := i
			for j < len(q) && !strings.ContainsRune(" \t\n\r()", rune(q[j])) {
				j++
			}
			tokens = append(tokens, token{text: strings.ToLower(q[i:j])})
			i = j
		}
	}
	return tokens, nil
}

func evalQuery(q string, vp Viewport) (bool, error) {
	tokens, err := tokenize(q)
	if err != nil {
		return false, err
	}
	if len(tokens) == 0 {
		return false, fmt.Errorf("%w: empty media query", ErrSyntax)
	}
	negate := false
	if !tokens[0].feature && (tokens[0].text == "not" || tokens[0].text == "only") {
		negate = tokens[0].text == "not"
		tokens = tokens[1:]
	}
	result := true
	expectFeature := true
	if len(tokens) > 0 && !tokens[0].feature { // media type
		switch t := tokens[0].text; t {
		case All:
		case Screen, Print:
			result = vp.mediaType() == t
		default:
			return false, fmt.Errorf("%w: media type %q", ErrUnknown, t)
		}
		tokens = tokens[1:]
		expectFeature = false
	}
	for len(tokens) > 0 {
		if !expectFeature {
			if tokens[0].feature || tokens[0].text != "and" {
				return false, fmt.Errorf("%w: expected 'and' in %q", ErrSyntax, q)
			}
			tokens = tokens[1:]
			if len(tokens) == 0 {
				return false, fmt.Errorf("%w: dangling 'and' in %q", ErrSyntax, q)
			}
		}
		if !tokens[0].feature {
			return false, fmt.Errorf("%w: expected feature, have %q", ErrSyntax, tokens[0].text)
		}
		ok, err := evalFeature(tokens[0].text, vp)
		if err != nil {
			return false, err
		}
		result = result && ok
		tokens = tokens[1:]
		expectFeature = false
	}
	if expectFeature { // "not" or "only" without anything else
		return false, fmt.Errorf("%w: incomplete query %q", ErrSyntax, q)
	}
	return result != negate, nil
}
