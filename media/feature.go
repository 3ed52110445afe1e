package media

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// remSize is the size of 1em and 1rem in px.
const remSize = 16.0

func evalFeature(expr string, vp Viewport) (bool, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	if name, value, ok := strings.Cut(expr, ":"); ok {
		return evalPlain(strings.TrimSpace(name), strings.TrimSpace(value), vp)
	}
	if strings.ContainsAny(expr, "<>=") {
		return evalRange(expr, vp)
	}
	switch expr { // boolean context
	case "width":
		return vp.Width > 0, nil
	case "height":
		return vp.Height > 0, nil
	case "orientation", "aspect-ratio":
		return true, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknown, expr)
}

// evalPlain evaluates features of form "name: value".
func evalPlain(name, value string, vp Viewport) (bool, error) {
	prefix, feature := "", name
	if strings.HasPrefix(name, "min-") || strings.HasPrefix(name, "max-") {
		prefix, feature = name[:3], name[4:]
	}
	switch feature {
	case "width", "height":
		l, err := parseLength(value)
		if err != nil {
			return false, err
		}
		return compare(prefix, float64(dimension(feature, vp)), l), nil
	case "aspect-ratio":
		r, err := parseRatio(value)
		if err != nil {
			return false, err
		}
		if vp.Height == 0 {
			return false, nil
		}
		return compare(prefix, float64(vp.Width)/float64(vp.Height), r), nil
	case "orientation":
		if prefix != "" {
			break
		}
		portrait := vp.Height >= vp.Width
		switch value {
		case "portrait":
			return portrait, nil
		case "landscape":
			return !portrait, nil
		}
		return false, fmt.Errorf("%w: orientation %q", ErrSyntax, value)
	}
	return false, fmt.Errorf("%w: %q", ErrUnknown, name)
}

func dimension(feature string, vp Viewport) int {
	if feature == "height" {
		return vp.Height
	}
	return vp.Width
}

func compare(prefix string, actual, expected float64) bool {
	switch prefix {
	case "min":
		return actual >= expected
	case "max":
		return actual <= expected
	}
	return actual == expected
}

var rangeSyntax = regexp.MustCompile(
	`^([^<>=]+?)\s*(<=|>=|<|>|=)\s*([^<>=]+?)(?:\s*(<=|>=|<|>|=)\s*([^<>=]+?))?$`)

// evalRange evaluates features in range syntax, e.g. "width >= 480px" or
// "30em < width <= 60em".
func evalRange(expr string, vp Viewport) (bool, error) {
	m := rangeSyntax.FindStringSubmatch(expr)
	if m == nil {
		return false, fmt.Errorf("%w: %q", ErrSyntax, expr)
	}
	left, op1, mid, op2, right := strings.TrimSpace(m[1]), m[2], strings.TrimSpace(m[3]), m[4], strings.TrimSpace(m[5])
	if op2 != "" { // value op feature op value
		ok1, err := rangeTerm(left, op1, mid, vp)
		if err != nil {
			return false, err
		}
		ok2, err := rangeTerm(mid, op2, right, vp)
		if err != nil {
			return false, err
		}
		return ok1 && ok2, nil
	}
	return rangeTerm(left, op1, mid, vp)
}

// rangeTerm evaluates "a op b", where one of a and b is a feature name.
func rangeTerm(a, op, b string, vp Viewport) (bool, error) {
	x, err := rangeOperand(a, vp)
	if err != nil {
		return false, err
	}
	y, err := rangeOperand(b, vp)
	if err != nil {
		return false, err
	}
	switch op {
	case "<":
		return x < y, nil
	case "<=":
		return x <= y, nil
	case ">":
		return x > y, nil
	case ">=":
		return x >= y, nil
	}
	return x == y, nil
}

func rangeOperand(s string, vp Viewport) (float64, error) {
	switch s {
	case "width":
		return float64(vp.Width), nil
	case "height":
		return float64(vp.Height), nil
	case "aspect-ratio":
		if vp.Height == 0 {
			return 0, nil
		}
		return float64(vp.Width) / float64(vp.Height), nil
	}
	if strings.Contains(s, "/") {
		return parseRatio(s)
	}
	return parseLength(s)
}

// parseLength parses a length in px, em or rem and returns it in px.
// A plain number is taken as px.
func parseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)
	unit := strings.TrimLeft(s, "+-.0123456789")
	num := strings.TrimSuffix(s, unit)
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: length %q", ErrSyntax, s)
	}
	switch unit {
	case "", "px":
		return v, nil
	case "em", "rem":
		return v * remSize, nil
	}
	return 0, fmt.Errorf("%w: unit %q", ErrUnknown, unit)
}

// parseRatio parses "16/9" or "1.5".
func parseRatio(s string) (float64, error) {
	num, den, ok := strings.Cut(s, "/")
	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: ratio %q", ErrSyntax, s)
	}
	if !ok {
		return n, nil
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if err != nil || d == 0 {
		return 0, fmt.Errorf("%w: ratio %q", ErrSyntax, s)
	}
	return n / d, nil
}
