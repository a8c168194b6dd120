package parser

import (
	"strconv"
	"strings"

	apperrors "github.com/niiniyare/atomiccss/pkg/errors"
	"github.com/niiniyare/atomiccss/rule"
	"github.com/niiniyare/atomiccss/theme"
)

var displayKeywords = map[string]string{
	"block":        "block",
	"inline-block": "inline-block",
	"inline":       "inline",
	"flex":         "flex",
	"inline-flex":  "inline-flex",
	"grid":         "grid",
	"inline-grid":  "inline-grid",
	"table":        "table",
	"contents":     "contents",
	"hidden":       "none",
	"flow-root":    "flow-root",
}

var positionKeywords = map[string]struct{}{
	"static": {}, "fixed": {}, "absolute": {}, "relative": {}, "sticky": {},
}

var overflowAxes = map[string]string{
	"overflow":   "overflow",
	"overflow-x": "overflow-x",
	"overflow-y": "overflow-y",
}

var overflowKeywords = map[string]struct{}{
	"auto": {}, "hidden": {}, "clip": {}, "visible": {}, "scroll": {},
}

var insetPrefixes = map[string][]string{
	"inset-x": {"left", "right"},
	"inset-y": {"top", "bottom"},
	"inset":   {"top", "right", "bottom", "left"},
	"top":     {"top"},
	"right":   {"right"},
	"bottom":  {"bottom"},
	"left":    {"left"},
}

var insetPrefixOrder = []string{"inset-x", "inset-y", "inset", "top", "right", "bottom", "left"}

// parseLayout implements spec §4.4's layout family: display, position,
// inset/top/right/bottom/left, overflow, and z-index.
func parseLayout(in Input) ([]rule.Declaration, bool, error) {
	if css, ok := displayKeywords[in.Base]; ok {
		return []rule.Declaration{{Property: "display", Value: css}}, true, nil
	}
	if _, ok := positionKeywords[in.Base]; ok {
		return []rule.Declaration{{Property: "position", Value: in.Base}}, true, nil
	}

	for prefix, property := range overflowAxes {
		rest, ok := strings.CutPrefix(in.Base, prefix+"-")
		if !ok {
			continue
		}
		if _, ok := overflowKeywords[rest]; ok {
			return []rule.Declaration{{Property: property, Value: rest}}, true, nil
		}
	}

	for _, prefix := range insetPrefixOrder {
		rest, ok := cutPrefix(in.Base, prefix)
		if !ok {
			continue
		}
		properties := insetPrefixes[prefix]
		value, err := resolveInsetValue(rest, in)
		if err != nil {
			return nil, false, err
		}
		decls := make([]rule.Declaration, len(properties))
		for i, p := range properties {
			decls[i] = rule.Declaration{Property: p, Value: value}
		}
		return decls, true, nil
	}

	if rest, ok := strings.CutPrefix(in.Base, "z-"); ok {
		v, err := parseValueTail(rest)
		if err != nil {
			return nil, false, err
		}
		switch v.kind {
		case valueArbitrary, valueCustomProperty:
			return []rule.Declaration{{Property: "z-index", Value: v.raw}}, true, nil
		default:
			if rest == "auto" {
				return []rule.Declaration{{Property: "z-index", Value: "auto"}}, true, nil
			}
			if isDigits(rest) {
				return []rule.Declaration{{Property: "z-index", Value: rest}}, true, nil
			}
		}
	}

	return nil, false, nil
}

func resolveInsetValue(rest string, in Input) (string, error) {
	if rest == "auto" {
		return "auto", nil
	}
	if rest == "full" {
		return "100%", nil
	}
	neg := strings.HasPrefix(rest, "-")
	if neg {
		rest = rest[1:]
	}
	if in.Opacity != "" {
		if n, err1 := strconv.Atoi(rest); err1 == nil {
			if d, err2 := strconv.Atoi(in.Opacity); err2 == nil {
				pct, err := theme.Fraction(n, d)
				if err != nil {
					return "", apperrors.WrapError(apperrors.InvalidValue, "invalid fraction", err).WithPath(in.Base)
				}
				if neg {
					return negate(pct), nil
				}
				return pct, nil
			}
		}
	}
	v, err := parseValueTail(rest)
	if err != nil {
		return "", err
	}
	if v.kind == valueArbitrary || v.kind == valueCustomProperty {
		if neg {
			return negate(v.raw), nil
		}
		return v.raw, nil
	}
	length, ok := in.Theme.Spacing(v.raw)
	if !ok {
		return "", apperrors.NewErrorf(apperrors.ThemeMiss, "unknown spacing key %q", v.raw).WithPath(in.Base)
	}
	if neg {
		return negate(length), nil
	}
	return length, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
