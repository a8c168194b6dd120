package parser

import (
	"strings"

	apperrors "github.com/niiniyare/atomiccss/pkg/errors"
	"github.com/niiniyare/atomiccss/rule"
)

var borderWidthSides = map[string][]string{
	"border":   {"border-top-width", "border-right-width", "border-bottom-width", "border-left-width"},
	"border-t": {"border-top-width"},
	"border-r": {"border-right-width"},
	"border-b": {"border-bottom-width"},
	"border-l": {"border-left-width"},
	"border-x": {"border-left-width", "border-right-width"},
	"border-y": {"border-top-width", "border-bottom-width"},
}

var borderWidthOrder = []string{"border-t", "border-r", "border-b", "border-l", "border-x", "border-y", "border"}

var borderStyles = map[string]struct{}{
	"solid": {}, "dashed": {}, "dotted": {}, "double": {}, "hidden": {}, "none": {},
}

var radiusSides = map[string][]string{
	"rounded":    {"border-radius"},
	"rounded-t":  {"border-top-left-radius", "border-top-right-radius"},
	"rounded-r":  {"border-top-right-radius", "border-bottom-right-radius"},
	"rounded-b":  {"border-bottom-left-radius", "border-bottom-right-radius"},
	"rounded-l":  {"border-top-left-radius", "border-bottom-left-radius"},
	"rounded-tl": {"border-top-left-radius"},
	"rounded-tr": {"border-top-right-radius"},
	"rounded-br": {"border-bottom-right-radius"},
	"rounded-bl": {"border-bottom-left-radius"},
}

var radiusOrder = []string{"rounded-tl", "rounded-tr", "rounded-br", "rounded-bl", "rounded-t", "rounded-r", "rounded-b", "rounded-l", "rounded"}

var radiusKeywords = map[string]string{
	"none": "0px", "sm": "0.125rem", "md": "0.375rem", "lg": "0.5rem",
	"xl": "0.75rem", "2xl": "1rem", "3xl": "1.5rem", "full": "9999px",
}

// parseBorder implements spec §4.4's border family: border-width (and its
// per-side variants), border-style, border-radius, and divide-width (the
// child-combinator companion to divide-color in the color family).
func parseBorder(in Input) ([]rule.Declaration, bool, error) {
	for _, prefix := range radiusOrder {
		rest, ok := cutPrefix(in.Base, prefix)
		if !ok {
			continue
		}
		properties := radiusSides[prefix]
		value, matched, err := resolveRadiusValue(rest, in)
		if err != nil {
			return nil, false, err
		}
		if !matched {
			continue
		}
		decls := make([]rule.Declaration, len(properties))
		for i, p := range properties {
			decls[i] = rule.Declaration{Property: p, Value: value}
		}
		return decls, true, nil
	}

	if _, ok := borderStyles[strings.TrimPrefix(in.Base, "border-")]; ok && strings.HasPrefix(in.Base, "border-") {
		return []rule.Declaration{{Property: "border-style", Value: strings.TrimPrefix(in.Base, "border-")}}, true, nil
	}

	for _, prefix := range borderWidthOrder {
		rest, ok := "", in.Base == prefix
		if !ok {
			rest, ok = cutPrefix(in.Base, prefix)
			if !ok || !(isDigits(rest) || strings.HasPrefix(rest, "[") || strings.HasPrefix(rest, "(")) {
				continue
			}
			rest = "-" + rest
		}
		properties := borderWidthSides[prefix]
		value, matched, err := resolveBorderWidthValue(rest)
		if err != nil {
			return nil, false, err
		}
		if !matched {
			continue
		}
		decls := make([]rule.Declaration, len(properties))
		for i, p := range properties {
			decls[i] = rule.Declaration{Property: p, Value: value}
		}
		return decls, true, nil
	}

	for _, axis := range []string{"x", "y"} {
		prefix := "divide-" + axis
		if in.Base == prefix+"-reverse" {
			return []rule.Declaration{{Property: "--tw-divide-" + axis + "-reverse", Value: "1"}}, true, nil
		}
		rest, ok := strings.CutPrefix(in.Base, prefix)
		if !ok {
			continue
		}
		value, matched, err := resolveBorderWidthValue(rest)
		if err != nil {
			return nil, false, err
		}
		if !matched {
			continue
		}
		var properties []string
		if axis == "x" {
			properties = []string{"border-right-width", "border-left-width"}
		} else {
			properties = []string{"border-top-width", "border-bottom-width"}
		}
		decls := make([]rule.Declaration, len(properties))
		for i, p := range properties {
			decls[i] = rule.Declaration{Property: p, Value: value}
		}
		return decls, true, nil
	}

	return nil, false, nil
}

func resolveRadiusValue(rest string, in Input) (string, bool, error) {
	if rest == "" {
		return radiusKeywords["sm"], true, nil
	}
	if css, ok := radiusKeywords[rest]; ok {
		return css, true, nil
	}
	v, err := parseValueTail(rest)
	if err != nil {
		return "", true, err
	}
	if v.kind == valueArbitrary || v.kind == valueCustomProperty {
		return v.raw, true, nil
	}
	return "", false, nil
}

func resolveBorderWidthValue(rest string) (string, bool, error) {
	if rest == "" {
		return "1px", true, nil
	}
	rest, ok := strings.CutPrefix(rest, "-")
	if !ok {
		return "", false, nil
	}
	v, err := parseValueTail(rest)
	if err != nil {
		return "", false, err
	}
	switch v.kind {
	case valueArbitrary, valueCustomProperty:
		return v.raw, true, nil
	default:
		if isDigits(v.raw) {
			return v.raw + "px", true, nil
		}
		return "", false, apperrors.NewErrorf(apperrors.InvalidValue, "invalid border width %q", rest)
	}
}
