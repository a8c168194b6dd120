package parser

import (
	"strings"

	apperrors "github.com/niiniyare/atomiccss/pkg/errors"
	"github.com/niiniyare/atomiccss/rule"
)

var boxShadows = map[string]string{
	"sm":    "0 1px 2px 0 rgb(0 0 0 / 0.05)",
	"":      "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)",
	"md":    "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
	"lg":    "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
	"xl":    "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
	"2xl":   "0 25px 50px -12px rgb(0 0 0 / 0.25)",
	"inner": "inset 0 2px 4px 0 rgb(0 0 0 / 0.05)",
	"none":  "0 0 #0000",
}

var mixBlendModes = map[string]struct{}{
	"normal": {}, "multiply": {}, "screen": {}, "overlay": {}, "darken": {}, "lighten": {},
	"color-dodge": {}, "color-burn": {}, "hard-light": {}, "soft-light": {}, "difference": {},
	"exclusion": {}, "hue": {}, "saturation": {}, "color": {}, "luminosity": {}, "plus-lighter": {},
}

// parseEffects implements spec §4.4's effects family: box-shadow, opacity,
// mix-blend-mode, background-blend-mode, and ring-width (the non-color
// ring utility; ring-<color> is handled by the color family).
func parseEffects(in Input) ([]rule.Declaration, bool, error) {
	if in.Base == "shadow" {
		return []rule.Declaration{{Property: "box-shadow", Value: boxShadows[""]}}, true, nil
	}
	if rest, ok := strings.CutPrefix(in.Base, "shadow-"); ok {
		if css, ok := boxShadows[rest]; ok {
			return []rule.Declaration{{Property: "box-shadow", Value: css}}, true, nil
		}
		v, err := parseValueTail(rest)
		if err != nil {
			return nil, false, err
		}
		if v.kind == valueArbitrary || v.kind == valueCustomProperty {
			return []rule.Declaration{{Property: "box-shadow", Value: v.raw}}, true, nil
		}
	}

	if rest, ok := strings.CutPrefix(in.Base, "opacity-"); ok {
		v, err := parseValueTail(rest)
		if err != nil {
			return nil, false, err
		}
		switch v.kind {
		case valueArbitrary, valueCustomProperty:
			return []rule.Declaration{{Property: "opacity", Value: v.raw}}, true, nil
		default:
			if pct, ok := parseOpacityLiteral(rest); ok {
				n, err := opacityFraction(pct)
				if err != nil {
					return nil, false, err
				}
				return []rule.Declaration{{Property: "opacity", Value: n}}, true, nil
			}
		}
	}

	if rest, ok := strings.CutPrefix(in.Base, "mix-blend-"); ok {
		if _, ok := mixBlendModes[rest]; ok {
			return []rule.Declaration{{Property: "mix-blend-mode", Value: rest}}, true, nil
		}
	}
	if rest, ok := strings.CutPrefix(in.Base, "bg-blend-"); ok {
		if _, ok := mixBlendModes[rest]; ok {
			return []rule.Declaration{{Property: "background-blend-mode", Value: rest}}, true, nil
		}
	}

	if in.Base == "ring" {
		return []rule.Declaration{{Property: "--tw-ring-offset-shadow", Value: "var(--tw-ring-inset) 0 0 0 var(--tw-ring-offset-width) var(--tw-ring-offset-color)"}, {Property: "box-shadow", Value: "var(--tw-ring-offset-shadow), var(--tw-ring-shadow), 0 0 #0000"}, {Property: "--tw-ring-width", Value: "3px"}}, true, nil
	}
	if rest, ok := strings.CutPrefix(in.Base, "ring-"); ok {
		if rest == "inset" {
			return []rule.Declaration{{Property: "--tw-ring-inset", Value: "inset"}}, true, nil
		}
		v, err := parseValueTail(rest)
		if err != nil {
			return nil, false, err
		}
		width := ""
		switch v.kind {
		case valueArbitrary, valueCustomProperty:
			width = v.raw
		default:
			if isDigits(v.raw) {
				width = v.raw + "px"
			}
		}
		if width != "" {
			return []rule.Declaration{{Property: "--tw-ring-offset-shadow", Value: "var(--tw-ring-inset) 0 0 0 var(--tw-ring-offset-width) var(--tw-ring-offset-color)"}, {Property: "box-shadow", Value: "var(--tw-ring-offset-shadow), var(--tw-ring-shadow), 0 0 #0000"}, {Property: "--tw-ring-width", Value: width}}, true, nil
		}
	}

	return nil, false, nil
}

// opacityFraction converts an integer percent literal like "50" to the
// decimal form CSS opacity expects ("0.5"), matching the theme package's
// fraction-formatting convention of trimming trailing zeros.
func opacityFraction(pct string) (string, error) {
	for i := 0; i < len(pct); i++ {
		if pct[i] < '0' || pct[i] > '9' {
			return "", apperrors.NewErrorf(apperrors.InvalidValue, "invalid opacity percent %q", pct)
		}
	}
	whole := pct
	for len(whole) < 3 {
		whole = "0" + whole
	}
	intPart := whole[:len(whole)-2]
	fracPart := whole[len(whole)-2:]
	for len(intPart) > 1 && intPart[0] == '0' {
		intPart = intPart[1:]
	}
	for len(fracPart) > 0 && fracPart[len(fracPart)-1] == '0' {
		fracPart = fracPart[:len(fracPart)-1]
	}
	if fracPart == "" {
		return intPart, nil
	}
	return intPart + "." + fracPart, nil
}
