package parser

import (
	"strings"

	apperrors "github.com/niiniyare/atomiccss/pkg/errors"
	"github.com/niiniyare/atomiccss/rule"
)

// transformFunctionOrder is the fixed composition order from spec §4.4:
// translate, rotate, scale, skew. sealTransform (aggregate.go) builds the
// final "transform:" declaration in this same order, written out in its own
// code; it does not read this slice.
var transformFunctionOrder = []string{"translate", "rotate", "scale", "skew"}

func parseTransformToken(in Input) ([]rule.Declaration, bool, error) {
	if in.Base == "perspective-none" {
		return []rule.Declaration{{Property: "perspective", Value: "none"}}, true, nil
	}
	if rest, ok := strings.CutPrefix(in.Base, "perspective-"); ok {
		v, err := parseValueTail(rest)
		if err != nil {
			return nil, false, err
		}
		if v.kind == valueArbitrary {
			return []rule.Declaration{{Property: "perspective", Value: v.raw}}, true, nil
		}
		return nil, false, nil
	}

	for _, spec := range []struct {
		prefix, varName, axis string
	}{
		{"translate-x-", "--tw-translate-x", ""},
		{"translate-y-", "--tw-translate-y", ""},
		{"rotate-", "--tw-rotate", ""},
		{"scale-x-", "--tw-scale-x", ""},
		{"scale-y-", "--tw-scale-y", ""},
		{"scale-", "--tw-scale-xy", ""},
		{"skew-x-", "--tw-skew-x", ""},
		{"skew-y-", "--tw-skew-y", ""},
	} {
		rest, ok := strings.CutPrefix(in.Base, spec.prefix)
		if !ok {
			continue
		}
		value, err := resolveTransformValue(spec.prefix, rest, in)
		if err != nil {
			return nil, false, err
		}
		return []rule.Declaration{{Property: spec.varName, Value: value}}, true, nil
	}
	return nil, false, nil
}

func resolveTransformValue(prefix, rest string, in Input) (string, error) {
	v, err := parseValueTail(rest)
	if err != nil {
		return "", err
	}
	switch v.kind {
	case valueArbitrary, valueCustomProperty:
		if v.negative {
			return negate(v.raw), nil
		}
		return v.raw, nil
	default:
		switch {
		case strings.HasPrefix(prefix, "translate"):
			length, ok := in.Theme.Spacing(v.raw)
			if !ok {
				return "", apperrors.NewErrorf(apperrors.ThemeMiss, "unknown spacing key %q", v.raw).WithPath(in.Base)
			}
			if v.negative {
				return negate(length), nil
			}
			return length, nil
		case strings.HasPrefix(prefix, "rotate"), strings.HasPrefix(prefix, "skew"):
			deg := v.raw + "deg"
			if v.negative {
				return negate(deg), nil
			}
			return deg, nil
		case strings.HasPrefix(prefix, "scale"):
			num, ok := asPercent100(v.raw)
			if !ok {
				return "", apperrors.NewErrorf(apperrors.InvalidValue, "invalid scale value %q", rest).WithPath(in.Base)
			}
			return num, nil
		}
	}
	return "", apperrors.NewErrorf(apperrors.InvalidValue, "unrecognized transform value %q", rest).WithPath(in.Base)
}

// asPercent100 converts a scale-N integer (percent of 100) into a decimal
// transform factor, e.g. "150" -> "1.50", "75" -> "0.75".
func asPercent100(s string) (string, bool) {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if s == "" {
		return "", false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", false
		}
	}
	whole := s
	if len(s) <= 2 {
		// pad to at least 3 digits so the last two are the decimal part
		for len(whole) < 3 {
			whole = "0" + whole
		}
	}
	intPart := whole[:len(whole)-2]
	fracPart := whole[len(whole)-2:]
	for len(intPart) > 1 && intPart[0] == '0' {
		intPart = intPart[1:]
	}
	out := intPart + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out, true
}
