package parser

import (
	"strings"

	apperrors "github.com/niiniyare/atomiccss/pkg/errors"
	"github.com/niiniyare/atomiccss/rule"
)

// filterFunctionOrder is the fixed composition order from spec §4.4:
// blur, brightness, contrast, grayscale, hue-rotate, invert, saturate,
// sepia, drop-shadow. ComposeAggregates emits the final "filter:"/
// "backdrop-filter:" declaration by walking this order and picking up
// whichever --tw-<prefix>blur etc custom properties are present on a rule.
var filterFunctionOrder = []string{"blur", "brightness", "contrast", "grayscale", "hue-rotate", "invert", "saturate", "sepia", "drop-shadow"}

type filterFuncSpec struct {
	name   string // matches filterFunctionOrder entries
	prefix string // token prefix, e.g. "blur-"
	cssFn  string // CSS function name, e.g. "blur"
	flag   bool   // true for bare keyword utilities (grayscale, invert, sepia)
}

var filterFuncs = []filterFuncSpec{
	{"blur", "blur-", "blur", false},
	{"brightness", "brightness-", "brightness", false},
	{"contrast", "contrast-", "contrast", false},
	{"grayscale", "grayscale", "grayscale", true},
	{"hue-rotate", "hue-rotate-", "hue-rotate", false},
	{"invert", "invert", "invert", true},
	{"saturate", "saturate-", "saturate", false},
	{"sepia", "sepia", "sepia", true},
	{"drop-shadow", "drop-shadow-", "drop-shadow", false},
}

func parseFilterToken(in Input) ([]rule.Declaration, bool, error) {
	return parseFilterFamily(in, "--tw-filter-", filterFuncs)
}

func parseBackdropToken(in Input) ([]rule.Declaration, bool, error) {
	backdropFuncs := make([]filterFuncSpec, len(filterFuncs))
	for i, f := range filterFuncs {
		backdropFuncs[i] = filterFuncSpec{f.name, "backdrop-" + f.prefix, f.cssFn, f.flag}
	}
	return parseFilterFamily(in, "--tw-backdrop-", backdropFuncs)
}

func parseFilterFamily(in Input, varPrefix string, funcs []filterFuncSpec) ([]rule.Declaration, bool, error) {
	for _, f := range funcs {
		if f.flag {
			if in.Base != f.prefix {
				continue
			}
			return []rule.Declaration{{Property: varPrefix + f.name, Value: f.cssFn + "(1)"}}, true, nil
		}
		var rest string
		switch {
		case in.Base == strings.TrimSuffix(f.prefix, "-"):
			rest = ""
		default:
			var ok bool
			rest, ok = strings.CutPrefix(in.Base, f.prefix)
			if !ok {
				continue
			}
		}
		value, err := resolveFilterValue(f.name, rest, in)
		if err != nil {
			return nil, false, err
		}
		return []rule.Declaration{{Property: varPrefix + f.name, Value: f.cssFn + "(" + value + ")"}}, true, nil
	}
	return nil, false, nil
}

// blurKeywords is Tailwind's blur radius scale, independent of the
// spacing scale (a blur-sm is not the same length as a spacing "sm").
var blurKeywords = map[string]string{
	"none": "0",
	"sm":   "4px",
	"":     "8px",
	"md":   "12px",
	"lg":   "16px",
	"xl":   "24px",
	"2xl":  "40px",
	"3xl":  "64px",
}

func resolveFilterValue(fn, rest string, in Input) (string, error) {
	v, err := parseValueTail(rest)
	if err != nil {
		return "", err
	}
	switch v.kind {
	case valueArbitrary, valueCustomProperty:
		return v.raw, nil
	default:
		switch fn {
		case "blur":
			if length, ok := blurKeywords[v.raw]; ok {
				return length, nil
			}
			return "", apperrors.NewErrorf(apperrors.InvalidValue, "invalid blur value %q", rest).WithPath(in.Base)
		case "hue-rotate":
			return v.raw + "deg", nil
		case "drop-shadow":
			if length, ok := in.Theme.Spacing(v.raw); ok {
				return length, nil
			}
			return v.raw, nil
		default:
			// brightness/contrast/saturate take a bare percentage.
			if _, ok := parseOpacityLiteral(v.raw); ok {
				return v.raw + "%", nil
			}
			return "", apperrors.NewErrorf(apperrors.InvalidValue, "invalid %s value %q", fn, rest).WithPath(in.Base)
		}
	}
}
