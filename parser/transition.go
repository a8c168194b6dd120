package parser

import (
	"strings"

	apperrors "github.com/niiniyare/atomiccss/pkg/errors"
	"github.com/niiniyare/atomiccss/rule"
)

var easeKeywords = map[string]string{
	"linear": "linear",
	"in":     "cubic-bezier(0.4, 0, 1, 1)",
	"out":    "cubic-bezier(0, 0, 0.2, 1)",
	"in-out": "cubic-bezier(0.4, 0, 0.2, 1)",
}

var transitionPropertyKeywords = map[string]string{
	"none":      "none",
	"all":       "all",
	"colors":    "color, background-color, border-color, text-decoration-color, fill, stroke",
	"opacity":   "opacity",
	"shadow":    "box-shadow",
	"transform": "transform",
}

// parseTransition implements spec §4.4's transition family:
// transition-property longhands plus duration/timing-function/delay,
// distinct from animation.go's animate-* keyframe-playback family.
func parseTransition(in Input) ([]rule.Declaration, bool, error) {
	if in.Base == "transition" {
		return []rule.Declaration{{Property: "transition-property", Value: "color, background-color, border-color, text-decoration-color, fill, stroke, opacity, box-shadow, transform, filter, backdrop-filter"}}, true, nil
	}
	if rest, ok := strings.CutPrefix(in.Base, "transition-"); ok {
		if css, ok := transitionPropertyKeywords[rest]; ok {
			return []rule.Declaration{{Property: "transition-property", Value: css}}, true, nil
		}
		v, err := parseValueTail(rest)
		if err == nil && (v.kind == valueArbitrary || v.kind == valueCustomProperty) {
			return []rule.Declaration{{Property: "transition-property", Value: v.raw}}, true, nil
		}
	}

	if rest, ok := strings.CutPrefix(in.Base, "duration-"); ok {
		ms, err := transitionMsValue(rest, in)
		if err != nil {
			return nil, false, err
		}
		return []rule.Declaration{{Property: "transition-duration", Value: ms}}, true, nil
	}
	if rest, ok := strings.CutPrefix(in.Base, "delay-"); ok {
		ms, err := transitionMsValue(rest, in)
		if err != nil {
			return nil, false, err
		}
		return []rule.Declaration{{Property: "transition-delay", Value: ms}}, true, nil
	}
	if rest, ok := strings.CutPrefix(in.Base, "ease-"); ok {
		if kw, ok := easeKeywords[rest]; ok {
			return []rule.Declaration{{Property: "transition-timing-function", Value: kw}}, true, nil
		}
		v, err := parseValueTail(rest)
		if err == nil && (v.kind == valueArbitrary || v.kind == valueCustomProperty) {
			return []rule.Declaration{{Property: "transition-timing-function", Value: v.raw}}, true, nil
		}
	}

	return nil, false, nil
}

// transitionMsValue parses a duration/delay value tail to a "<n>ms" CSS
// literal, or passes an arbitrary/custom-property value through verbatim.
func transitionMsValue(rest string, in Input) (string, error) {
	v, err := parseValueTail(rest)
	if err != nil {
		return "", err
	}
	if v.kind == valueArbitrary || v.kind == valueCustomProperty {
		return v.raw, nil
	}
	for i := 0; i < len(v.raw); i++ {
		if v.raw[i] < '0' || v.raw[i] > '9' {
			return "", apperrors.NewErrorf(apperrors.InvalidValue, "invalid duration/delay value %q", rest).WithPath(in.Base)
		}
	}
	return v.raw + "ms", nil
}
