package parser

import (
	"strings"

	"github.com/niiniyare/atomiccss/rule"
)

var flexBasisKeywords = map[string]string{
	"auto": "auto",
	"full": "100%",
}

var flexDirections = map[string]string{
	"row":         "row",
	"row-reverse": "row-reverse",
	"col":         "column",
	"col-reverse": "column-reverse",
}

var flexWraps = map[string]string{
	"wrap":         "wrap",
	"wrap-reverse": "wrap-reverse",
	"nowrap":       "nowrap",
}

var justifyContents = map[string]string{
	"normal":        "normal",
	"start":         "flex-start",
	"end":           "flex-end",
	"center":        "center",
	"between":       "space-between",
	"around":        "space-around",
	"evenly":        "space-evenly",
	"stretch":       "stretch",
}

var alignItems = map[string]string{
	"start":    "flex-start",
	"end":      "flex-end",
	"center":   "center",
	"baseline": "baseline",
	"stretch":  "stretch",
}

var alignContents = map[string]string{
	"normal":  "normal",
	"start":   "flex-start",
	"end":     "flex-end",
	"center":  "center",
	"between": "space-between",
	"around":  "space-around",
	"evenly":  "space-evenly",
	"stretch": "stretch",
	"baseline": "baseline",
}

var flexValues = map[string]string{
	"1":    "1 1 0%",
	"auto":  "1 1 auto",
	"initial": "0 1 auto",
	"none": "none",
}

// parseFlex implements spec §4.4's flex family: flex-direction, flex-wrap,
// flex (shorthand), flex-grow/shrink, flex-basis, justify-content,
// align-items/content/self, order, and gap.
func parseFlex(in Input) ([]rule.Declaration, bool, error) {
	if rest, ok := strings.CutPrefix(in.Base, "flex-"); ok {
		if css, ok := flexDirections[rest]; ok {
			return []rule.Declaration{{Property: "flex-direction", Value: css}}, true, nil
		}
		if css, ok := flexWraps[rest]; ok {
			return []rule.Declaration{{Property: "flex-wrap", Value: css}}, true, nil
		}
		if css, ok := flexValues[rest]; ok {
			return []rule.Declaration{{Property: "flex", Value: css}}, true, nil
		}
		v, err := parseValueTail(rest)
		if err != nil {
			return nil, false, err
		}
		if v.kind == valueArbitrary || v.kind == valueCustomProperty {
			return []rule.Declaration{{Property: "flex", Value: v.raw}}, true, nil
		}
	}

	if rest, ok := strings.CutPrefix(in.Base, "basis-"); ok {
		if css, ok := flexBasisKeywords[rest]; ok {
			return []rule.Declaration{{Property: "flex-basis", Value: css}}, true, nil
		}
		v, err := parseValueTail(rest)
		if err != nil {
			return nil, false, err
		}
		if v.kind == valueArbitrary || v.kind == valueCustomProperty {
			return []rule.Declaration{{Property: "flex-basis", Value: v.raw}}, true, nil
		}
		if length, ok := in.Theme.Spacing(v.raw); ok {
			return []rule.Declaration{{Property: "flex-basis", Value: length}}, true, nil
		}
	}

	if rest, ok := strings.CutPrefix(in.Base, "grow"); ok {
		return growShrink("flex-grow", rest)
	}
	if rest, ok := strings.CutPrefix(in.Base, "shrink"); ok {
		return growShrink("flex-shrink", rest)
	}

	if rest, ok := strings.CutPrefix(in.Base, "justify-"); ok {
		if css, ok := justifyContents[rest]; ok {
			return []rule.Declaration{{Property: "justify-content", Value: css}}, true, nil
		}
	}
	if rest, ok := strings.CutPrefix(in.Base, "items-"); ok {
		if css, ok := alignItems[rest]; ok {
			return []rule.Declaration{{Property: "align-items", Value: css}}, true, nil
		}
	}
	if rest, ok := strings.CutPrefix(in.Base, "content-"); ok {
		if css, ok := alignContents[rest]; ok {
			return []rule.Declaration{{Property: "align-content", Value: css}}, true, nil
		}
	}
	if rest, ok := strings.CutPrefix(in.Base, "self-"); ok {
		if css, ok := alignItems[rest]; ok {
			return []rule.Declaration{{Property: "align-self", Value: css}}, true, nil
		}
		if rest == "auto" {
			return []rule.Declaration{{Property: "align-self", Value: "auto"}}, true, nil
		}
	}

	if rest, ok := strings.CutPrefix(in.Base, "order-"); ok {
		v, err := parseValueTail(rest)
		if err != nil {
			return nil, false, err
		}
		if v.kind == valueArbitrary || v.kind == valueCustomProperty {
			return []rule.Declaration{{Property: "order", Value: v.raw}}, true, nil
		}
		if rest == "first" {
			return []rule.Declaration{{Property: "order", Value: "-9999"}}, true, nil
		}
		if rest == "last" {
			return []rule.Declaration{{Property: "order", Value: "9999"}}, true, nil
		}
		if isDigits(v.raw) {
			if v.negative {
				return []rule.Declaration{{Property: "order", Value: negate(v.raw)}}, true, nil
			}
			return []rule.Declaration{{Property: "order", Value: v.raw}}, true, nil
		}
	}

	if decls, ok, err := parseGap(in); ok || err != nil {
		return decls, ok, err
	}

	return nil, false, nil
}

func growShrink(property, rest string) ([]rule.Declaration, bool, error) {
	if rest == "" {
		return []rule.Declaration{{Property: property, Value: "1"}}, true, nil
	}
	rest, ok := strings.CutPrefix(rest, "-")
	if !ok {
		return nil, false, nil
	}
	if rest == "0" {
		return []rule.Declaration{{Property: property, Value: "0"}}, true, nil
	}
	v, err := parseValueTail(rest)
	if err != nil {
		return nil, false, err
	}
	if v.kind == valueArbitrary || v.kind == valueCustomProperty {
		return []rule.Declaration{{Property: property, Value: v.raw}}, true, nil
	}
	if isDigits(v.raw) {
		return []rule.Declaration{{Property: property, Value: v.raw}}, true, nil
	}
	return nil, false, nil
}
