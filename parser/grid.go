package parser

import (
	"strings"

	apperrors "github.com/niiniyare/atomiccss/pkg/errors"
	"github.com/niiniyare/atomiccss/rule"
)

// parseGap implements the gap/gap-x/gap-y utilities. It is called from
// parseFlex; the gap properties it emits apply to grid containers as well.
func parseGap(in Input) ([]rule.Declaration, bool, error) {
	for _, spec := range []struct {
		prefix     string
		properties []string
	}{
		{"gap-x-", []string{"column-gap"}},
		{"gap-y-", []string{"row-gap"}},
		{"gap-", []string{"gap"}},
	} {
		rest, ok := strings.CutPrefix(in.Base, spec.prefix)
		if !ok {
			continue
		}
		length, err := resolveSpacingValue(rest, in)
		if err != nil {
			return nil, false, err
		}
		decls := make([]rule.Declaration, len(spec.properties))
		for i, p := range spec.properties {
			decls[i] = rule.Declaration{Property: p, Value: length}
		}
		return decls, true, nil
	}
	return nil, false, nil
}

var gridAutoFlows = map[string]string{
	"row":         "row",
	"col":         "column",
	"dense":       "dense",
	"row-dense":   "row dense",
	"col-dense":   "column dense",
}

var gridPlaceKeywords = map[string]string{
	"start":   "start",
	"end":     "end",
	"center":  "center",
	"stretch": "stretch",
	"between": "space-between",
	"around":  "space-around",
	"evenly":  "space-evenly",
}

// parseGrid implements spec §4.4's grid family: grid-template-columns/rows,
// grid-column/row (span and start/end), grid-auto-flow/columns/rows, and
// the place-content/place-items/place-self group.
func parseGrid(in Input) ([]rule.Declaration, bool, error) {
	if rest, ok := strings.CutPrefix(in.Base, "grid-cols-"); ok {
		return gridTemplate("grid-template-columns", rest, in)
	}
	if rest, ok := strings.CutPrefix(in.Base, "grid-rows-"); ok {
		return gridTemplate("grid-template-rows", rest, in)
	}
	if rest, ok := strings.CutPrefix(in.Base, "grid-flow-"); ok {
		if css, ok := gridAutoFlows[rest]; ok {
			return []rule.Declaration{{Property: "grid-auto-flow", Value: css}}, true, nil
		}
	}
	if rest, ok := strings.CutPrefix(in.Base, "auto-cols-"); ok {
		return gridAuto("grid-auto-columns", rest)
	}
	if rest, ok := strings.CutPrefix(in.Base, "auto-rows-"); ok {
		return gridAuto("grid-auto-rows", rest)
	}

	if rest, ok := strings.CutPrefix(in.Base, "col-span-"); ok {
		return gridSpan("grid-column", rest, in)
	}
	if rest, ok := strings.CutPrefix(in.Base, "row-span-"); ok {
		return gridSpan("grid-row", rest, in)
	}
	if rest, ok := strings.CutPrefix(in.Base, "col-start-"); ok {
		return gridLine("grid-column-start", rest, in)
	}
	if rest, ok := strings.CutPrefix(in.Base, "col-end-"); ok {
		return gridLine("grid-column-end", rest, in)
	}
	if rest, ok := strings.CutPrefix(in.Base, "row-start-"); ok {
		return gridLine("grid-row-start", rest, in)
	}
	if rest, ok := strings.CutPrefix(in.Base, "row-end-"); ok {
		return gridLine("grid-row-end", rest, in)
	}

	for _, spec := range []struct {
		prefix, property string
	}{
		{"place-content-", "place-content"},
		{"place-items-", "place-items"},
		{"place-self-", "place-self"},
	} {
		rest, ok := strings.CutPrefix(in.Base, spec.prefix)
		if !ok {
			continue
		}
		if css, ok := gridPlaceKeywords[rest]; ok {
			return []rule.Declaration{{Property: spec.property, Value: css}}, true, nil
		}
		if rest == "auto" && spec.property == "place-self" {
			return []rule.Declaration{{Property: spec.property, Value: "auto"}}, true, nil
		}
	}

	return nil, false, nil
}

func gridTemplate(property, rest string, in Input) ([]rule.Declaration, bool, error) {
	if rest == "none" {
		return []rule.Declaration{{Property: property, Value: "none"}}, true, nil
	}
	v, err := parseValueTail(rest)
	if err != nil {
		return nil, false, err
	}
	if v.kind == valueArbitrary || v.kind == valueCustomProperty {
		return []rule.Declaration{{Property: property, Value: v.raw}}, true, nil
	}
	if !isDigits(rest) {
		return nil, false, nil
	}
	return []rule.Declaration{{Property: property, Value: "repeat(" + rest + ", minmax(0, 1fr))"}}, true, nil
}

func gridAuto(property, rest string) ([]rule.Declaration, bool, error) {
	switch rest {
	case "auto", "min", "max":
		css := map[string]string{"auto": "auto", "min": "min-content", "max": "max-content"}[rest]
		return []rule.Declaration{{Property: property, Value: css}}, true, nil
	case "fr":
		return []rule.Declaration{{Property: property, Value: "minmax(0, 1fr)"}}, true, nil
	}
	v, err := parseValueTail(rest)
	if err != nil {
		return nil, false, err
	}
	if v.kind == valueArbitrary || v.kind == valueCustomProperty {
		return []rule.Declaration{{Property: property, Value: v.raw}}, true, nil
	}
	return nil, false, nil
}

func gridSpan(property, rest string, in Input) ([]rule.Declaration, bool, error) {
	if rest == "full" {
		return []rule.Declaration{{Property: property, Value: "1 / -1"}}, true, nil
	}
	v, err := parseValueTail(rest)
	if err != nil {
		return nil, false, err
	}
	if v.kind == valueArbitrary || v.kind == valueCustomProperty {
		return []rule.Declaration{{Property: property, Value: "span " + v.raw + " / span " + v.raw}}, true, nil
	}
	if !isDigits(rest) {
		return nil, false, apperrors.NewErrorf(apperrors.InvalidValue, "invalid span value %q", rest).WithPath(in.Base)
	}
	return []rule.Declaration{{Property: property, Value: "span " + rest + " / span " + rest}}, true, nil
}

func gridLine(property, rest string, in Input) ([]rule.Declaration, bool, error) {
	if rest == "auto" {
		return []rule.Declaration{{Property: property, Value: "auto"}}, true, nil
	}
	v, err := parseValueTail(rest)
	if err != nil {
		return nil, false, err
	}
	if v.kind == valueArbitrary || v.kind == valueCustomProperty {
		return []rule.Declaration{{Property: property, Value: v.raw}}, true, nil
	}
	if !isDigits(rest) {
		return nil, false, apperrors.NewErrorf(apperrors.InvalidValue, "invalid grid line %q", rest).WithPath(in.Base)
	}
	return []rule.Declaration{{Property: property, Value: rest}}, true, nil
}
