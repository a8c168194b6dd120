package parser

import (
	"strings"

	"github.com/niiniyare/atomiccss/rule"
)

var cursorKeywords = map[string]struct{}{
	"auto": {}, "default": {}, "pointer": {}, "wait": {}, "text": {}, "move": {},
	"help": {}, "not-allowed": {}, "none": {}, "crosshair": {}, "grab": {}, "grabbing": {},
	"zoom-in": {}, "zoom-out": {}, "col-resize": {}, "row-resize": {},
}

var userSelectKeywords = map[string]struct{}{
	"none": {}, "text": {}, "all": {}, "auto": {},
}

var pointerEventsKeywords = map[string]struct{}{
	"none": {}, "auto": {},
}

var visibilityTokens = map[string]string{
	"visible":  "visible",
	"invisible": "hidden",
	"collapse": "collapse",
}

var listStyleTypes = map[string]string{
	"none":    "none",
	"disc":    "disc",
	"decimal": "decimal",
}

// parseCatchAll implements spec §4.4's lowest-priority state/accessibility
// utilities that don't belong to a themed value family: sr-only,
// cursor-*, select-*, pointer-events-*, visibility, list-style-type, and
// the arbitrary "content-[...]" form.
func parseCatchAll(in Input) ([]rule.Declaration, bool, error) {
	switch in.Base {
	case "sr-only":
		return []rule.Declaration{
			{Property: "position", Value: "absolute"},
			{Property: "width", Value: "1px"},
			{Property: "height", Value: "1px"},
			{Property: "padding", Value: "0"},
			{Property: "margin", Value: "-1px"},
			{Property: "overflow", Value: "hidden"},
			{Property: "clip", Value: "rect(0, 0, 0, 0)"},
			{Property: "white-space", Value: "nowrap"},
			{Property: "border-width", Value: "0"},
		}, true, nil
	case "not-sr-only":
		return []rule.Declaration{
			{Property: "position", Value: "static"},
			{Property: "width", Value: "auto"},
			{Property: "height", Value: "auto"},
			{Property: "padding", Value: "0"},
			{Property: "margin", Value: "0"},
			{Property: "overflow", Value: "visible"},
			{Property: "clip", Value: "auto"},
			{Property: "white-space", Value: "normal"},
		}, true, nil
	}

	if css, ok := visibilityTokens[in.Base]; ok {
		return []rule.Declaration{{Property: "visibility", Value: css}}, true, nil
	}

	if rest, ok := strings.CutPrefix(in.Base, "cursor-"); ok {
		if _, ok := cursorKeywords[rest]; ok {
			return []rule.Declaration{{Property: "cursor", Value: rest}}, true, nil
		}
		v, err := parseValueTail(rest)
		if err != nil {
			return nil, false, err
		}
		if v.kind == valueArbitrary || v.kind == valueCustomProperty {
			return []rule.Declaration{{Property: "cursor", Value: v.raw}}, true, nil
		}
	}

	if rest, ok := strings.CutPrefix(in.Base, "select-"); ok {
		if _, ok := userSelectKeywords[rest]; ok {
			return []rule.Declaration{{Property: "user-select", Value: rest}}, true, nil
		}
	}

	if rest, ok := strings.CutPrefix(in.Base, "pointer-events-"); ok {
		if _, ok := pointerEventsKeywords[rest]; ok {
			return []rule.Declaration{{Property: "pointer-events", Value: rest}}, true, nil
		}
	}

	if rest, ok := strings.CutPrefix(in.Base, "list-"); ok {
		if css, ok := listStyleTypes[rest]; ok {
			return []rule.Declaration{{Property: "list-style-type", Value: css}}, true, nil
		}
	}

	if rest, ok := strings.CutPrefix(in.Base, "content-"); ok {
		v, err := parseValueTail(rest)
		if err != nil {
			return nil, false, err
		}
		if v.kind == valueArbitrary || v.kind == valueCustomProperty {
			return []rule.Declaration{{Property: "content", Value: v.raw}}, true, nil
		}
		if rest == "none" {
			return []rule.Declaration{{Property: "content", Value: "none"}}, true, nil
		}
	}

	return nil, false, nil
}
