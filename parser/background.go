package parser

import (
	"strings"

	"github.com/niiniyare/atomiccss/rule"
)

var backgroundPositions = map[string]string{
	"bottom":       "bottom",
	"center":       "center",
	"left":         "left",
	"left-bottom":  "left bottom",
	"left-top":     "left top",
	"right":        "right",
	"right-bottom": "right bottom",
	"right-top":    "right top",
	"top":          "top",
}

var backgroundSizes = map[string]string{
	"auto":    "auto",
	"cover":   "cover",
	"contain": "contain",
}

var backgroundRepeats = map[string]string{
	"repeat":    "repeat",
	"no-repeat": "no-repeat",
	"repeat-x":  "repeat-x",
	"repeat-y":  "repeat-y",
	"round":     "round",
	"space":     "space",
}

var backgroundAttachments = map[string]string{
	"fixed":  "fixed",
	"local":  "local",
	"scroll": "scroll",
}

var backgroundClips = map[string]string{
	"border": "border-box",
	"padding": "padding-box",
	"content": "content-box",
	"text":    "text",
}

// parseBackground implements spec §4.4's non-color background utilities:
// bg-position, bg-size, bg-repeat, bg-attachment, and bg-clip. The
// bg-<color> form is handled by the color family (color.go); this parser
// only runs after that one reports no match, so a "bg-cover" never
// collides with a palette lookup.
func parseBackground(in Input) ([]rule.Declaration, bool, error) {
	if rest, ok := strings.CutPrefix(in.Base, "bg-"); ok {
		if css, ok := backgroundPositions[rest]; ok {
			return []rule.Declaration{{Property: "background-position", Value: css}}, true, nil
		}
		if css, ok := backgroundSizes[rest]; ok {
			return []rule.Declaration{{Property: "background-size", Value: css}}, true, nil
		}
		if css, ok := backgroundRepeats[rest]; ok {
			return []rule.Declaration{{Property: "background-repeat", Value: css}}, true, nil
		}
		if css, ok := backgroundAttachments[rest]; ok {
			return []rule.Declaration{{Property: "background-attachment", Value: css}}, true, nil
		}
		if clipRest, ok := strings.CutPrefix(rest, "clip-"); ok {
			if css, ok := backgroundClips[clipRest]; ok {
				return []rule.Declaration{{Property: "background-clip", Value: css}}, true, nil
			}
		}
		if rest == "none" {
			return []rule.Declaration{{Property: "background-image", Value: "none"}}, true, nil
		}
		if posRest, ok := strings.CutPrefix(rest, "position-"); ok {
			v, err := parseValueTail(posRest)
			if err != nil {
				return nil, false, err
			}
			if v.kind == valueArbitrary || v.kind == valueCustomProperty {
				return []rule.Declaration{{Property: "background-position", Value: v.raw}}, true, nil
			}
		}
	}
	return nil, false, nil
}
