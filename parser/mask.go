package parser

import (
	"strings"

	"github.com/niiniyare/atomiccss/rule"
)

// maskModeKeywords covers mask-alpha/mask-luminance, the CSS mask-mode
// values from original_source's MaskMode enum (match-source has no utility
// here; it is reachable only through the arbitrary-property form
// [mask-mode:match-source]).
var maskModeKeywords = map[string]string{
	"alpha":     "alpha",
	"luminance": "luminance",
}

var maskRepeatKeywords = map[string]string{
	"repeat":       "repeat",
	"repeat-none":  "no-repeat",
	"repeat-x":     "repeat-x",
	"repeat-y":     "repeat-y",
	"repeat-round": "round",
	"repeat-space": "space",
}

var maskSizeKeywords = map[string]string{
	"auto":    "auto",
	"cover":   "cover",
	"contain": "contain",
}

// maskPositionKeywords covers original_source's MaskPosition enum; the
// compound corners use the two-word CSS position shorthand.
var maskPositionKeywords = map[string]string{
	"center":       "center",
	"top":          "top",
	"bottom":       "bottom",
	"left":         "left",
	"right":        "right",
	"top-left":     "top left",
	"top-right":    "top right",
	"bottom-left":  "bottom left",
	"bottom-right": "bottom right",
}

var maskClipKeywords = map[string]string{
	"border":  "border-box",
	"padding": "padding-box",
	"content": "content-box",
	"text":    "text",
}

var maskOriginKeywords = map[string]string{
	"border":  "border-box",
	"padding": "padding-box",
	"content": "content-box",
}

// parseMask implements spec §4.4's mask family, grounded on
// original_source's tailwind-rs-core mask.rs enums (MaskType, MaskMode,
// MaskRepeat, MaskSize, MaskPosition, MaskClip, MaskOrigin).
func parseMask(in Input) ([]rule.Declaration, bool, error) {
	if in.Base == "mask-none" {
		return []rule.Declaration{{Property: "mask-image", Value: "none"}}, true, nil
	}
	if rest, ok := strings.CutPrefix(in.Base, "mask-"); ok {
		if css, ok := maskModeKeywords[rest]; ok {
			return []rule.Declaration{{Property: "mask-mode", Value: css}}, true, nil
		}
		if css, ok := maskRepeatKeywords[rest]; ok {
			return []rule.Declaration{{Property: "mask-repeat", Value: css}}, true, nil
		}
		if sizeRest, ok := strings.CutPrefix(rest, "size-"); ok {
			if css, ok := maskSizeKeywords[sizeRest]; ok {
				return []rule.Declaration{{Property: "mask-size", Value: css}}, true, nil
			}
		}
		if css, ok := maskPositionKeywords[rest]; ok {
			return []rule.Declaration{{Property: "mask-position", Value: css}}, true, nil
		}
		if clipRest, ok := strings.CutPrefix(rest, "clip-"); ok {
			if css, ok := maskClipKeywords[clipRest]; ok {
				return []rule.Declaration{{Property: "mask-clip", Value: css}}, true, nil
			}
		}
		if originRest, ok := strings.CutPrefix(rest, "origin-"); ok {
			if css, ok := maskOriginKeywords[originRest]; ok {
				return []rule.Declaration{{Property: "mask-origin", Value: css}}, true, nil
			}
		}
	}

	return nil, false, nil
}
