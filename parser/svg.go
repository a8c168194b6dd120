package parser

import (
	"strings"

	"github.com/niiniyare/atomiccss/rule"
)

// parseSVG implements spec §4.4's svg family: the non-color fill/stroke
// utilities. fill-<color>/stroke-<color> are handled earlier, at higher
// priority, by color.go's colorPrefixes — this only sees what falls
// through that family unmatched (fill-none, stroke-none, stroke-<width>).
func parseSVG(in Input) ([]rule.Declaration, bool, error) {
	if in.Base == "fill-none" {
		return []rule.Declaration{{Property: "fill", Value: "none"}}, true, nil
	}
	if in.Base == "stroke-none" {
		return []rule.Declaration{{Property: "stroke", Value: "none"}}, true, nil
	}

	if rest, ok := strings.CutPrefix(in.Base, "stroke-"); ok {
		v, err := parseValueTail(rest)
		if err != nil {
			return nil, false, err
		}
		switch v.kind {
		case valueArbitrary, valueCustomProperty:
			return []rule.Declaration{{Property: "stroke-width", Value: v.raw}}, true, nil
		default:
			if isDigits(v.raw) {
				return []rule.Declaration{{Property: "stroke-width", Value: v.raw}}, true, nil
			}
		}
	}

	return nil, false, nil
}
