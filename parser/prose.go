package parser

import "github.com/niiniyare/atomiccss/rule"

// parseProse implements spec §4.4's lowest-priority "Prose" contract:
// "prose" and its "prose-<modifier>" siblings are recognized tokens that
// intentionally compile to zero declarations. They exist so a document
// using a third-party typography stylesheet keyed on the same class
// names doesn't trip UnknownUtility for them; this compiler emits no CSS
// of its own for that family.
func parseProse(in Input) ([]rule.Declaration, bool, error) {
	if in.Base == "prose" {
		return nil, true, nil
	}
	for _, mod := range []string{"sm", "lg", "xl", "2xl", "invert", "slate", "gray", "zinc", "neutral", "stone"} {
		if in.Base == "prose-"+mod {
			return nil, true, nil
		}
	}
	return nil, false, nil
}
