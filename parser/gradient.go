package parser

import (
	"strings"

	"github.com/niiniyare/atomiccss/rule"
)

// Gradient tokens accumulate into CSS custom properties per spec §6.5. Each
// token below contributes independently; the rule store merges them onto
// the same rule by selector key (spec invariant (iii)/(iv)), and
// ComposeAggregates (aggregate.go) later synthesizes the final
// --tw-gradient-stops declaration once all contributing tokens for that
// rule have been inserted. The background-image declaration comes from the
// bg-gradient-to-* direction token itself.
var gradientDirections = map[string]string{
	"t":  "to top",
	"tr": "to top right",
	"r":  "to right",
	"br": "to bottom right",
	"b":  "to bottom",
	"bl": "to bottom left",
	"l":  "to left",
	"tl": "to top left",
}

func parseGradientToken(in Input) ([]rule.Declaration, bool, error) {
	if rest, ok := strings.CutPrefix(in.Base, "bg-gradient-to-"); ok {
		dir, ok := gradientDirections[rest]
		if !ok {
			return nil, false, nil
		}
		return []rule.Declaration{
			{Property: "--tw-gradient-position", Value: dir},
			{Property: "background-image", Value: "linear-gradient(var(--tw-gradient-stops))"},
		}, true, nil
	}

	for _, spec := range []struct {
		prefix, varName, posVar, defaultPos string
	}{
		{"from-", "--tw-gradient-from", "--tw-gradient-from-position", "0%"},
		{"via-", "--tw-gradient-via", "--tw-gradient-via-position", "50%"},
		{"to-", "--tw-gradient-to", "--tw-gradient-to-position", "100%"},
	} {
		rest, ok := strings.CutPrefix(in.Base, spec.prefix)
		if !ok {
			continue
		}
		value, matched, err := resolveColorValue(rest, in)
		if err != nil {
			return nil, false, err
		}
		if !matched {
			continue
		}
		return []rule.Declaration{
			{Property: spec.varName, Value: value},
			{Property: spec.posVar, Value: spec.defaultPos},
		}, true, nil
	}

	return nil, false, nil
}
