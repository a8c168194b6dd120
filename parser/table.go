package parser

import (
	"strings"

	"github.com/niiniyare/atomiccss/rule"
)

var tableLayoutKeywords = map[string]string{
	"table-auto":  "auto",
	"table-fixed": "fixed",
}

var captionSideKeywords = map[string]string{
	"caption-top":    "top",
	"caption-bottom": "bottom",
}

// parseTable implements spec §4.4's table family: table-layout,
// border-collapse, caption-side, and border-spacing. display:table itself
// is a plain keyword handled by layout.go's displayKeywords.
func parseTable(in Input) ([]rule.Declaration, bool, error) {
	if css, ok := tableLayoutKeywords[in.Base]; ok {
		return []rule.Declaration{{Property: "table-layout", Value: css}}, true, nil
	}
	if css, ok := captionSideKeywords[in.Base]; ok {
		return []rule.Declaration{{Property: "caption-side", Value: css}}, true, nil
	}
	if in.Base == "border-collapse" {
		return []rule.Declaration{{Property: "border-collapse", Value: "collapse"}}, true, nil
	}
	if in.Base == "border-separate" {
		return []rule.Declaration{{Property: "border-collapse", Value: "separate"}}, true, nil
	}

	for _, spec := range []struct {
		prefix     string
		properties []string
	}{
		{"border-spacing-x-", []string{"--tw-border-spacing-x"}},
		{"border-spacing-y-", []string{"--tw-border-spacing-y"}},
		{"border-spacing-", []string{"--tw-border-spacing-x", "--tw-border-spacing-y"}},
	} {
		rest, ok := strings.CutPrefix(in.Base, spec.prefix)
		if !ok {
			continue
		}
		v, err := parseValueTail(rest)
		if err != nil {
			return nil, false, err
		}
		var value string
		switch v.kind {
		case valueArbitrary, valueCustomProperty:
			value = v.raw
		default:
			length, ok := in.Theme.Spacing(v.raw)
			if !ok {
				continue
			}
			value = length
		}
		decls := make([]rule.Declaration, len(spec.properties))
		for i, p := range spec.properties {
			decls[i] = rule.Declaration{Property: p, Value: value}
		}
		decls = append(decls, rule.Declaration{Property: "border-spacing", Value: "var(--tw-border-spacing-x) var(--tw-border-spacing-y)"})
		return decls, true, nil
	}

	return nil, false, nil
}
