package parser

import (
	"strings"

	apperrors "github.com/niiniyare/atomiccss/pkg/errors"
	"github.com/niiniyare/atomiccss/rule"
)

var textAlign = map[string]string{
	"left": "left", "center": "center", "right": "right", "justify": "justify", "start": "start", "end": "end",
}

var leadingKeywords = map[string]string{
	"none": "1", "tight": "1.25", "snug": "1.375", "normal": "1.5", "relaxed": "1.625", "loose": "2",
}

var trackingKeywords = map[string]string{
	"tighter": "-0.05em", "tight": "-0.025em", "normal": "0em", "wide": "0.025em", "wider": "0.05em", "widest": "0.1em",
}

var fontFamilies = map[string]string{
	"sans": "ui-sans-serif, system-ui, sans-serif",
	"serif": "ui-serif, Georgia, serif",
	"mono": "ui-monospace, SFMono-Regular, monospace",
}

func parseTypography(in Input) ([]rule.Declaration, bool, error) {
	base := in.Base

	if rest, ok := strings.CutPrefix(base, "text-"); ok {
		if align, ok := textAlign[rest]; ok {
			return []rule.Declaration{{Property: "text-align", Value: align}}, true, nil
		}
		if fs, ok := in.Theme.FontSize(rest); ok {
			decls := []rule.Declaration{{Property: "font-size", Value: fs.Length}}
			if fs.LineHeight != "" {
				decls = append(decls, rule.Declaration{Property: "line-height", Value: fs.LineHeight})
			}
			return decls, true, nil
		}
	}

	if rest, ok := strings.CutPrefix(base, "font-"); ok {
		if w, ok := in.Theme.FontWeight(rest); ok {
			return []rule.Declaration{{Property: "font-weight", Value: w}}, true, nil
		}
		if fam, ok := fontFamilies[rest]; ok {
			return []rule.Declaration{{Property: "font-family", Value: fam}}, true, nil
		}
		v, err := parseValueTail(rest)
		if err == nil && v.kind == valueArbitrary {
			return []rule.Declaration{{Property: "font-family", Value: v.raw}}, true, nil
		}
	}

	if rest, ok := strings.CutPrefix(base, "leading-"); ok {
		if kw, ok := leadingKeywords[rest]; ok {
			return []rule.Declaration{{Property: "line-height", Value: kw}}, true, nil
		}
		if length, ok := in.Theme.Spacing(rest); ok {
			return []rule.Declaration{{Property: "line-height", Value: length}}, true, nil
		}
		v, err := parseValueTail(rest)
		if err == nil && v.kind == valueArbitrary {
			return []rule.Declaration{{Property: "line-height", Value: v.raw}}, true, nil
		}
	}

	if rest, ok := strings.CutPrefix(base, "tracking-"); ok {
		if kw, ok := trackingKeywords[rest]; ok {
			return []rule.Declaration{{Property: "letter-spacing", Value: kw}}, true, nil
		}
		v, err := parseValueTail(rest)
		if err == nil && v.kind == valueArbitrary {
			return []rule.Declaration{{Property: "letter-spacing", Value: v.raw}}, true, nil
		}
	}

	if strings.HasPrefix(base, "text-") && strings.Contains(base, "[") {
		rest := strings.TrimPrefix(base, "text-")
		v, err := parseValueTail(rest)
		if err != nil {
			return nil, false, apperrors.WrapError(apperrors.InvalidValue, "invalid arbitrary text value", err).WithPath(base)
		}
		if v.kind == valueArbitrary {
			return []rule.Declaration{{Property: "font-size", Value: v.raw}}, true, nil
		}
	}

	return nil, false, nil
}
