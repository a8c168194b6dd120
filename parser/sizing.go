package parser

import (
	"strconv"
	"strings"

	apperrors "github.com/niiniyare/atomiccss/pkg/errors"
	"github.com/niiniyare/atomiccss/rule"
	"github.com/niiniyare/atomiccss/theme"
)

var sizingPrefixes = map[string][]string{
	"size":   {"width", "height"},
	"w":      {"width"},
	"h":      {"height"},
	"min-w":  {"min-width"},
	"min-h":  {"min-height"},
	"max-w":  {"max-width"},
	"max-h":  {"max-height"},
}

var sizingPrefixOrder = []string{"min-w", "min-h", "max-w", "max-h", "size", "w", "h"}

var sizingKeywords = map[string]string{
	"full":   "100%",
	"screen": "100%", // refined per-axis below
	"auto":   "auto",
	"min":    "min-content",
	"max":    "max-content",
	"fit":    "fit-content",
	"px":     "1px",
}

func parseSizing(in Input) ([]rule.Declaration, bool, error) {
	base := in.Base
	for _, prefix := range sizingPrefixOrder {
		rest, ok := strings.CutPrefix(base, prefix+"-")
		if !ok {
			continue
		}
		props, known := sizingPrefixes[prefix]
		if !known {
			continue
		}

		value, err := resolveSizingValue(prefix, rest, in)
		if err != nil {
			return nil, false, err
		}
		decls := make([]rule.Declaration, 0, len(props))
		for _, p := range props {
			decls = append(decls, rule.Declaration{Property: p, Value: value})
		}
		return decls, true, nil
	}
	return nil, false, nil
}

func resolveSizingValue(prefix, rest string, in Input) (string, error) {
	if rest == "screen" {
		if strings.Contains(prefix, "h") && !strings.Contains(prefix, "w") {
			return "100vh", nil
		}
		return "100vw", nil
	}
	if kw, ok := sizingKeywords[rest]; ok {
		return kw, nil
	}

	if frac, ok, err := tryFraction(rest, in); ok || err != nil {
		return frac, err
	}

	v, err := parseValueTail(rest)
	if err != nil {
		return "", err
	}
	switch v.kind {
	case valueArbitrary:
		if v.negative {
			return negate(v.raw), nil
		}
		return v.raw, nil
	case valueCustomProperty:
		return v.raw, nil
	default:
		length, ok := in.Theme.Spacing(v.raw)
		if !ok {
			return "", apperrors.NewErrorf(apperrors.ThemeMiss, "unknown sizing key %q", v.raw).WithPath(in.Base)
		}
		if v.negative {
			return negate(length), nil
		}
		return length, nil
	}
}

// tryFraction handles the "n/d" fraction form, which the token lexer
// already peeled as Base="<prefix>-n" / Opacity="d" (the opacity/fraction
// ambiguity spec §9(b) leaves to the parser to disambiguate by utility
// family). Returns ok=false if rest+in.Opacity don't form an "n/d" pair.
func tryFraction(rest string, in Input) (string, bool, error) {
	if in.Opacity == "" {
		return "", false, nil
	}
	n, err1 := strconv.Atoi(rest)
	d, err2 := strconv.Atoi(in.Opacity)
	if err1 != nil || err2 != nil {
		return "", false, nil
	}
	pct, err := theme.Fraction(n, d)
	if err != nil {
		return "", true, apperrors.WrapError(apperrors.InvalidValue, "invalid fraction", err).WithPath(in.Base)
	}
	return pct, true, nil
}
