package parser

import (
	"strings"

	apperrors "github.com/niiniyare/atomiccss/pkg/errors"
	"github.com/niiniyare/atomiccss/rule"
)

// colorPrefixes maps a utility prefix to the CSS property it sets, per
// spec §4.4's color-family contract (bg-, text-, border-, ring-, fill-,
// stroke-, accent-, divide-, caret-, outline-).
var colorPrefixes = map[string]string{
	"bg":     "background-color",
	"text":   "color",
	"border": "border-color",
	"ring":   "--tw-ring-color",
	"fill":   "fill",
	"stroke": "stroke",
	"accent": "accent-color",
	"divide": "--tw-divide-color",
	"caret":  "caret-color",
	"outline": "outline-color",
}

var colorPrefixOrder = []string{"bg", "text", "border", "ring", "fill", "stroke", "accent", "divide", "caret", "outline"}

func parseColor(in Input) ([]rule.Declaration, bool, error) {
	for _, prefix := range colorPrefixOrder {
		rest, ok := strings.CutPrefix(in.Base, prefix+"-")
		if !ok {
			continue
		}
		property := colorPrefixes[prefix]

		value, matched, err := resolveColorValue(rest, in)
		if err != nil {
			return nil, false, err
		}
		if !matched {
			continue
		}
		return []rule.Declaration{{Property: property, Value: value}}, true, nil
	}
	return nil, false, nil
}

// resolveColorValue resolves rest (and in.Opacity, if the token carried a
// "/opacity" suffix) against the theme's named colors or palette×shade
// table, or against an arbitrary "[...]"/custom-property "(...)" value.
// matched is false if rest is not recognizable as any color form at all,
// letting other prefixes sharing the same leading tokens (e.g. a
// non-color "outline-none" utility) fall through to later parsers.
func resolveColorValue(rest string, in Input) (value string, matched bool, err error) {
	if strings.HasPrefix(rest, "[") || strings.HasPrefix(rest, "(") {
		v, err := parseValueTail(rest)
		if err != nil {
			return "", true, err
		}
		if in.Opacity != "" {
			return colorWithOpacity(v.raw, in.Opacity), true, nil
		}
		return v.raw, true, nil
	}

	if hex, ok := in.Theme.NamedColor(rest); ok {
		if in.Opacity != "" {
			return colorWithOpacity(hex, in.Opacity), true, nil
		}
		return hex, true, nil
	}

	palette, shade, ok := strings.Cut(rest, "-")
	if !ok {
		return "", false, nil
	}
	hex, ok := in.Theme.Color(palette, shade)
	if !ok {
		// looks like a palette reference but the shade is unknown: this is
		// a recoverable ThemeMiss, not merely "not a color utility".
		if _, paletteKnown := in.Theme.Color(palette, "500"); paletteKnown {
			return "", true, apperrors.NewErrorf(apperrors.ThemeMiss, "unknown shade %q for palette %q", shade, palette).WithPath(in.Base)
		}
		return "", false, nil
	}
	if in.Opacity != "" {
		if pct, ok := parseOpacityLiteral(in.Opacity); ok {
			return colorWithOpacity(hex, pct), true, nil
		}
		return "", true, apperrors.NewErrorf(apperrors.InvalidValue, "invalid opacity %q", in.Opacity).WithPath(in.Base)
	}
	return hex, true, nil
}

func parseOpacityLiteral(s string) (string, bool) {
	for i := 0; i < len(s); i++ {
		if (s[i] < '0' || s[i] > '9') && s[i] != '.' {
			return "", false
		}
	}
	if s == "" {
		return "", false
	}
	return s, true
}
