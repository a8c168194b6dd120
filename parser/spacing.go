package parser

import (
	"strings"

	apperrors "github.com/niiniyare/atomiccss/pkg/errors"
	"github.com/niiniyare/atomiccss/rule"
)

// spacingPrefixes maps a utility prefix to the CSS properties it sets, per
// spec §4.4's padding/margin contract. "ps"/"pe"/"ms"/"me" map to the
// logical inline-start/end properties (the logical_properties supplement
// from SPEC_FULL, grounded on original_source's logical_properties_tests).
var spacingPrefixes = map[string][]string{
	"p":  {"padding"},
	"px": {"padding-left", "padding-right"},
	"py": {"padding-top", "padding-bottom"},
	"pt": {"padding-top"},
	"pr": {"padding-right"},
	"pb": {"padding-bottom"},
	"pl": {"padding-left"},
	"ps": {"padding-inline-start"},
	"pe": {"padding-inline-end"},

	"m":  {"margin"},
	"mx": {"margin-left", "margin-right"},
	"my": {"margin-top", "margin-bottom"},
	"mt": {"margin-top"},
	"mr": {"margin-right"},
	"mb": {"margin-bottom"},
	"ml": {"margin-left"},
	"ms": {"margin-inline-start"},
	"me": {"margin-inline-end"},
}

// spacingPrefixOrder ensures longer/more specific prefixes are tried before
// shorter ones that would otherwise shadow them (e.g. "pt" before "p").
var spacingPrefixOrder = []string{"px", "py", "pt", "pr", "pb", "pl", "ps", "pe", "p",
	"mx", "my", "mt", "mr", "mb", "ml", "ms", "me", "m"}

func parseSpacing(in Input) ([]rule.Declaration, bool, error) {
	for _, prefix := range spacingPrefixOrder {
		rest, ok := cutPrefix(in.Base, prefix)
		if !ok {
			continue
		}
		props, known := spacingPrefixes[prefix]
		if !known {
			continue
		}
		length, err := resolveSpacingValue(rest, in)
		if err != nil {
			return nil, false, err
		}
		decls := make([]rule.Declaration, 0, len(props))
		for _, p := range props {
			decls = append(decls, rule.Declaration{Property: p, Value: length})
		}
		return decls, true, nil
	}
	return nil, false, nil
}

// cutPrefix requires "<prefix>-" immediately followed by a value, or an
// exact "-<prefix>-" for the negated form; it does not match a bare prefix
// with no following value.
func cutPrefix(base, prefix string) (string, bool) {
	neg := ""
	s := base
	if strings.HasPrefix(s, "-") {
		neg = "-"
		s = s[1:]
	}
	if !strings.HasPrefix(s, prefix+"-") {
		return "", false
	}
	return neg + s[len(prefix)+1:], true
}

func resolveSpacingValue(tail string, in Input) (string, error) {
	v, err := parseValueTail(tail)
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
			return "", apperrors.NewErrorf(apperrors.ThemeMiss, "unknown spacing key %q", v.raw).WithPath(in.Base)
		}
		if v.negative {
			return negate(length), nil
		}
		return length, nil
	}
}
