package parser

import (
	"strings"

	apperrors "github.com/niiniyare/atomiccss/pkg/errors"
	"github.com/niiniyare/atomiccss/rule"
)

// parseArbitraryProperty implements spec §4.4's highest-priority (100)
// family: "[property:value]" tokens compile to a single verbatim
// declaration, bypassing every theme lookup. Underscores in the value
// portion unescape to spaces per the shared arbitrary-value rule.
func parseArbitraryProperty(in Input) ([]rule.Declaration, bool, error) {
	if !strings.HasPrefix(in.Base, "[") || !strings.HasSuffix(in.Base, "]") {
		return nil, false, nil
	}
	inner := in.Base[1 : len(in.Base)-1]
	property, value, ok := strings.Cut(inner, ":")
	if !ok || property == "" || value == "" {
		return nil, false, apperrors.NewErrorf(apperrors.MalformedToken, "arbitrary property %q missing \"property:value\"", in.Base)
	}
	value = unescapeUnderscore(value)
	if in.Opacity != "" {
		value = colorWithOpacity(value, in.Opacity)
	}
	return []rule.Declaration{{Property: property, Value: value}}, true, nil
}
