package parser

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/niiniyare/atomiccss/pkg/errors"
)

// parseValueTail implements the shared value-parsing rules from spec §4.4
// for a utility's value tail: arbitrary "[v]" (underscores -> spaces unless
// escaped "\_"), custom-property "(v)" (-> "var(--v)"), negative sign
// passthrough, or a bare scale key handed back unresolved for the caller
// to look up in the theme.
type valueKind int

const (
	valueScaleKey valueKind = iota
	valueArbitrary
	valueCustomProperty
)

type resolvedValue struct {
	kind     valueKind
	raw      string // scale key, or the literal CSS value for arbitrary/custom-property
	negative bool
}

func parseValueTail(tail string) (resolvedValue, error) {
	negative := false
	if strings.HasPrefix(tail, "-") {
		negative = true
		tail = tail[1:]
	}

	if strings.HasPrefix(tail, "[") && strings.HasSuffix(tail, "]") {
		inner := tail[1 : len(tail)-1]
		if inner == "" {
			return resolvedValue{}, apperrors.NewError(apperrors.MalformedToken, "empty arbitrary value")
		}
		return resolvedValue{kind: valueArbitrary, raw: unescapeUnderscore(inner), negative: negative}, nil
	}

	if strings.HasPrefix(tail, "(") && strings.HasSuffix(tail, ")") {
		inner := tail[1 : len(tail)-1]
		if inner == "" {
			return resolvedValue{}, apperrors.NewError(apperrors.MalformedToken, "empty custom property reference")
		}
		return resolvedValue{kind: valueCustomProperty, raw: fmt.Sprintf("var(--%s)", inner), negative: negative}, nil
	}

	return resolvedValue{kind: valueScaleKey, raw: tail, negative: negative}, nil
}

// unescapeUnderscore replaces '_' with ' ' unless escaped as "\_", per
// spec §4.4's arbitrary-value rule.
func unescapeUnderscore(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && s[i+1] == '_' {
			b.WriteByte('_')
			i++
			continue
		}
		if s[i] == '_' {
			b.WriteByte(' ')
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// negate prefixes a CSS length with '-' unless it is the literal "0".
func negate(length string) string {
	if length == "0" {
		return length
	}
	return "-" + length
}

// hexToRGB decomposes a "#rrggbb" literal into its three decimal channel
// values. ok is false if hex isn't a 6-digit hex literal.
func hexToRGB(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	rv, err1 := strconv.ParseInt(hex[1:3], 16, 32)
	gv, err2 := strconv.ParseInt(hex[3:5], 16, 32)
	bv, err3 := strconv.ParseInt(hex[5:7], 16, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return int(rv), int(gv), int(bv), true
}

// colorWithOpacity implements spec §4.4's opacity composition rule: if base
// decomposes as "#rrggbb", emit "rgb(r g b / op%)"; otherwise fall back to
// a deterministic, still-decomposable form using the base value directly.
func colorWithOpacity(base string, opacityPct string) string {
	if r, g, b, ok := hexToRGB(base); ok {
		return fmt.Sprintf("rgb(%d %d %d / %s%%)", r, g, b, opacityPct)
	}
	return fmt.Sprintf("%s / %s%%", base, opacityPct)
}
