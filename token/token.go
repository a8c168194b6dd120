// Package token implements the class-token lexer: splitting a raw utility
// string into an ordered list of variant fragments and a final base
// fragment, honoring bracket/paren nesting and the opacity suffix.
package token

import (
	"strings"

	apperrors "github.com/niiniyare/atomiccss/pkg/errors"
)

// Parsed is the lexer's output: the ordered variant fragments (left to
// right, outermost first), the base fragment, and an optional opacity
// suffix.
type Parsed struct {
	Raw      string
	Variants []string
	Base     string
	Opacity  string // empty if no "/opacity" suffix was present
}

// Parse scans raw left to right, splitting on unescaped top-level ':' into
// variant fragments and a final base fragment, per spec §4.1. Brackets
// ("[...]") and parens ("(...)") nest and suppress splitting while open.
func Parse(raw string) (Parsed, error) {
	if raw == "" {
		return Parsed{}, apperrors.NewError(apperrors.MalformedToken, "empty token").WithPath(raw)
	}
	if strings.ContainsAny(raw, " \t\n\r") {
		return Parsed{}, apperrors.NewError(apperrors.MalformedToken, "token must not contain whitespace").WithPath(raw)
	}

	fragments, err := splitFragments(raw)
	if err != nil {
		return Parsed{}, err
	}
	if len(fragments) == 0 {
		return Parsed{}, apperrors.NewError(apperrors.MalformedToken, "token has no base fragment").WithPath(raw)
	}
	for _, f := range fragments {
		if f == "" {
			return Parsed{}, apperrors.NewError(apperrors.MalformedToken, "empty variant fragment").WithPath(raw)
		}
	}

	base := fragments[len(fragments)-1]
	variants := fragments[:len(fragments)-1]

	base, opacity, err := splitOpacity(base)
	if err != nil {
		return Parsed{}, apperrors.WrapError(apperrors.MalformedToken, "invalid opacity suffix", err).WithPath(raw)
	}
	if base == "" {
		return Parsed{}, apperrors.NewError(apperrors.MalformedToken, "empty base fragment").WithPath(raw)
	}

	return Parsed{Raw: raw, Variants: variants, Base: base, Opacity: opacity}, nil
}

// splitFragments splits raw on depth-0 ':' characters, tracking a
// bracket/paren depth stack so that ':' inside "[...]" or "(...)" is not a
// splitter. Returns MalformedToken for unbalanced brackets/parens or a
// leading/trailing ':'.
func splitFragments(raw string) ([]string, error) {
	if raw[0] == ':' || raw[len(raw)-1] == ':' {
		return nil, apperrors.NewError(apperrors.MalformedToken, "leading or trailing ':'").WithPath(raw)
	}

	var fragments []string
	var stack []byte
	start := 0

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch c {
		case '[', '(':
			stack = append(stack, matchingClose(c))
		case ']', ')':
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return nil, apperrors.NewError(apperrors.MalformedToken, "unbalanced bracket/paren").WithPath(raw)
			}
			stack = stack[:len(stack)-1]
		case ':':
			if len(stack) == 0 {
				fragments = append(fragments, raw[start:i])
				start = i + 1
			}
		}
	}
	if len(stack) != 0 {
		return nil, apperrors.NewError(apperrors.MalformedToken, "unbalanced bracket/paren").WithPath(raw)
	}
	fragments = append(fragments, raw[start:])
	return fragments, nil
}

func matchingClose(open byte) byte {
	if open == '[' {
		return ']'
	}
	return ')'
}

// splitOpacity splits a trailing "/opacity" suffix off base at depth 0. A
// depth-0 '/' that is not followed solely by digits/decimal is left as part
// of base (e.g. arbitrary values may legitimately contain '/'), but more
// than one depth-0 '/' is malformed per spec §4.1.
func splitOpacity(base string) (string, string, error) {
	var stack []byte
	slashIdx := -1
	slashCount := 0

	for i := 0; i < len(base); i++ {
		c := base[i]
		switch c {
		case '[', '(':
			stack = append(stack, matchingClose(c))
		case ']', ')':
			if len(stack) > 0 && stack[len(stack)-1] == c {
				stack = stack[:len(stack)-1]
			}
		case '/':
			if len(stack) == 0 {
				slashCount++
				slashIdx = i
			}
		}
	}
	if slashCount == 0 {
		return base, "", nil
	}
	if slashCount > 1 {
		return "", "", apperrors.NewErrorf(apperrors.MalformedToken, "more than one depth-0 '/' in base %q", base)
	}

	candidate := base[slashIdx+1:]
	if !isOpacityLiteral(candidate) {
		// Not a numeric opacity: treat the '/' as part of the base value
		// (e.g. an arbitrary fraction-shaped utility value).
		return base, "", nil
	}
	return base[:slashIdx], candidate, nil
}

func isOpacityLiteral(s string) bool {
	if s == "" {
		return false
	}
	seenDot := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' {
			if seenDot {
				return false
			}
			seenDot = true
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
