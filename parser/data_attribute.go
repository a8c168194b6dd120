package parser

import (
	"strings"

	apperrors "github.com/niiniyare/atomiccss/pkg/errors"
	"github.com/niiniyare/atomiccss/rule"
)

// parseDataAttributeUtility implements spec §4.4's data/aria attribute
// family (priority 90). token.splitFragments tracks bracket depth across
// "(" and "[" so a colon inside parens never splits into a separate
// variant fragment; that lets an author pin a data/aria attribute name to
// a nested utility as a single base token, e.g. "(data-open:block)",
// without the attribute name being promoted to a selector variant. This
// parser unwraps that grouping and re-dispatches the nested utility
// through the same registry, keeping the attribute name purely
// informational (it documents intent; the attribute-conditional selector
// itself is still supplied the ordinary way, as a "data-[...]"/"aria-*"
// variant fragment ahead of the base).
func parseDataAttributeUtility(r *Registry) Func {
	return func(in Input) ([]rule.Declaration, bool, error) {
		if !strings.HasPrefix(in.Base, "(") || !strings.HasSuffix(in.Base, ")") {
			return nil, false, nil
		}
		inner := in.Base[1 : len(in.Base)-1]
		attrName, tail, ok := strings.Cut(inner, ":")
		if !ok || attrName == "" || tail == "" {
			return nil, false, apperrors.NewErrorf(apperrors.MalformedToken, "grouped data/aria utility %q missing \"attr:utility\"", in.Base)
		}
		if !strings.HasPrefix(attrName, "data-") && !strings.HasPrefix(attrName, "aria-") {
			return nil, false, nil
		}
		decls, err := r.Parse(Input{Base: tail, Opacity: in.Opacity, Theme: in.Theme})
		if err != nil {
			return nil, false, err
		}
		return decls, true, nil
	}
}
