package variant

import "strings"

// Wrappers is the at-rule context a VariantSet contributes: each field is
// empty if the set carries no variant of that kind.
type Wrappers struct {
	Supports string // e.g. "(display: grid)"
	Media    string // e.g. "(min-width: 768px)" or "print"
	Container string // e.g. "(min-width: 448px)" or "(min-width: 448px) inline-size"
}

// Selector assembles the innermost CSS selector for baseSelector (typically
// ".<escaped-token>") given this Set, per spec §4.6: arbitrary-selector
// substitution, then attribute filters, then group/peer/dark prefixes,
// then the pseudo-class chain, then pseudo-element suffix.
func (s Set) Selector(baseSelector string) string {
	selector := baseSelector
	var prefixes []string
	var attrs []string
	var pseudos []string
	var pseudoElements []string

	for _, v := range s.Variants {
		switch v.Kind {
		case ArbitrarySelector:
			selector = strings.ReplaceAll(v.Template, "&", selector)
		case Dark:
			prefixes = append(prefixes, ".dark ")
		case Group:
			prefixes = append(prefixes, ".group:"+v.Name+" ")
		case Peer:
			prefixes = append(prefixes, ".peer:"+v.Name+" ~ ")
		case Data, Aria:
			attrs = append(attrs, v.Name)
		case State:
			if strings.HasPrefix(v.Name, "::") {
				pseudoElements = append(pseudoElements, v.Name)
			} else {
				pseudos = append(pseudos, v.Name)
			}
		case Custom:
			selector = strings.ReplaceAll(v.Template, "&", selector)
		}
	}

	var b strings.Builder
	for _, p := range prefixes {
		b.WriteString(p)
	}
	b.WriteString(selector)
	for _, a := range attrs {
		b.WriteString(a)
	}
	for _, p := range pseudos {
		b.WriteString(p)
	}
	for _, pe := range pseudoElements {
		b.WriteString(pe)
	}
	return b.String()
}

// Wrap computes the at-rule wrapper context for this Set. Several media
// variants (responsive, max-responsive, device) and-join their conditions,
// as do several Supports variants; for Container variants the last one wins.
func (s Set) Wrap() Wrappers {
	var w Wrappers
	var mediaParts []string
	var supportsParts []string

	for _, v := range s.Variants {
		switch v.Kind {
		case Responsive:
			mediaParts = append(mediaParts, "(min-width: "+v.Name+"px)")
		case MaxResponsive:
			mediaParts = append(mediaParts, "(max-width: "+v.Name+"px)")
		case Device:
			mediaParts = append(mediaParts, v.Name)
		case Supports:
			supportsParts = append(supportsParts, v.Name)
		case Container:
			w.Container = v.Name
		}
	}
	if len(mediaParts) > 0 {
		w.Media = strings.Join(mediaParts, " and ")
	}
	if len(supportsParts) > 0 {
		w.Supports = strings.Join(supportsParts, " and ")
	}
	return w
}
