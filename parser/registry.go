// Package parser implements the utility parser registry from spec §4.4: a
// priority-ordered, first-success-wins dispatch of family parsers that map
// a token's base fragment (plus its resolved opacity, if any) to CSS
// declarations, plus the element/group aggregator from spec §4.5 for
// families that compose across multiple tokens (gradients, filter chains,
// transform chains).
package parser

import (
	"sort"

	apperrors "github.com/niiniyare/atomiccss/pkg/errors"
	"github.com/niiniyare/atomiccss/rule"
	"github.com/niiniyare/atomiccss/theme"
)

// Input is what a Parser receives: the utility base fragment (without
// variants), the opacity suffix captured by the lexer (if any), and the
// theme to resolve design tokens against.
type Input struct {
	Base    string
	Opacity string
	Theme   *theme.Theme
}

// Func maps a token's base fragment to declarations. It returns
// (nil, false, nil) when it does not recognize base, handing control to
// the next parser in priority order. A non-nil error short-circuits the
// registry with a typed failure (InvalidValue/ThemeMiss) — the caller
// converts it into a diagnostic.
type Func func(in Input) ([]rule.Declaration, bool, error)

// entry pairs a registered parser with its priority and registration
// sequence, used to break ties by registration order per spec §4.4.
type entry struct {
	name     string
	priority int
	seq      int
	fn       Func
}

// Registry is an ordered, priority-dispatched collection of utility
// parsers. The zero value is not usable; use NewRegistry.
type Registry struct {
	entries []entry
	seq     int
	sorted  bool
}

// NewRegistry builds a Registry pre-populated with every built-in family
// parser at its spec §4.4 default priority.
func NewRegistry() *Registry {
	r := &Registry{}
	registerBuiltins(r)
	return r
}

// Register adds a parser at the given priority. Higher priority parsers
// are tried first; among equal priorities, earlier registrations win
// ("first success wins" at equal priority, by registration order), per
// spec §4.4 and the public register_parser operation in spec §6.1.
func (r *Registry) Register(name string, priority int, fn Func) {
	r.entries = append(r.entries, entry{name: name, priority: priority, seq: r.seq, fn: fn})
	r.seq++
	r.sorted = false
}

func (r *Registry) ensureSorted() {
	if r.sorted {
		return
	}
	sort.SliceStable(r.entries, func(i, j int) bool {
		if r.entries[i].priority != r.entries[j].priority {
			return r.entries[i].priority > r.entries[j].priority
		}
		return r.entries[i].seq < r.entries[j].seq
	})
	r.sorted = true
}

// Parse dispatches base (plus opacity/theme context) through the registry
// in priority order, returning the first parser's successful result.
// Returns UnknownUtility if no parser recognizes base.
func (r *Registry) Parse(in Input) ([]rule.Declaration, error) {
	r.ensureSorted()
	for _, e := range r.entries {
		decls, ok, err := e.fn(in)
		if err != nil {
			return nil, err
		}
		if ok {
			return decls, nil
		}
	}
	return nil, apperrors.NewErrorf(apperrors.UnknownUtility, "no parser recognizes utility %q", in.Base).WithPath(in.Base)
}

// Priorities from spec §4.4.
const (
	PriorityArbitraryProperty = 100
	PriorityDataAttribute     = 90
	PriorityTypography        = 65
	PriorityScalarHigh        = 70
	PriorityScalarLow         = 60
	PriorityComposite         = 55
	PriorityLayout            = 50
	PriorityEffects           = 45
	PriorityTransform         = 40
	PriorityCatchAll          = 10
)

func registerBuiltins(r *Registry) {
	r.Register("arbitrary-property", PriorityArbitraryProperty, parseArbitraryProperty)
	r.Register("data-attribute", PriorityDataAttribute, parseDataAttributeUtility(r))
	r.Register("typography", PriorityTypography, parseTypography)
	r.Register("color", PriorityScalarHigh, parseColor)
	r.Register("spacing", PriorityScalarLow, parseSpacing)
	r.Register("sizing", PriorityScalarLow, parseSizing)
	r.Register("gradient-stub", PriorityComposite, parseGradientToken)
	r.Register("filter-stub", PriorityComposite, parseFilterToken)
	r.Register("backdrop-stub", PriorityComposite, parseBackdropToken)
	r.Register("transform-stub", PriorityTransform, parseTransformToken)
	r.Register("animation", PriorityTransform, parseAnimation)
	r.Register("transition", PriorityTransform, parseTransition)
	r.Register("layout", PriorityLayout, parseLayout)
	r.Register("flex", PriorityLayout, parseFlex)
	r.Register("grid", PriorityLayout, parseGrid)
	r.Register("border", PriorityLayout, parseBorder)
	r.Register("background", PriorityLayout, parseBackground)
	r.Register("table", PriorityLayout, parseTable)
	r.Register("svg", PriorityLayout, parseSVG)
	r.Register("mask", PriorityLayout, parseMask)
	r.Register("effects", PriorityEffects, parseEffects)
	r.Register("prose", PriorityCatchAll, parseProse)
	r.Register("catch-all", PriorityCatchAll, parseCatchAll)
}
