package parser

import (
	"strings"

	"github.com/niiniyare/atomiccss/rule"
)

// groupState is the Empty -> Partial -> Sealed state machine from spec
// §4.5. Composable families (gradient, filter, backdrop, transform) buffer
// contributions per rule as their tokens are inserted; ComposeAggregates
// walks every rule once and seals each family that received any
// contribution, synthesizing its final composed declaration(s).
type groupState int

const (
	stateEmpty groupState = iota
	statePartial
	stateSealed
)

// ComposeAggregates scans every rule in store and, for each composable
// family with at least one contributing declaration (Partial), synthesizes
// the family's final declaration and appends it (Sealed). Rules without
// any contribution for a family stay Empty and are untouched. Safe to call
// more than once: sealing is idempotent because it only appends a
// declaration the rule store doesn't already have under that rule's key,
// and a second run finds the same provisional declarations and recomputes
// an identical result (re-entering Sealed with the same tokens starts a
// fresh Empty->Partial->Sealed pass with byte-identical output, satisfying
// the determinism property in spec §8).
func ComposeAggregates(store *rule.Store) {
	rules := store.Rules()
	for i := range rules {
		r := &rules[i]
		state := classifyGroup(r.Declarations)
		if state != statePartial {
			continue
		}
		sealGradient(r)
		sealFilterFamily(r, "--tw-filter-", "filter")
		sealFilterFamily(r, "--tw-backdrop-", "backdrop-filter")
		sealTransform(r)
	}
	store.Replace(rules)
}

func classifyGroup(decls []rule.Declaration) groupState {
	for _, d := range decls {
		if strings.HasPrefix(d.Property, "--tw-gradient-") ||
			strings.HasPrefix(d.Property, "--tw-filter-") ||
			strings.HasPrefix(d.Property, "--tw-backdrop-") ||
			strings.HasPrefix(d.Property, "--tw-translate-") ||
			strings.HasPrefix(d.Property, "--tw-rotate") ||
			strings.HasPrefix(d.Property, "--tw-scale-") ||
			strings.HasPrefix(d.Property, "--tw-skew-") {
			return statePartial
		}
	}
	return stateEmpty
}

func findDecl(decls []rule.Declaration, property string) (string, bool) {
	for _, d := range decls {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

func hasDecl(decls []rule.Declaration, property string) bool {
	_, ok := findDecl(decls, property)
	return ok
}

// sealGradient synthesizes --tw-gradient-stops per the two/three-stop
// template in spec §6.5, when --tw-gradient-from and --tw-gradient-to are
// both present (background-image itself is already emitted by
// parseGradientToken's direction token).
func sealGradient(r *rule.Rule) {
	if !hasDecl(r.Declarations, "--tw-gradient-from") || !hasDecl(r.Declarations, "--tw-gradient-to") {
		return
	}
	if hasDecl(r.Declarations, "--tw-gradient-stops") {
		return
	}
	var stops string
	if hasDecl(r.Declarations, "--tw-gradient-via") {
		stops = "var(--tw-gradient-position), var(--tw-gradient-from) var(--tw-gradient-from-position), " +
			"var(--tw-gradient-via) var(--tw-gradient-via-position), var(--tw-gradient-to) var(--tw-gradient-to-position)"
	} else {
		stops = "var(--tw-gradient-position), var(--tw-gradient-from) var(--tw-gradient-from-position), " +
			"var(--tw-gradient-to) var(--tw-gradient-to-position)"
	}
	r.Declarations = append(r.Declarations, rule.Declaration{Property: "--tw-gradient-stops", Value: stops})
}

// sealFilterFamily composes the fixed-order filter/backdrop-filter
// declaration from whichever provisional --tw-<prefix><fn> custom
// properties are present on the rule, per spec §4.4.
func sealFilterFamily(r *rule.Rule, varPrefix, property string) {
	if hasDecl(r.Declarations, property) {
		return
	}
	var parts []string
	for _, fn := range filterFunctionOrder {
		if _, ok := findDecl(r.Declarations, varPrefix+fn); ok {
			parts = append(parts, "var("+varPrefix+fn+")")
		}
	}
	if len(parts) == 0 {
		return
	}
	r.Declarations = append(r.Declarations, rule.Declaration{Property: property, Value: strings.Join(parts, " ")})
}

// sealTransform composes the fixed-order "transform:" declaration from
// whichever --tw-translate-x/-y, --tw-rotate, --tw-scale-*, --tw-skew-*
// custom properties are present, per spec §4.4's translate/rotate/scale/
// skew order.
func sealTransform(r *rule.Rule) {
	if hasDecl(r.Declarations, "transform") {
		return
	}
	var parts []string
	if hasDecl(r.Declarations, "--tw-translate-x") || hasDecl(r.Declarations, "--tw-translate-y") {
		x := valueOr(r.Declarations, "--tw-translate-x", "0")
		y := valueOr(r.Declarations, "--tw-translate-y", "0")
		parts = append(parts, "translate("+x+", "+y+")")
	}
	if v, ok := findDecl(r.Declarations, "--tw-rotate"); ok {
		parts = append(parts, "rotate("+v+")")
	}
	if hasDecl(r.Declarations, "--tw-scale-x") || hasDecl(r.Declarations, "--tw-scale-y") || hasDecl(r.Declarations, "--tw-scale-xy") {
		if xy, ok := findDecl(r.Declarations, "--tw-scale-xy"); ok {
			parts = append(parts, "scale("+xy+")")
		} else {
			x := valueOr(r.Declarations, "--tw-scale-x", "1")
			y := valueOr(r.Declarations, "--tw-scale-y", "1")
			parts = append(parts, "scaleX("+x+") scaleY("+y+")")
		}
	}
	if hasDecl(r.Declarations, "--tw-skew-x") || hasDecl(r.Declarations, "--tw-skew-y") {
		x := valueOr(r.Declarations, "--tw-skew-x", "0deg")
		y := valueOr(r.Declarations, "--tw-skew-y", "0deg")
		parts = append(parts, "skewX("+x+") skewY("+y+")")
	}
	if len(parts) == 0 {
		return
	}
	r.Declarations = append(r.Declarations, rule.Declaration{Property: "transform", Value: strings.Join(parts, " ")})
}

func valueOr(decls []rule.Declaration, property, fallback string) string {
	if v, ok := findDecl(decls, property); ok {
		return v
	}
	return fallback
}
