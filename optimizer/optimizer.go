// Package optimizer implements the pure, idempotent rule-store passes from
// spec §4.8: remove-empty, dedupe-decls, merge-identical, normalize, sort,
// and sort-properties. Each pass reads the full rule set and writes it back
// via Store.Replace, so passes compose by straight-line sequencing — no
// pass depends on another having run first, though the documented default
// order (below, in Run) produces the smallest/most stable output.
package optimizer

import (
	"sort"
	"strings"

	"github.com/niiniyare/atomiccss/pkg/config"
	"github.com/niiniyare/atomiccss/rule"
)

// Run applies every enabled pass from cfg to store, in the fixed order
// remove-empty, dedupe-decls, merge-identical, normalize, sort-properties,
// sort. Grounded on the teacher's theme/compiler.go CachedCompilation
// pipeline shape (a sequence of named, independently-toggleable
// transformation steps over one accumulated buffer).
func Run(store *rule.Store, cfg config.OptimizerConfig) {
	if cfg.RemoveEmpty {
		RemoveEmpty(store)
	}
	if cfg.DedupeDecls {
		DedupeDecls(store)
	}
	if cfg.MergeIdentical {
		MergeIdentical(store)
	}
	if cfg.Normalize {
		Normalize(store)
	}
	if cfg.SortProperties {
		SortProperties(store)
	}
	if cfg.Sort {
		Sort(store)
	}
}

// RemoveEmpty drops every rule with zero declarations (e.g. a prose
// passthrough token that never picked up a composed sibling).
func RemoveEmpty(store *rule.Store) {
	rules := store.Rules()
	out := rules[:0]
	for _, r := range rules {
		if len(r.Declarations) > 0 {
			out = append(out, r)
		}
	}
	store.Replace(out)
}

// DedupeDecls collapses same-property declarations within each rule, later
// wins unless the earlier was !important and the later isn't — the same
// invariant (iii) rule rule.Store.Insert already applies incrementally,
// reapplied here defensively for rules assembled outside the store (e.g. a
// hand-built Replace call from a test or an external caller).
func DedupeDecls(store *rule.Store) {
	rules := store.Rules()
	for i := range rules {
		rules[i].Declarations = dedupe(rules[i].Declarations)
	}
	store.Replace(rules)
}

func dedupe(decls []rule.Declaration) []rule.Declaration {
	byProp := make(map[string]int, len(decls))
	out := make([]rule.Declaration, 0, len(decls))
	for _, d := range decls {
		key := strings.ToLower(strings.TrimSpace(d.Property))
		if i, ok := byProp[key]; ok {
			if out[i].Important && !d.Important {
				continue
			}
			out[i] = d
			continue
		}
		byProp[key] = len(out)
		out = append(out, d)
	}
	return out
}

// MergeIdentical combines rules that share the same wrapper context
// (media/container/supports) and an identical declaration set, joining
// their selectors with ", " — the standard CSS selector-grouping
// shorthand. The merged rule keeps the earliest contributor's insertion
// order so Sort still emits it where the first of the group appeared.
func MergeIdentical(store *rule.Store) {
	rules := store.Rules()
	type bucketKey struct {
		media, container, supports, body string
	}
	order := make([]bucketKey, 0, len(rules))
	buckets := make(map[bucketKey]*rule.Rule)
	selectors := make(map[bucketKey][]string)

	for _, r := range rules {
		k := bucketKey{r.Media, r.Container, r.Supports, declBody(r.Declarations)}
		if existing, ok := buckets[k]; ok {
			selectors[k] = append(selectors[k], r.Selector)
			if r.SpecificityHint > existing.SpecificityHint {
				existing.SpecificityHint = r.SpecificityHint
			}
			continue
		}
		stored := r
		buckets[k] = &stored
		selectors[k] = []string{r.Selector}
		order = append(order, k)
	}

	out := make([]rule.Rule, 0, len(order))
	for _, k := range order {
		r := *buckets[k]
		r.Selector = strings.Join(selectors[k], ", ")
		out = append(out, r)
	}
	store.Replace(out)
}

func declBody(decls []rule.Declaration) string {
	var b strings.Builder
	for _, d := range decls {
		b.WriteString(d.Property)
		b.WriteByte(':')
		b.WriteString(d.Value)
		if d.Important {
			b.WriteString("!important")
		}
		b.WriteByte(';')
	}
	return b.String()
}

// Normalize lowercases and trims every property name and collapses
// redundant whitespace in values, so two declarations that differ only in
// incidental formatting compare equal for DedupeDecls/MergeIdentical.
func Normalize(store *rule.Store) {
	rules := store.Rules()
	for i := range rules {
		for j := range rules[i].Declarations {
			d := &rules[i].Declarations[j]
			d.Property = strings.ToLower(strings.TrimSpace(d.Property))
			d.Value = collapseWhitespace(strings.TrimSpace(d.Value))
		}
	}
	store.Replace(rules)
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	prevSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' {
			if !prevSpace {
				b.WriteByte(' ')
			}
			prevSpace = true
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// SortProperties orders each rule's declarations alphabetically by
// property name, stable on ties (so equal-named !important/non-important
// pairs — already deduped by DedupeDecls in the default pipeline — keep
// their relative order). Purely cosmetic: declaration order across
// distinct properties never changes cascade semantics within one rule.
func SortProperties(store *rule.Store) {
	rules := store.Rules()
	for i := range rules {
		decls := rules[i].Declarations
		sort.SliceStable(decls, func(a, b int) bool {
			return decls[a].Property < decls[b].Property
		})
	}
	store.Replace(rules)
}

// Sort orders rules for emission per spec §4.9's grouping contract: (1)
// top-level rules with no wrapper, (2) rules wrapped in @supports, (3) in
// @media, (4) in @container — each of the three wrapped tiers sorted by its
// wrapper string with a plain byte-wise comparison, not by first-seen
// order. This is lexical, not numeric, order: "(min-width: 1024px)" sorts
// before "(min-width: 768px)" whichever was inserted first. A rule matching more than one wrapper
// kind is bucketed by the tier spec §4.9 lists first (supports, then media,
// then container). Within one wrapper-string group, ties break on
// spec §4.8's (specificity_hint, insertion_order) pair.
func Sort(store *rule.Store) {
	rules := store.Rules()

	const (
		tierNone = iota
		tierSupports
		tierMedia
		tierContainer
	)

	type tiered struct {
		rule rule.Rule
		tier int
		key  string
	}

	ts := make([]tiered, len(rules))
	for i, r := range rules {
		switch {
		case r.Supports != "":
			ts[i] = tiered{r, tierSupports, r.Supports}
		case r.Media != "":
			ts[i] = tiered{r, tierMedia, r.Media}
		case r.Container != "":
			ts[i] = tiered{r, tierContainer, r.Container}
		default:
			ts[i] = tiered{r, tierNone, ""}
		}
	}

	sort.SliceStable(ts, func(a, b int) bool {
		if ts[a].tier != ts[b].tier {
			return ts[a].tier < ts[b].tier
		}
		if ts[a].key != ts[b].key {
			return ts[a].key < ts[b].key
		}
		if ts[a].rule.SpecificityHint != ts[b].rule.SpecificityHint {
			return ts[a].rule.SpecificityHint < ts[b].rule.SpecificityHint
		}
		return ts[a].rule.InsertionOrder < ts[b].rule.InsertionOrder
	})

	out := make([]rule.Rule, len(ts))
	for i, t := range ts {
		out[i] = t.rule
	}
	store.Replace(out)
}
