// Package rule defines Declaration and Rule, and the insertion-ordered
// Store that merges/deduplicates rules by their wrapper+selector key.
package rule

import (
	"strings"

	"github.com/google/uuid"
)

// Declaration is a single CSS "property: value" pair.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// Rule is a selector (possibly nested inside wrappers) plus an ordered set
// of declarations, per spec §3.
type Rule struct {
	Selector  string
	Media     string // empty if not wrapped in @media
	Container string // empty if not wrapped in @container
	Supports  string // empty if not wrapped in @supports

	Declarations []Declaration

	InsertionOrder  int
	SpecificityHint int
}

// Key is the canonical (supports?, media?, container?, selector) tuple used
// to merge rules, per spec §4.6.
type Key struct {
	Supports  string
	Media     string
	Container string
	Selector  string
}

func (r Rule) key() Key {
	return Key{Supports: r.Supports, Media: r.Media, Container: r.Container, Selector: r.Selector}
}

// Store is an insertion-ordered keyed set of rules. It is not safe for
// concurrent use by multiple writers; per spec §5, the rule store is owned
// by one caller at a time and concurrent submissions must be serialized by
// the caller.
type Store struct {
	// ID is a stable per-store instance identifier, useful for diagnostics
	// and as part of an external cache namespace; grounded on the teacher's
	// pkg/cache/redis.go use of uuid for per-tenant/per-instance namespacing.
	ID string

	order   []Key
	index   map[Key]int // Key -> index into order/rules
	rules   map[Key]*Rule
	nextSeq int
}

// NewStore creates an empty rule store.
func NewStore() *Store {
	return &Store{
		ID:    uuid.NewString(),
		index: make(map[Key]int),
		rules: make(map[Key]*Rule),
	}
}

// Insert merges rule into the store by its (supports, media, container,
// selector) key. If a rule with the same key already exists, its
// declarations are appended (property conflicts resolved per invariant
// (iii): the later declaration wins unless the earlier one was !important
// and the later one isn't). Insertion order is preserved per key — the
// key's position in Store.Keys() reflects its FIRST insertion.
func (s *Store) Insert(r Rule) {
	k := r.key()
	if existing, ok := s.rules[k]; ok {
		existing.Declarations = mergeDeclarations(existing.Declarations, r.Declarations)
		if r.SpecificityHint > existing.SpecificityHint {
			existing.SpecificityHint = r.SpecificityHint
		}
		return
	}
	r.InsertionOrder = s.nextSeq
	s.nextSeq++
	stored := r
	s.rules[k] = &stored
	s.order = append(s.order, k)
	s.index[k] = len(s.order) - 1
}

// mergeDeclarations appends incoming declarations onto existing, applying
// invariant (iii): within one rule, two declarations for the same property
// collapse to one — the later wins unless the earlier was !important and
// the later isn't.
func mergeDeclarations(existing, incoming []Declaration) []Declaration {
	byProp := make(map[string]int, len(existing))
	for i, d := range existing {
		byProp[normalizeProp(d.Property)] = i
	}
	for _, d := range incoming {
		key := normalizeProp(d.Property)
		if i, ok := byProp[key]; ok {
			if existing[i].Important && !d.Important {
				continue
			}
			existing[i] = d
			continue
		}
		byProp[key] = len(existing)
		existing = append(existing, d)
	}
	return existing
}

func normalizeProp(p string) string {
	return strings.ToLower(strings.TrimSpace(p))
}

// Remove deletes the rule at key, if present.
func (s *Store) Remove(k Key) {
	idx, ok := s.index[k]
	if !ok {
		return
	}
	delete(s.rules, k)
	delete(s.index, k)
	s.order = append(s.order[:idx], s.order[idx+1:]...)
	for i := idx; i < len(s.order); i++ {
		s.index[s.order[i]] = i
	}
}

// Clear empties the store, keeping its ID.
func (s *Store) Clear() {
	s.order = nil
	s.index = make(map[Key]int)
	s.rules = make(map[Key]*Rule)
	s.nextSeq = 0
}

// Len reports the number of distinct rules currently stored.
func (s *Store) Len() int { return len(s.order) }

// Rules returns the stored rules in insertion order. The returned slice is
// a defensive copy; mutating it does not affect the store.
func (s *Store) Rules() []Rule {
	out := make([]Rule, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, *s.rules[k])
	}
	return out
}

// Get returns the rule at key, if present.
func (s *Store) Get(k Key) (Rule, bool) {
	r, ok := s.rules[k]
	if !ok {
		return Rule{}, false
	}
	return *r, true
}

// KeyOf exposes key construction for callers (e.g. the optimizer) that need
// to look a rule up by its wrapper/selector tuple.
func KeyOf(supports, media, container, selector string) Key {
	return Key{Supports: supports, Media: media, Container: container, Selector: selector}
}

// Replace overwrites the store's rule list wholesale, used by optimizer
// passes that rebuild the set (e.g. remove-empty, sort). It resets
// insertion-order bookkeeping to the slice's given order.
func (s *Store) Replace(rules []Rule) {
	s.order = make([]Key, 0, len(rules))
	s.index = make(map[Key]int, len(rules))
	s.rules = make(map[Key]*Rule, len(rules))
	for i, r := range rules {
		k := r.key()
		stored := r
		stored.InsertionOrder = i
		s.rules[k] = &stored
		s.order = append(s.order, k)
		s.index[k] = i
	}
	s.nextSeq = len(rules)
}
