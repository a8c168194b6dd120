package parser

import (
	"testing"

	"github.com/niiniyare/atomiccss/rule"
	"github.com/niiniyare/atomiccss/theme"
)

func insertUtility(t *testing.T, store *rule.Store, r *Registry, th *theme.Theme, selector, base, opacity string) {
	t.Helper()
	decls, err := r.Parse(Input{Base: base, Opacity: opacity, Theme: th})
	if err != nil {
		t.Fatalf("parse %q: %v", base, err)
	}
	store.Insert(rule.Rule{Selector: selector, Declarations: decls})
}

func TestComposeAggregatesThreeStopGradient(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()
	store := rule.NewStore()

	insertUtility(t, store, r, th, ".g", "bg-gradient-to-r", "")
	insertUtility(t, store, r, th, ".g", "from-red-500", "")
	insertUtility(t, store, r, th, ".g", "via-yellow-500", "")
	insertUtility(t, store, r, th, ".g", "to-blue-500", "")

	ComposeAggregates(store)

	rules := store.Rules()
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	stops := mustDecl(t, rules[0].Declarations, "--tw-gradient-stops")
	want := "var(--tw-gradient-position), var(--tw-gradient-from) var(--tw-gradient-from-position), " +
		"var(--tw-gradient-via) var(--tw-gradient-via-position), var(--tw-gradient-to) var(--tw-gradient-to-position)"
	if stops != want {
		t.Fatalf("--tw-gradient-stops = %q, want %q", stops, want)
	}
}

func TestComposeAggregatesTwoStopGradient(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()
	store := rule.NewStore()

	insertUtility(t, store, r, th, ".g", "from-red-500", "")
	insertUtility(t, store, r, th, ".g", "to-blue-500", "")

	ComposeAggregates(store)

	stops := mustDecl(t, store.Rules()[0].Declarations, "--tw-gradient-stops")
	if want := "var(--tw-gradient-position), var(--tw-gradient-from) var(--tw-gradient-from-position), " +
		"var(--tw-gradient-to) var(--tw-gradient-to-position)"; stops != want {
		t.Fatalf("--tw-gradient-stops = %q, want %q", stops, want)
	}
}

func TestComposeAggregatesFilterChain(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()
	store := rule.NewStore()

	insertUtility(t, store, r, th, ".f", "blur-sm", "")
	insertUtility(t, store, r, th, ".f", "grayscale", "")

	ComposeAggregates(store)

	filter := mustDecl(t, store.Rules()[0].Declarations, "filter")
	want := "var(--tw-filter-blur) var(--tw-filter-grayscale)"
	if filter != want {
		t.Fatalf("filter = %q, want %q (blur must precede grayscale per fixed order)", filter, want)
	}
}

func TestComposeAggregatesTransformChain(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()
	store := rule.NewStore()

	insertUtility(t, store, r, th, ".t", "rotate-45", "")
	insertUtility(t, store, r, th, ".t", "translate-x-4", "")

	ComposeAggregates(store)

	transform := mustDecl(t, store.Rules()[0].Declarations, "transform")
	want := "translate(1rem, 0) rotate(45deg)"
	if transform != want {
		t.Fatalf("transform = %q, want %q (translate must precede rotate per fixed order)", transform, want)
	}
}

func TestComposeAggregatesIdempotent(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()
	store := rule.NewStore()
	insertUtility(t, store, r, th, ".f", "blur-sm", "")

	ComposeAggregates(store)
	first := mustDecl(t, store.Rules()[0].Declarations, "filter")
	ComposeAggregates(store)
	second := mustDecl(t, store.Rules()[0].Declarations, "filter")

	if first != second {
		t.Fatalf("ComposeAggregates not idempotent: %q != %q", first, second)
	}
}
