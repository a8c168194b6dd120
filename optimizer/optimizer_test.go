package optimizer

import (
	"testing"

	"github.com/niiniyare/atomiccss/rule"
)

func TestRemoveEmpty(t *testing.T) {
	store := rule.NewStore()
	store.Insert(rule.Rule{Selector: ".a", Declarations: []rule.Declaration{{Property: "color", Value: "red"}}})
	store.Insert(rule.Rule{Selector: ".prose"})

	RemoveEmpty(store)

	if store.Len() != 1 {
		t.Fatalf("expected 1 rule after RemoveEmpty, got %d", store.Len())
	}
}

func TestDedupeDeclsImportantWins(t *testing.T) {
	store := rule.NewStore()
	store.Replace([]rule.Rule{{
		Selector: ".a",
		Declarations: []rule.Declaration{
			{Property: "color", Value: "red", Important: true},
			{Property: "color", Value: "blue"},
		},
	}})

	DedupeDecls(store)

	decls := store.Rules()[0].Declarations
	if len(decls) != 1 || decls[0].Value != "red" {
		t.Fatalf("expected important red to survive, got %+v", decls)
	}
}

func TestMergeIdenticalJoinsSelectors(t *testing.T) {
	store := rule.NewStore()
	store.Insert(rule.Rule{Selector: ".a", Declarations: []rule.Declaration{{Property: "display", Value: "flex"}}})
	store.Insert(rule.Rule{Selector: ".b", Declarations: []rule.Declaration{{Property: "display", Value: "flex"}}})
	store.Insert(rule.Rule{Selector: ".c", Declarations: []rule.Declaration{{Property: "display", Value: "grid"}}})

	MergeIdentical(store)

	rules := store.Rules()
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules after merge, got %d", len(rules))
	}
	if rules[0].Selector != ".a, .b" {
		t.Fatalf("expected merged selector \".a, .b\", got %q", rules[0].Selector)
	}
}

func TestNormalizeLowercasesPropertyAndCollapsesWhitespace(t *testing.T) {
	store := rule.NewStore()
	store.Replace([]rule.Rule{{
		Selector:     ".a",
		Declarations: []rule.Declaration{{Property: "  Color ", Value: "red   blue"}},
	}})

	Normalize(store)

	d := store.Rules()[0].Declarations[0]
	if d.Property != "color" || d.Value != "red blue" {
		t.Fatalf("unexpected normalized declaration: %+v", d)
	}
}

func TestSortPropertiesAlphabetical(t *testing.T) {
	store := rule.NewStore()
	store.Replace([]rule.Rule{{
		Selector: ".a",
		Declarations: []rule.Declaration{
			{Property: "color", Value: "red"},
			{Property: "background-color", Value: "blue"},
		},
	}})

	SortProperties(store)

	decls := store.Rules()[0].Declarations
	if decls[0].Property != "background-color" || decls[1].Property != "color" {
		t.Fatalf("expected alphabetical order, got %+v", decls)
	}
}

func TestSortGroupsUngroupedFirst(t *testing.T) {
	store := rule.NewStore()
	store.Insert(rule.Rule{Selector: ".media", Media: "(min-width: 768px)", Declarations: []rule.Declaration{{Property: "color", Value: "red"}}})
	store.Insert(rule.Rule{Selector: ".plain", Declarations: []rule.Declaration{{Property: "color", Value: "blue"}}})

	Sort(store)

	rules := store.Rules()
	if rules[0].Selector != ".plain" {
		t.Fatalf("expected ungrouped rule first, got %q", rules[0].Selector)
	}
	if rules[1].Media == "" {
		t.Fatalf("expected grouped rule second")
	}
}

func TestSortOrdersWrapperTiersSupportsBeforeMediaBeforeContainer(t *testing.T) {
	store := rule.NewStore()
	store.Insert(rule.Rule{Selector: ".c", Container: "(min-width: 400px)", Declarations: []rule.Declaration{{Property: "color", Value: "red"}}})
	store.Insert(rule.Rule{Selector: ".m", Media: "(min-width: 768px)", Declarations: []rule.Declaration{{Property: "color", Value: "blue"}}})
	store.Insert(rule.Rule{Selector: ".s", Supports: "(display: grid)", Declarations: []rule.Declaration{{Property: "color", Value: "green"}}})
	store.Insert(rule.Rule{Selector: ".plain", Declarations: []rule.Declaration{{Property: "color", Value: "black"}}})

	Sort(store)

	rules := store.Rules()
	got := []string{rules[0].Selector, rules[1].Selector, rules[2].Selector, rules[3].Selector}
	want := []string{".plain", ".s", ".m", ".c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected tier order %v, got %v", want, got)
		}
	}
}

func TestSortOrdersMediaQueriesLexicallyNotByInsertion(t *testing.T) {
	store := rule.NewStore()
	store.Insert(rule.Rule{Selector: ".narrow", Media: "(min-width: 768px)", Declarations: []rule.Declaration{{Property: "color", Value: "blue"}}})
	store.Insert(rule.Rule{Selector: ".wide", Media: "(min-width: 1024px)", Declarations: []rule.Declaration{{Property: "color", Value: "red"}}})

	Sort(store)

	rules := store.Rules()
	if rules[0].Selector != ".wide" || rules[1].Selector != ".narrow" {
		t.Fatalf("expected lexical wrapper-string order (\"(min-width: 1024px)\" before \"(min-width: 768px)\"), got %q then %q", rules[0].Selector, rules[1].Selector)
	}
}

func TestSortBreaksWrapperStringTiesBySpecificityThenInsertionOrder(t *testing.T) {
	store := rule.NewStore()
	store.Insert(rule.Rule{Selector: ".first", Media: "(min-width: 768px)", Declarations: []rule.Declaration{{Property: "color", Value: "red"}}, SpecificityHint: 10})
	store.Insert(rule.Rule{Selector: ".second", Media: "(min-width: 768px)", Declarations: []rule.Declaration{{Property: "color", Value: "blue"}}, SpecificityHint: 20})

	Sort(store)

	rules := store.Rules()
	if rules[0].Selector != ".first" || rules[1].Selector != ".second" {
		t.Fatalf("expected lower specificity_hint first, got %q then %q", rules[0].Selector, rules[1].Selector)
	}
}
