package rule

import "testing"

func TestInsertDedup(t *testing.T) {
	s := NewStore()
	s.Insert(Rule{Selector: ".p-4", Declarations: []Declaration{{Property: "padding", Value: "1rem"}}})
	s.Insert(Rule{Selector: ".p-4", Declarations: []Declaration{{Property: "padding", Value: "2rem"}}})

	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	r, _ := s.Get(KeyOf("", "", "", ".p-4"))
	if len(r.Declarations) != 1 || r.Declarations[0].Value != "2rem" {
		t.Errorf("got %+v, want single padding:2rem (later wins)", r.Declarations)
	}
}

func TestInsertImportantWins(t *testing.T) {
	s := NewStore()
	s.Insert(Rule{Selector: ".x", Declarations: []Declaration{{Property: "color", Value: "red", Important: true}}})
	s.Insert(Rule{Selector: ".x", Declarations: []Declaration{{Property: "color", Value: "blue"}}})

	r, _ := s.Get(KeyOf("", "", "", ".x"))
	if r.Declarations[0].Value != "red" {
		t.Errorf("expected earlier !important to win, got %+v", r.Declarations)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := NewStore()
	s.Insert(Rule{Selector: ".b"})
	s.Insert(Rule{Selector: ".a"})
	rules := s.Rules()
	if rules[0].Selector != ".b" || rules[1].Selector != ".a" {
		t.Errorf("insertion order not preserved: %+v", rules)
	}
}

func TestRemove(t *testing.T) {
	s := NewStore()
	s.Insert(Rule{Selector: ".a"})
	s.Insert(Rule{Selector: ".b"})
	s.Remove(KeyOf("", "", "", ".a"))
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	if _, ok := s.Get(KeyOf("", "", "", ".a")); ok {
		t.Error(".a should have been removed")
	}
}

func TestDifferentWrappersDoNotMerge(t *testing.T) {
	s := NewStore()
	s.Insert(Rule{Selector: ".x", Media: "(min-width: 768px)", Declarations: []Declaration{{Property: "color", Value: "red"}}})
	s.Insert(Rule{Selector: ".x", Declarations: []Declaration{{Property: "color", Value: "blue"}}})
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (different media contexts)", s.Len())
	}
}

func TestStoreIDsAreUnique(t *testing.T) {
	a, b := NewStore(), NewStore()
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("store IDs must be non-empty and unique: %q vs %q", a.ID, b.ID)
	}
}
