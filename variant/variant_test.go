package variant

import (
	"testing"

	"github.com/niiniyare/atomiccss/theme"
)

func TestClassifyResponsive(t *testing.T) {
	th := theme.Default()
	v, err := Classify("md", th)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind != Responsive || v.Name != "768" {
		t.Errorf("got %+v", v)
	}
}

func TestClassifyState(t *testing.T) {
	th := theme.Default()
	v, err := Classify("hover", th)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind != State || v.Name != ":hover" {
		t.Errorf("got %+v", v)
	}
}

func TestClassifyDark(t *testing.T) {
	th := theme.Default()
	v, err := Classify("dark", th)
	if err != nil || v.Kind != Dark {
		t.Errorf("got %+v, err=%v", v, err)
	}
}

func TestClassifyDataAttributeBracketed(t *testing.T) {
	th := theme.Default()
	v, err := Classify("data-[state=open]", th)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind != Data || v.Name != `[data-state="open"]` {
		t.Errorf("got %+v", v)
	}
}

func TestClassifyAriaBoolean(t *testing.T) {
	th := theme.Default()
	v, err := Classify("aria-expanded", th)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Name != `[aria-expanded="true"]` {
		t.Errorf("got %+v", v)
	}
}

func TestClassifyArbitrarySelector(t *testing.T) {
	th := theme.Default()
	v, err := Classify("[&:nth-child(3)]", th)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind != ArbitrarySelector || v.Template != "&:nth-child(3)" {
		t.Errorf("got %+v", v)
	}
}

func TestClassifyArbitrarySelectorRejectsInjection(t *testing.T) {
	th := theme.Default()
	_, err := Classify("[&{background:red}]", th)
	if err == nil {
		t.Fatal("expected rejection of brace-containing arbitrary selector")
	}
}

func TestClassifyUnknownVariant(t *testing.T) {
	th := theme.Default()
	_, err := Classify("not-a-real-variant", th)
	if err == nil {
		t.Fatal("expected UnknownVariant error")
	}
}

func TestSelectorComposition(t *testing.T) {
	th := theme.Default()
	set, err := BuildSet([]string{"dark", "focus"}, th)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := set.Selector(`.dark\:focus\:ring-2`)
	want := `.dark .dark\:focus\:ring-2:focus`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWrapResponsive(t *testing.T) {
	th := theme.Default()
	set, err := BuildSet([]string{"md", "hover"}, th)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := set.Wrap()
	if w.Media != "(min-width: 768px)" {
		t.Errorf("got media=%q", w.Media)
	}
}

func TestStateCommutativity(t *testing.T) {
	th := theme.Default()
	a, _ := BuildSet([]string{"hover", "focus"}, th)
	b, _ := BuildSet([]string{"focus", "hover"}, th)
	// CSS semantics of a pseudo-class chain don't depend on declaration
	// order, even though the literal selector string may differ.
	if a.Selector(".x") == b.Selector(".x") {
		t.Skip("identical order is not required to assert; just confirm both compile")
	}
}
