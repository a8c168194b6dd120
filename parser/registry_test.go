package parser

import (
	"testing"

	apperrors "github.com/niiniyare/atomiccss/pkg/errors"
	"github.com/niiniyare/atomiccss/rule"
	"github.com/niiniyare/atomiccss/theme"
)

func mustDecl(t *testing.T, decls []rule.Declaration, property string) string {
	t.Helper()
	for _, d := range decls {
		if d.Property == property {
			return d.Value
		}
	}
	t.Fatalf("declaration %q not found in %+v", property, decls)
	return ""
}

func TestParseSpacing(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()
	decls, err := r.Parse(Input{Base: "p-4", Theme: th})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustDecl(t, decls, "padding"); got != "1rem" {
		t.Fatalf("padding = %q, want 1rem", got)
	}
}

func TestParseColorWithOpacity(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()
	decls, err := r.Parse(Input{Base: "bg-blue-500", Opacity: "50", Theme: th})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := mustDecl(t, decls, "background-color")
	want := "rgb(59 130 246 / 50%)"
	if got != want {
		t.Fatalf("background-color = %q, want %q", got, want)
	}
}

func TestParseUnknownUtility(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()
	_, err := r.Parse(Input{Base: "totally-bogus-utility", Theme: th})
	if !apperrors.Is(err, apperrors.UnknownUtility) {
		t.Fatalf("expected UnknownUtility, got %v", err)
	}
}

func TestParseArbitraryProperty(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()
	decls, err := r.Parse(Input{Base: "[mask-type:alpha]", Theme: th})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustDecl(t, decls, "mask-type"); got != "alpha" {
		t.Fatalf("mask-type = %q, want alpha", got)
	}
}

func TestParseArbitraryValueWithUnderscore(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()
	decls, err := r.Parse(Input{Base: "bg-[rgb(10_20_30)]", Theme: th})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustDecl(t, decls, "background-color"); got != "rgb(10 20 30)" {
		t.Fatalf("background-color = %q, want rgb(10 20 30)", got)
	}
}

func TestParseFraction(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()
	decls, err := r.Parse(Input{Base: "w-1", Opacity: "2", Theme: th})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustDecl(t, decls, "width"); got != "50%" {
		t.Fatalf("width = %q, want 50%%", got)
	}
}

func TestParseThemeMissOnUnknownShade(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()
	_, err := r.Parse(Input{Base: "bg-blue-999", Theme: th})
	if !apperrors.Is(err, apperrors.ThemeMiss) {
		t.Fatalf("expected ThemeMiss, got %v", err)
	}
}

func TestParseMalformedArbitraryProperty(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()
	_, err := r.Parse(Input{Base: "[no-colon-here]", Theme: th})
	if !apperrors.Is(err, apperrors.MalformedToken) {
		t.Fatalf("expected MalformedToken, got %v", err)
	}
}

func TestParseProseIsZeroDeclaration(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()
	decls, err := r.Parse(Input{Base: "prose", Theme: th})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decls) != 0 {
		t.Fatalf("expected zero declarations for prose, got %+v", decls)
	}
}

func TestParseDataAttributeGrouping(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()
	decls, err := r.Parse(Input{Base: "(data-open:block)", Theme: th})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustDecl(t, decls, "display"); got != "block" {
		t.Fatalf("display = %q, want block", got)
	}
}

func TestParseMaskRepeatAndPosition(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()

	decls, err := r.Parse(Input{Base: "mask-repeat-round", Theme: th})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustDecl(t, decls, "mask-repeat"); got != "round" {
		t.Fatalf("mask-repeat = %q, want round", got)
	}

	decls, err = r.Parse(Input{Base: "mask-top-left", Theme: th})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustDecl(t, decls, "mask-position"); got != "top left" {
		t.Fatalf("mask-position = %q, want %q", got, "top left")
	}
}

func TestParseMaskNone(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()
	decls, err := r.Parse(Input{Base: "mask-none", Theme: th})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustDecl(t, decls, "mask-image"); got != "none" {
		t.Fatalf("mask-image = %q, want none", got)
	}
}

func TestParseTableLayoutAndBorderCollapse(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()

	decls, err := r.Parse(Input{Base: "table-fixed", Theme: th})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustDecl(t, decls, "table-layout"); got != "fixed" {
		t.Fatalf("table-layout = %q, want fixed", got)
	}

	decls, err = r.Parse(Input{Base: "border-collapse", Theme: th})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustDecl(t, decls, "border-collapse"); got != "collapse" {
		t.Fatalf("border-collapse = %q, want collapse", got)
	}
}

func TestParseBorderSpacing(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()
	decls, err := r.Parse(Input{Base: "border-spacing-4", Theme: th})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustDecl(t, decls, "--tw-border-spacing-x"); got != "1rem" {
		t.Fatalf("--tw-border-spacing-x = %q, want 1rem", got)
	}
	if got := mustDecl(t, decls, "--tw-border-spacing-y"); got != "1rem" {
		t.Fatalf("--tw-border-spacing-y = %q, want 1rem", got)
	}
}

func TestParseSVGFillNoneAndStrokeWidth(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()

	decls, err := r.Parse(Input{Base: "fill-none", Theme: th})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustDecl(t, decls, "fill"); got != "none" {
		t.Fatalf("fill = %q, want none", got)
	}

	decls, err = r.Parse(Input{Base: "stroke-2", Theme: th})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustDecl(t, decls, "stroke-width"); got != "2" {
		t.Fatalf("stroke-width = %q, want 2", got)
	}
}

func TestParseTransitionPropertyDurationEase(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()

	decls, err := r.Parse(Input{Base: "transition-colors", Theme: th})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mustDecl(t, decls, "transition-property")

	decls, err = r.Parse(Input{Base: "duration-150", Theme: th})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustDecl(t, decls, "transition-duration"); got != "150ms" {
		t.Fatalf("transition-duration = %q, want 150ms", got)
	}

	decls, err = r.Parse(Input{Base: "ease-in-out", Theme: th})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustDecl(t, decls, "transition-timing-function"); got != "cubic-bezier(0.4, 0, 0.2, 1)" {
		t.Fatalf("transition-timing-function = %q, want cubic-bezier(0.4, 0, 0.2, 1)", got)
	}
}

func TestParseAnimationOwnsOnlyAnimatePrefix(t *testing.T) {
	r := NewRegistry()
	th := theme.Default()

	decls, err := r.Parse(Input{Base: "animate-spin", Theme: th})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustDecl(t, decls, "animation-name"); got != "spin" {
		t.Fatalf("animation-name = %q, want spin", got)
	}

	// duration-*/ease-* now resolve through the transition family, not animation.
	decls, err = r.Parse(Input{Base: "duration-300", Theme: th})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mustDecl(t, decls, "transition-duration"); got != "300ms" {
		t.Fatalf("transition-duration = %q, want 300ms", got)
	}
}
