package emit

import (
	"strings"
	"testing"

	"github.com/niiniyare/atomiccss/pkg/config"
	"github.com/niiniyare/atomiccss/rule"
)

func TestEmitPretty(t *testing.T) {
	store := rule.NewStore()
	store.Insert(rule.Rule{Selector: ".p-4", Declarations: []rule.Declaration{{Property: "padding", Value: "1rem"}}})

	out := Emit(store, config.EmitterConfig{Minify: false, Indent: "  "})

	if !strings.Contains(out, ".p-4 {\n") {
		t.Fatalf("expected pretty selector block, got %q", out)
	}
	if !strings.Contains(out, "  padding: 1rem;\n") {
		t.Fatalf("expected indented declaration, got %q", out)
	}
}

func TestEmitMinified(t *testing.T) {
	store := rule.NewStore()
	store.Insert(rule.Rule{Selector: ".p-4", Declarations: []rule.Declaration{{Property: "padding", Value: "1rem"}}})

	out := Emit(store, config.EmitterConfig{Minify: true})

	want := ".p-4{padding:1rem}"
	if out != want {
		t.Fatalf("Emit minified = %q, want %q", out, want)
	}
}

func TestEmitGroupsMediaWrapper(t *testing.T) {
	store := rule.NewStore()
	store.Insert(rule.Rule{Selector: ".md\\:flex", Media: "(min-width: 768px)", Declarations: []rule.Declaration{{Property: "display", Value: "flex"}}})

	out := Emit(store, config.EmitterConfig{Minify: true})

	want := "@media (min-width: 768px) {.md\\:flex{display:flex}}"
	if out != want {
		t.Fatalf("Emit media-wrapped = %q, want %q", out, want)
	}
}

func TestEmitSkipsEmptyRule(t *testing.T) {
	store := rule.NewStore()
	store.Insert(rule.Rule{Selector: ".prose"})

	out := Emit(store, config.EmitterConfig{Minify: true})

	if out != "" {
		t.Fatalf("expected no output for empty-declaration rule, got %q", out)
	}
}

func TestEmitImportant(t *testing.T) {
	store := rule.NewStore()
	store.Insert(rule.Rule{Selector: ".force", Declarations: []rule.Declaration{{Property: "display", Value: "none", Important: true}}})

	out := Emit(store, config.EmitterConfig{Minify: true})

	if !strings.Contains(out, "display:none !important}") {
		t.Fatalf("expected !important in output, got %q", out)
	}
}
