package compiler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/niiniyare/atomiccss/parser"
	"github.com/niiniyare/atomiccss/pkg/config"
	"github.com/niiniyare/atomiccss/rule"
)

func testConfig() *config.Config {
	return &config.Config{
		Metrics: config.MetricsConfig{Enabled: false},
		Compiler: config.CompilerConfig{
			DarkModeStrategy: "class",
			MaxVariants:      8,
		},
		Optimizer: config.OptimizerConfig{
			RemoveEmpty:    true,
			DedupeDecls:    true,
			MergeIdentical: true,
			Normalize:      true,
			Sort:           true,
		},
		Emitter: config.EmitterConfig{Minify: true},
		Cache: config.CacheConfig{
			Enabled:      true,
			L1MaxEntries: 1000,
			L1MaxCostMB:  1,
		},
	}
}

func newTestCompiler(t *testing.T) *Compiler {
	t.Helper()
	c, err := NewFromConfig(testConfig(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func ruleFor(t *testing.T, c *Compiler, selector string) []string {
	t.Helper()
	for _, r := range c.Store().Rules() {
		if r.Selector == selector {
			out := make([]string, 0, len(r.Declarations))
			for _, d := range r.Declarations {
				out = append(out, d.Property+":"+d.Value)
			}
			return out
		}
	}
	require.Failf(t, "no rule found", "selector %q not among %d rules", selector, c.Store().Len())
	return nil
}

// Scenario 1 (spec §8): p-4 -> .p-4 { padding: 1rem; }
func TestInsertTokenSimpleUtility(t *testing.T) {
	c := newTestCompiler(t)
	require.NoError(t, c.InsertToken("p-4"))

	decls := ruleFor(t, c, ".p-4")
	require.Equal(t, []string{"padding:1rem"}, decls)
}

// Scenario 2 (spec §8): md:hover:bg-blue-500/50 ->
// @media (min-width: 768px) { .md\:hover\:bg-blue-500\/50:hover { background-color: rgb(59 130 246 / 50%); } }
func TestInsertTokenResponsiveStateOpacity(t *testing.T) {
	c := newTestCompiler(t)
	require.NoError(t, c.InsertToken("md:hover:bg-blue-500/50"))

	wantSelector := `.md\:hover\:bg-blue-500\/50:hover`
	rules := c.Store().Rules()
	var found *rule.Rule
	for i, r := range rules {
		if r.Selector == wantSelector {
			found = &rules[i]
		}
	}
	require.NotNil(t, found, "selector %q not found", wantSelector)
	require.Equal(t, "(min-width: 768px)", found.Media)
	require.Equal(t, []rule.Declaration{{Property: "background-color", Value: "rgb(59 130 246 / 50%)"}}, found.Declarations)
}

// Scenario 3 (spec §8): a three-stop gradient written as four tokens for
// one element composes into a single rule keyed on the first token.
func TestInsertGroupGradientComposition(t *testing.T) {
	c := newTestCompiler(t)
	require.NoError(t, c.InsertGroup("bg-gradient-to-r", "from-pink-400", "via-purple-500", "to-blue-600"))
	c.Optimize(config.OptimizerConfig{}) // seal the aggregate; no other passes needed

	require.Equal(t, 1, c.Store().Len(), "all four tokens should share the group selector")
	decls := ruleFor(t, c, ".bg-gradient-to-r")

	want := []string{
		"--tw-gradient-position:to right",
		"background-image:linear-gradient(var(--tw-gradient-stops))",
		"--tw-gradient-from:#f472b6",
		"--tw-gradient-from-position:0%",
		"--tw-gradient-via:#a855f7",
		"--tw-gradient-via-position:50%",
		"--tw-gradient-to:#2563eb",
		"--tw-gradient-to-position:100%",
		"--tw-gradient-stops:var(--tw-gradient-position), var(--tw-gradient-from) var(--tw-gradient-from-position), " +
			"var(--tw-gradient-via) var(--tw-gradient-via-position), var(--tw-gradient-to) var(--tw-gradient-to-position)",
	}
	for _, w := range want {
		require.Contains(t, decls, w)
	}
}

// Scenario 4 (spec §8): bg-[rgb(10_20_30)] ->
// .bg-\[rgb\(10_20_30\)\] { background-color: rgb(10 20 30); }
func TestInsertTokenArbitraryValueWithUnderscore(t *testing.T) {
	c := newTestCompiler(t)
	require.NoError(t, c.InsertToken("bg-[rgb(10_20_30)]"))

	decls := ruleFor(t, c, `.bg-\[rgb\(10_20_30\)\]`)
	require.Equal(t, []string{"background-color:rgb(10 20 30)"}, decls)
}

// Scenario 5 (spec §8): dark:focus:ring-2 ->
// .dark .dark\:focus\:ring-2:focus { box-shadow: ...; } — the exact
// ring-width expansion is implementation-defined (spec §9 open question a)
// but must be deterministic, so this only checks presence and shape.
func TestInsertTokenDarkFocusRing(t *testing.T) {
	c := newTestCompiler(t)
	require.NoError(t, c.InsertToken("dark:focus:ring-2"))

	decls := ruleFor(t, c, `.dark .dark\:focus\:ring-2:focus`)
	require.NotEmpty(t, decls)

	hasBoxShadow := false
	for _, d := range decls {
		if strings.HasPrefix(d, "box-shadow:") {
			hasBoxShadow = true
		}
	}
	require.True(t, hasBoxShadow, "decls = %v, want a box-shadow declaration", decls)
}

// Scenario 6 (spec §8): p-[unclosed is malformed, produces a diagnostic
// and no rule, and does not prevent later tokens from compiling.
func TestInsertTokenMalformedProducesDiagnostic(t *testing.T) {
	c := newTestCompiler(t)
	require.NoError(t, c.InsertToken("p-[unclosed"), "recoverable errors should be swallowed")
	require.NoError(t, c.InsertToken("p-4"))

	diags := c.DrainDiagnostics()
	require.Len(t, diags, 1)
	require.Equal(t, "p-[unclosed", diags[0].Token)
	require.Equal(t, 1, c.Store().Len(), "only p-4 should have landed")
}

func TestInsertTokenStrictModeReturnsError(t *testing.T) {
	cfg := testConfig()
	cfg.Compiler.StrictMode = true
	c, err := NewFromConfig(cfg, nil)
	require.NoError(t, err)
	defer c.Close()

	require.Error(t, c.InsertToken("p-[unclosed"))
	require.Empty(t, c.Diagnostics(), "strict mode should not record a diagnostic")
}

// Dedup safety (spec §8): two utilities touching the same property on the
// same selector collapse to the later value once the optimizer's
// DedupeDecls pass runs.
func TestInsertTokenDedupeSameSelector(t *testing.T) {
	c := newTestCompiler(t)
	// Two distinct raw tokens that map to the very same escaped selector
	// only happen for identical input text, so dedup safety is exercised
	// by inserting the same token twice — the store's merge-by-key already
	// collapses same-selector rules on Insert, and the optimizer's
	// DedupeDecls pass collapses any duplicate property within one rule.
	require.NoError(t, c.InsertToken("p-4"))
	require.NoError(t, c.InsertToken("p-4"))
	c.Optimize(config.OptimizerConfig{DedupeDecls: true, RemoveEmpty: true})

	require.Equal(t, 1, c.Store().Len())
	decls := ruleFor(t, c, ".p-4")
	require.Equal(t, []string{"padding:1rem"}, decls)
}

// Determinism (spec §8): compiling the same token set twice from scratch
// produces byte-identical CSS.
func TestEmitIsDeterministic(t *testing.T) {
	build := func() string {
		c := newTestCompiler(t)
		for _, tok := range []string{"p-4", "md:hover:bg-blue-500/50", "dark:focus:ring-2"} {
			require.NoError(t, c.InsertToken(tok))
		}
		c.Optimize(config.OptimizerConfig{RemoveEmpty: true, DedupeDecls: true, Sort: true})
		return c.Emit(config.EmitterConfig{Minify: true})
	}

	require.Equal(t, build(), build())
}

// Idempotence (spec §8): running Optimize twice over the same store
// produces the same CSS as running it once.
func TestOptimizeIsIdempotent(t *testing.T) {
	c := newTestCompiler(t)
	for _, tok := range []string{"p-4", "bg-gradient-to-r", "from-pink-400", "to-blue-600"} {
		require.NoError(t, c.InsertToken(tok))
	}
	cfg := config.OptimizerConfig{RemoveEmpty: true, DedupeDecls: true, MergeIdentical: true, Normalize: true, Sort: true}
	c.Optimize(cfg)
	first := c.Emit(config.EmitterConfig{Minify: true})
	c.Optimize(cfg)
	second := c.Emit(config.EmitterConfig{Minify: true})
	require.Equal(t, first, second)
}

// Cache coherence (spec §8): the cache key folds in theme.Hash(), so a
// repeat parse against the same theme is a guaranteed hit; ParseToken
// never touches the cache bypassing that key.
func TestCacheHitOnRepeatParseWithSameThemeHash(t *testing.T) {
	c := newTestCompiler(t)
	_, _, err := c.ParseToken("p-4")
	require.NoError(t, err)
	require.EqualValues(t, 1, c.CacheStats().Misses)

	_, _, err = c.ParseToken("p-4")
	require.NoError(t, err)
	require.EqualValues(t, 1, c.CacheStats().L1Hits)
}

func TestRegisterCustomVariantAndParser(t *testing.T) {
	c := newTestCompiler(t)
	c.RegisterCustomVariant("retina", "@media (min-resolution: 2dppx) { & }")

	c.RegisterParser("test-marker", 1, func(in parser.Input) ([]rule.Declaration, bool, error) {
		if in.Base != "test-marker" {
			return nil, false, nil
		}
		return []rule.Declaration{{Property: "--marker", Value: "1"}}, true, nil
	})

	require.NoError(t, c.InsertToken("test-marker"))
	decls := ruleFor(t, c, ".test-marker")
	require.Equal(t, []string{"--marker:1"}, decls)
}
