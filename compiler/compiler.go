// Package compiler wires theme, token, variant, parser, rule, optimizer,
// emit and cache together behind the public surface from spec §6.1:
// ParseToken, InsertToken, Emit, Optimize, RegisterCustomVariant,
// RegisterParser. Grounded on the teacher's theme/manager.go and
// theme/compiler.go EnhancedCompiler shape — a single struct that owns a
// theme, a mutable working set, and delegates each stage to its own
// package rather than inlining the pipeline.
package compiler

import (
	"context"

	"github.com/niiniyare/atomiccss/emit"
	"github.com/niiniyare/atomiccss/optimizer"
	"github.com/niiniyare/atomiccss/parser"
	"github.com/niiniyare/atomiccss/pkg/cache"
	"github.com/niiniyare/atomiccss/pkg/config"
	apperrors "github.com/niiniyare/atomiccss/pkg/errors"
	"github.com/niiniyare/atomiccss/pkg/logger"
	"github.com/niiniyare/atomiccss/pkg/metrics"
	"github.com/niiniyare/atomiccss/rule"
	"github.com/niiniyare/atomiccss/theme"
	"github.com/niiniyare/atomiccss/token"
	"github.com/niiniyare/atomiccss/variant"
)

// Compiler is the public entry point. The zero value is not usable; build
// one with New.
type Compiler struct {
	theme    *theme.Theme
	registry *parser.Registry
	store    *rule.Store
	cache    *cache.Cache
	metrics  *metrics.Service

	strict      bool
	maxVariants int

	diagnostics []Diagnostic
}

// New builds a Compiler from a Theme and the compiler/optimizer/emitter/
// cache/metrics sections of config.Config. l2 may be nil to run the cache
// L1-only (the default for a single-process CLI invocation).
func New(th *theme.Theme, cfg *config.Config, l2 cache.Backend) (*Compiler, error) {
	c, err := cache.New(cfg.Cache, l2)
	if err != nil {
		return nil, err
	}
	m, err := metrics.NewService(metrics.Config{
		Namespace: cfg.Metrics.Namespace,
		Subsystem: cfg.Metrics.Subsystem,
		Enabled:   cfg.Metrics.Enabled,
	})
	if err != nil {
		return nil, err
	}
	maxVariants := cfg.Compiler.MaxVariants
	if maxVariants <= 0 {
		maxVariants = 8
	}
	return &Compiler{
		theme:       th,
		registry:    parser.NewRegistry(),
		store:       rule.NewStore(),
		cache:       c,
		metrics:     m,
		strict:      cfg.Compiler.StrictMode,
		maxVariants: maxVariants,
	}, nil
}

// NewFromConfig builds the default theme honoring cfg.Compiler's
// dark-mode strategy, then delegates to New. This is the usual
// entry point for a host process that only has a loaded config.Config —
// a bespoke theme still goes through New directly.
func NewFromConfig(cfg *config.Config, l2 cache.Backend) (*Compiler, error) {
	strategy := theme.DarkModeClass
	if cfg.Compiler.DarkModeStrategy == "media" {
		strategy = theme.DarkModeMedia
	}
	th := theme.New(theme.WithDarkModeStrategy(strategy))
	return New(th, cfg, l2)
}

// Store exposes the underlying rule store for callers that need direct
// access (diagnostics tooling, tests).
func (c *Compiler) Store() *rule.Store { return c.store }

// Theme returns the theme this compiler resolves tokens against.
func (c *Compiler) Theme() *theme.Theme { return c.theme }

// ParseToken implements spec §6.1's parse_token: lexes raw, classifies its
// variants, and resolves its base fragment to declarations (served from
// cache when available). It does not touch the rule store.
func (c *Compiler) ParseToken(raw string) (variant.Set, []rule.Declaration, error) {
	parsed, err := token.Parse(raw)
	if err != nil {
		return variant.Set{}, nil, err
	}
	if len(parsed.Variants) > c.maxVariants {
		return variant.Set{}, nil, apperrors.NewErrorf(apperrors.MalformedToken,
			"token has %d variants, exceeding the configured maximum of %d", len(parsed.Variants), c.maxVariants).WithPath(raw)
	}

	vs, err := variant.BuildSet(parsed.Variants, c.theme)
	if err != nil {
		return variant.Set{}, nil, err
	}

	decls, err := c.resolveDeclarations(raw, parsed)
	if err != nil {
		return variant.Set{}, nil, err
	}
	return vs, decls, nil
}

func (c *Compiler) resolveDeclarations(raw string, parsed token.Parsed) ([]rule.Declaration, error) {
	ctx := context.Background()
	key := cache.Key(raw, c.theme.Hash())

	if decls, ok := c.cache.Get(ctx, key); ok {
		c.metrics.IncrementCounter("cache_lookups_total", metrics.Fields{"result": "hit"})
		return decls, nil
	}
	c.metrics.IncrementCounter("cache_lookups_total", metrics.Fields{"result": "miss"})

	var decls []rule.Declaration
	var err error
	c.metrics.TimerFunc("parse_duration_seconds", nil, func() {
		decls, err = c.registry.Parse(parser.Input{Base: parsed.Base, Opacity: parsed.Opacity, Theme: c.theme})
	})
	if err != nil {
		return nil, err
	}

	c.cache.Set(ctx, key, decls)
	return decls, nil
}

// InsertToken implements spec §6.1's insert_token: parse + synthesize +
// insert in one call. On a recoverable failure (MalformedToken,
// UnknownVariant, UnknownUtility, InvalidValue, ThemeMiss), the token is
// dropped and an IgnoredToken diagnostic is recorded; InsertToken returns
// nil so a caller looping over a token batch doesn't need its own
// recovery logic — unless StrictMode is set, in which case the error is
// returned uninspected and no diagnostic is recorded, per
// CompilerConfig.StrictMode's contract.
func (c *Compiler) InsertToken(raw string) error {
	vs, decls, err := c.ParseToken(raw)
	if err != nil {
		c.metrics.IncrementCounter("tokens_parsed_total", metrics.Fields{"status": "ignored"})
		if c.strict {
			return err
		}
		logger.Warn("compiler: ignored token", logger.Fields{"token": raw, "error": err.Error()})
		c.recordIgnored(raw, err)
		return nil
	}

	selector := "." + escapeClassName(raw)
	selector = vs.Selector(selector)
	wrappers := vs.Wrap()

	c.store.Insert(rule.Rule{
		Selector:        selector,
		Media:           wrappers.Media,
		Container:       wrappers.Container,
		Supports:        wrappers.Supports,
		Declarations:    decls,
		SpecificityHint: vs.Specificity(),
	})
	c.metrics.IncrementCounter("tokens_parsed_total", metrics.Fields{"status": "ok"})
	return nil
}

// InsertGroup inserts several tokens that style one element under a single
// rule, keyed on the group's first (primary) token — the case spec §8's
// worked gradient example shorthands as "callers concatenate tokens for one
// element". A lone InsertToken call can't produce that: each token escapes
// to its own selector, so `from-pink-400` and `to-blue-600` would never
// land in the same rule for parser.ComposeAggregates to seal. Composite
// utilities (gradients, filter/backdrop-filter chains, transforms) are
// written with one direction- or base-setting class first and one or more
// modifier classes after it (`bg-gradient-to-r from-pink-400 via-purple-500
// to-blue-600`); InsertGroup takes that convention as its grouping key
// rather than inventing a compound selector from every member's text.
//
// Tokens that fail to parse are diagnosed and skipped exactly as in
// InsertToken; the remaining tokens in the group still compose under the
// shared selector.
func (c *Compiler) InsertGroup(tokens ...string) error {
	if len(tokens) == 0 {
		return nil
	}
	groupSelector := "." + escapeClassName(tokens[0])

	for _, raw := range tokens {
		vs, decls, err := c.ParseToken(raw)
		if err != nil {
			c.metrics.IncrementCounter("tokens_parsed_total", metrics.Fields{"status": "ignored"})
			if c.strict {
				return err
			}
			logger.Warn("compiler: ignored token", logger.Fields{"token": raw, "error": err.Error()})
			c.recordIgnored(raw, err)
			continue
		}

		selector := vs.Selector(groupSelector)
		wrappers := vs.Wrap()

		c.store.Insert(rule.Rule{
			Selector:        selector,
			Media:           wrappers.Media,
			Container:       wrappers.Container,
			Supports:        wrappers.Supports,
			Declarations:    decls,
			SpecificityHint: vs.Specificity(),
		})
		c.metrics.IncrementCounter("tokens_parsed_total", metrics.Fields{"status": "ok"})
	}
	return nil
}

// Optimize seals element/group aggregates (spec §4.5) then runs the
// configured optimizer passes (spec §4.8) over the rule store in place.
func (c *Compiler) Optimize(cfg config.OptimizerConfig) {
	parser.ComposeAggregates(c.store)
	optimizer.Run(c.store, cfg)
}

// Emit serializes the rule store to CSS per spec §4.9. Callers normally
// call Optimize first; Emit does not optimize implicitly so a caller can
// inspect the unoptimized store (e.g. in tests) without side effects.
func (c *Compiler) Emit(cfg config.EmitterConfig) string {
	return emit.Emit(c.store, cfg)
}

// RegisterCustomVariant implements spec §6.1's register_custom_variant.
func (c *Compiler) RegisterCustomVariant(name, template string) {
	variant.RegisterCustom(name, template)
}

// RegisterParser implements spec §6.1's register_parser, adding a
// family parser to this compiler's registry at the given priority.
func (c *Compiler) RegisterParser(name string, priority int, fn parser.Func) {
	c.registry.Register(name, priority, fn)
}

// CacheStats reports the two-tier cache's cumulative hit/miss counters.
func (c *Compiler) CacheStats() cache.Stats {
	return c.cache.Stats()
}

// Close releases the cache's resources (L1 and, if configured, L2).
func (c *Compiler) Close() error {
	return c.cache.Close()
}
