// Package theme holds the immutable, read-only design-token tables consulted
// while resolving a utility token into CSS declarations: the spacing scale,
// color palette, typography scale, breakpoints, container sizes, and named
// fractions. A Theme is built once per compile cycle and shared read-only
// across the token, variant and parser packages.
package theme

import (
	"fmt"
	"hash/fnv"
	"sort"
)

// DarkModeStrategy selects how the "dark" variant wraps a selector.
type DarkModeStrategy string

const (
	// DarkModeClass prepends ".dark " to the selector (the default).
	DarkModeClass DarkModeStrategy = "class"
	// DarkModeMedia wraps the rule in `@media (prefers-color-scheme: dark)`.
	DarkModeMedia DarkModeStrategy = "media"
)

// FontSize is a font-size/line-height pair, e.g. for `text-lg`.
type FontSize struct {
	Length     string
	LineHeight string // empty if the scale entry carries no default line-height
}

// Theme is an immutable set of design tokens. The zero value is not usable;
// construct one with New or Default.
type Theme struct {
	spacing      map[string]string
	colors       map[string]map[string]string
	namedColors  map[string]string
	fontSizes    map[string]FontSize
	fontWeights  map[string]string
	breakpoints  map[string]int
	containers   map[string]int
	darkStrategy DarkModeStrategy

	// ordered keys, kept for deterministic iteration (e.g. hashing, docs)
	spacingOrder     []string
	colorOrder       []string
	shadeOrder       []string
	breakpointOrder  []string
	containerOrder   []string

	hash    uint64
	hashSet bool
}

// Spacing resolves a spacing scale key (e.g. "4", "0.5", "px") to a CSS
// length. The caller is responsible for stripping any leading "-" sign
// before calling Spacing; negation is applied by the parser, not the theme.
func (t *Theme) Spacing(key string) (string, bool) {
	v, ok := t.spacing[key]
	return v, ok
}

// Color resolves a palette+shade pair (e.g. "blue","500") to a hex value.
func (t *Theme) Color(palette, shade string) (string, bool) {
	shades, ok := t.colors[palette]
	if !ok {
		return "", false
	}
	v, ok := shades[shade]
	return v, ok
}

// NamedColor resolves a bare color name (white, black, transparent,
// currentColor, inherit) that isn't part of a palette.
func (t *Theme) NamedColor(name string) (string, bool) {
	v, ok := t.namedColors[name]
	return v, ok
}

// FontSize resolves a typography scale key (e.g. "lg") to its length and
// optional default line-height.
func (t *Theme) FontSize(key string) (FontSize, bool) {
	v, ok := t.fontSizes[key]
	return v, ok
}

// FontWeight resolves a weight keyword (e.g. "bold") to its numeric value.
func (t *Theme) FontWeight(key string) (string, bool) {
	v, ok := t.fontWeights[key]
	return v, ok
}

// Breakpoint resolves a responsive variant name to a min-width in pixels.
func (t *Theme) Breakpoint(name string) (int, bool) {
	v, ok := t.breakpoints[name]
	return v, ok
}

// Container resolves a container-query variant name to a size in pixels.
// Deliberately independent from Breakpoint: per spec §9(d), container
// breakpoints must not be assumed to mirror responsive breakpoints.
func (t *Theme) Container(name string) (int, bool) {
	v, ok := t.containers[name]
	return v, ok
}

// DarkModeStrategy reports the configured dark-mode wrapping strategy.
func (t *Theme) DarkModeStrategy() DarkModeStrategy {
	return t.darkStrategy
}

// Fraction computes a fraction n/d as a CSS percentage, rounded to at most
// six decimal places, trimming trailing zeros (e.g. 1/2 -> "50%", 2/3 ->
// "66.666667%" per spec's rounding, trimmed to "66.6667%" style output is
// avoided — spec fixes six-decimal precision exactly).
func Fraction(n, d int) (string, error) {
	if d == 0 {
		return "", fmt.Errorf("theme: fraction denominator must not be zero")
	}
	pct := 100 * float64(n) / float64(d)
	s := fmt.Sprintf("%.6f", pct)
	s = trimTrailingZeros(s)
	return s + "%", nil
}

func trimTrailingZeros(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == '0' {
		i--
	}
	if i > 0 && s[i-1] == '.' {
		i--
	}
	return s[:i]
}

// Hash returns a 64-bit digest over the canonicalized contents of every
// table in the theme. Callers use this as the theme_hash component of a
// cache key; it changes whenever any table entry changes, which per
// invariant (v) must invalidate the cache.
func (t *Theme) Hash() uint64 {
	if t.hashSet {
		return t.hash
	}
	h := fnv.New64a()

	writeTable(h, "spacing", t.spacingOrder, func(k string) string { return t.spacing[k] })
	for _, palette := range t.colorOrder {
		shades := t.colors[palette]
		keys := make([]string, 0, len(shades))
		for k := range shades {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		writeTable(h, "color."+palette, keys, func(k string) string { return shades[k] })
	}
	writeTable(h, "named", sortedKeys(t.namedColors), func(k string) string { return t.namedColors[k] })
	writeTable(h, "fontsize", sortedFontSizeKeys(t.fontSizes), func(k string) string {
		fs := t.fontSizes[k]
		return fs.Length + "|" + fs.LineHeight
	})
	writeTable(h, "fontweight", sortedKeys(t.fontWeights), func(k string) string { return t.fontWeights[k] })
	writeTable(h, "breakpoint", t.breakpointOrder, func(k string) string { return fmt.Sprintf("%d", t.breakpoints[k]) })
	writeTable(h, "container", t.containerOrder, func(k string) string { return fmt.Sprintf("%d", t.containers[k]) })
	h.Write([]byte("dark:" + string(t.darkStrategy)))

	t.hash = h.Sum64()
	t.hashSet = true
	return t.hash
}

func writeTable(h interface{ Write([]byte) (int, error) }, name string, keys []string, value func(string) string) {
	h.Write([]byte(name))
	for _, k := range keys {
		h.Write([]byte("|" + k + "=" + value(k)))
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFontSizeKeys(m map[string]FontSize) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
