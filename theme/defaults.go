package theme

// Option configures a Theme built with New. Defaults mirror the default
// theme described in spec §3/§6.4; callers override individual tables via
// Option rather than mutating a Theme after construction (Theme is
// immutable once built).
type Option func(*builder)

type builder struct {
	spacing      map[string]string
	colors       map[string]map[string]string
	namedColors  map[string]string
	fontSizes    map[string]FontSize
	fontWeights  map[string]string
	breakpoints  map[string]int
	containers   map[string]int
	darkStrategy DarkModeStrategy
}

// WithDarkModeStrategy overrides the default ("class") dark-mode strategy.
func WithDarkModeStrategy(s DarkModeStrategy) Option {
	return func(b *builder) { b.darkStrategy = s }
}

// WithSpacing replaces one or more spacing scale entries.
func WithSpacing(extra map[string]string) Option {
	return func(b *builder) {
		for k, v := range extra {
			b.spacing[k] = v
		}
	}
}

// WithColor replaces or adds a palette.
func WithColor(palette string, shades map[string]string) Option {
	return func(b *builder) { b.colors[palette] = shades }
}

// New builds a Theme from the default design-token tables, applying opts in
// order.
func New(opts ...Option) *Theme {
	b := &builder{
		spacing:      defaultSpacing(),
		colors:       defaultColors(),
		namedColors:  defaultNamedColors(),
		fontSizes:    defaultFontSizes(),
		fontWeights:  defaultFontWeights(),
		breakpoints:  defaultBreakpoints(),
		containers:   defaultContainers(),
		darkStrategy: DarkModeClass,
	}
	for _, opt := range opts {
		opt(b)
	}

	t := &Theme{
		spacing:      b.spacing,
		colors:       b.colors,
		namedColors:  b.namedColors,
		fontSizes:    b.fontSizes,
		fontWeights:  b.fontWeights,
		breakpoints:  b.breakpoints,
		containers:   b.containers,
		darkStrategy: b.darkStrategy,
	}
	t.spacingOrder = orderKeysString(t.spacing)
	t.colorOrder = orderKeysColor(t.colors)
	t.breakpointOrder = orderKeysInt(t.breakpoints)
	t.containerOrder = orderKeysInt(t.containers)
	// Compute the hash now so that later Hash calls only read it.
	t.Hash()
	return t
}

// Default returns the package-wide default theme. It is immutable and safe
// to share across goroutines; it is not a global mutable singleton — every
// call to Default returns a theme built from the same fixed tables and
// carries the same Hash().
func Default() *Theme {
	return New()
}

func orderKeysString(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortStrings(keys)
	return keys
}

func orderKeysColor(m map[string]map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortStrings(keys)
	return keys
}

func orderKeysInt(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortStrings(keys)
	return keys
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// defaultSpacing is the fixed spacing scale from spec §3/§4.4: 0, px, and
// n -> n*0.25rem for the named keys, harvested from the original source's
// padding_parser.rs match arm.
func defaultSpacing() map[string]string {
	return map[string]string{
		"0":    "0",
		"px":   "1px",
		"0.5":  "0.125rem",
		"1":    "0.25rem",
		"1.5":  "0.375rem",
		"2":    "0.5rem",
		"2.5":  "0.625rem",
		"3":    "0.75rem",
		"3.5":  "0.875rem",
		"4":    "1rem",
		"5":    "1.25rem",
		"6":    "1.5rem",
		"7":    "1.75rem",
		"8":    "2rem",
		"9":    "2.25rem",
		"10":   "2.5rem",
		"11":   "2.75rem",
		"12":   "3rem",
		"14":   "3.5rem",
		"16":   "4rem",
		"20":   "5rem",
		"24":   "6rem",
		"28":   "7rem",
		"32":   "8rem",
		"36":   "9rem",
		"40":   "10rem",
		"44":   "11rem",
		"48":   "12rem",
		"52":   "13rem",
		"56":   "14rem",
		"60":   "15rem",
		"64":   "16rem",
		"72":   "18rem",
		"80":   "20rem",
		"96":   "24rem",
	}
}

func defaultNamedColors() map[string]string {
	return map[string]string{
		"white":        "#ffffff",
		"black":        "#000000",
		"transparent":  "transparent",
		"currentColor": "currentColor",
		"inherit":      "inherit",
	}
}

func defaultFontSizes() map[string]FontSize {
	return map[string]FontSize{
		"xs":   {Length: "0.75rem", LineHeight: "1rem"},
		"sm":   {Length: "0.875rem", LineHeight: "1.25rem"},
		"base": {Length: "1rem", LineHeight: "1.5rem"},
		"lg":   {Length: "1.125rem", LineHeight: "1.75rem"},
		"xl":   {Length: "1.25rem", LineHeight: "1.75rem"},
		"2xl":  {Length: "1.5rem", LineHeight: "2rem"},
		"3xl":  {Length: "1.875rem", LineHeight: "2.25rem"},
		"4xl":  {Length: "2.25rem", LineHeight: "2.5rem"},
		"5xl":  {Length: "3rem", LineHeight: "1"},
		"6xl":  {Length: "3.75rem", LineHeight: "1"},
		"7xl":  {Length: "4.5rem", LineHeight: "1"},
		"8xl":  {Length: "6rem", LineHeight: "1"},
		"9xl":  {Length: "8rem", LineHeight: "1"},
	}
}

func defaultFontWeights() map[string]string {
	return map[string]string{
		"thin":       "100",
		"extralight": "200",
		"light":      "300",
		"normal":     "400",
		"medium":     "500",
		"semibold":   "600",
		"bold":       "700",
		"extrabold":  "800",
		"black":      "900",
	}
}

func defaultBreakpoints() map[string]int {
	return map[string]int{
		"sm":  640,
		"md":  768,
		"lg":  1024,
		"xl":  1280,
		"2xl": 1536,
	}
}

// defaultContainers is intentionally a separate table from
// defaultBreakpoints per spec §9(d): container-query size tables must not
// be assumed to mirror the responsive breakpoint table.
func defaultContainers() map[string]int {
	return map[string]int{
		"3xs": 256,
		"2xs": 288,
		"xs":  320,
		"sm":  384,
		"md":  448,
		"lg":  512,
		"xl":  576,
		"2xl": 672,
		"3xl": 768,
		"4xl": 896,
		"5xl": 1024,
		"6xl": 1152,
		"7xl": 1280,
	}
}
