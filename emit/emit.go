// Package emit serializes an optimized rule.Store to CSS text, per spec
// §4.9, pretty or minified. Rules are written in store order; adjacent rules
// with the same @supports/@media/@container wrapper share one block.
// optimizer.Sort is what puts ungrouped rules first, then @supports, @media
// and @container groups.
package emit

import (
	"strings"
	"sync"

	"github.com/niiniyare/atomiccss/pkg/config"
	"github.com/niiniyare/atomiccss/rule"
)

// builderPool reuses strings.Builder instances across Emit calls to cut GC
// pressure on repeated compilations of the same theme/token set. Grounded
// on the toakleaf-less.go reference example's node/ruleset pools, which
// exist for the identical reason (profiling showed allocation pressure
// from repeatedly constructing the same short-lived node types during
// compilation); adapted here from a fixed-struct pool to a
// *strings.Builder pool sized for one full stylesheet emission.
var builderPool = sync.Pool{
	New: func() any {
		b := &strings.Builder{}
		b.Grow(4096)
		return b
	},
}

func getBuilder() *strings.Builder {
	return builderPool.Get().(*strings.Builder)
}

func putBuilder(b *strings.Builder) {
	b.Reset()
	builderPool.Put(b)
}

// Emit serializes every rule in store to a CSS string, honoring
// cfg.Minify/cfg.Indent. The caller is responsible for running the
// optimizer's Sort pass first if grouped wrapper output should be
// contiguous; Emit itself only groups adjacent same-wrapper rules — it
// does not reorder.
func Emit(store *rule.Store, cfg config.EmitterConfig) string {
	b := getBuilder()
	defer putBuilder(b)

	rules := store.Rules()
	indent := cfg.Indent
	if indent == "" {
		indent = "  "
	}

	i := 0
	for i < len(rules) {
		r := rules[i]
		if r.Supports == "" && r.Media == "" && r.Container == "" {
			writeRule(b, r, cfg.Minify, "", indent)
			i++
			continue
		}
		j := i
		for j < len(rules) && sameWrapper(rules[j], r) {
			j++
		}
		writeWrapped(b, rules[i:j], r, cfg.Minify, indent)
		i = j
	}

	return b.String()
}

func sameWrapper(a, b rule.Rule) bool {
	return a.Supports == b.Supports && a.Media == b.Media && a.Container == b.Container
}

func writeWrapped(b *strings.Builder, group []rule.Rule, first rule.Rule, minify bool, indent string) {
	open, close := wrapperOpenClose(first)
	b.WriteString(open)
	if !minify {
		b.WriteByte('\n')
	}
	for _, r := range group {
		ind := ""
		if !minify {
			ind = indent
		}
		writeRule(b, r, minify, ind, indent)
	}
	b.WriteString(close)
	if !minify {
		b.WriteByte('\n')
	}
}

func wrapperOpenClose(r rule.Rule) (open, close string) {
	switch {
	case r.Supports != "":
		return "@supports " + r.Supports + " {", "}"
	case r.Media != "":
		return "@media " + r.Media + " {", "}"
	case r.Container != "":
		return "@container " + r.Container + " {", "}"
	default:
		return "", ""
	}
}

func writeRule(b *strings.Builder, r rule.Rule, minify bool, indent, unit string) {
	if len(r.Declarations) == 0 {
		return
	}
	b.WriteString(indent)
	b.WriteString(r.Selector)
	if minify {
		b.WriteByte('{')
	} else {
		b.WriteString(" {\n")
	}
	for i, d := range r.Declarations {
		if !minify {
			b.WriteString(indent)
			b.WriteString(unit)
		}
		b.WriteString(d.Property)
		b.WriteByte(':')
		if !minify {
			b.WriteByte(' ')
		}
		b.WriteString(d.Value)
		if d.Important {
			b.WriteString(" !important")
		}
		if !minify || i < len(r.Declarations)-1 {
			b.WriteByte(';')
		}
		if !minify {
			b.WriteByte('\n')
		}
	}
	if !minify {
		b.WriteString(indent)
	}
	b.WriteByte('}')
	if !minify {
		b.WriteByte('\n')
	}
}
