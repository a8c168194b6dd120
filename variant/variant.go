// Package variant classifies token-lexer variant fragments into the tagged
// Variant kinds from spec §3/§4.2, and assembles a VariantSet's selector and
// wrapper context per the composition rules in spec §4.3.
package variant

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/niiniyare/atomiccss/pkg/errors"
	"github.com/niiniyare/atomiccss/theme"
)

// Kind tags which variety of Variant a fragment classified as.
type Kind int

const (
	Responsive Kind = iota
	MaxResponsive
	Device
	State
	Dark
	Group
	Peer
	Data
	Aria
	Supports
	Container
	ArbitrarySelector
	Custom
)

func (k Kind) String() string {
	switch k {
	case Responsive:
		return "responsive"
	case MaxResponsive:
		return "max-responsive"
	case Device:
		return "device"
	case State:
		return "state"
	case Dark:
		return "dark"
	case Group:
		return "group"
	case Peer:
		return "peer"
	case Data:
		return "data"
	case Aria:
		return "aria"
	case Supports:
		return "supports"
	case Container:
		return "container"
	case ArbitrarySelector:
		return "arbitrary-selector"
	case Custom:
		return "custom"
	default:
		return "unknown"
	}
}

// Variant is a single classified fragment.
type Variant struct {
	Kind     Kind
	Raw      string // the original fragment, e.g. "group-hover", "data-[state=open]"
	Name     string // the meaningful name within the fragment, e.g. "hover", "state=open"
	Template string // for ArbitrarySelector/Custom: a literal selector template containing '&'
}

// Set is the ordered list of variants applied to a token, produced by
// classifying each of a token's variant fragments in order.
type Set struct {
	Variants []Variant
}

// stateNames are the recognized pseudo-class/pseudo-element state variants.
var stateNames = map[string]string{
	"hover":       ":hover",
	"focus":       ":focus",
	"focus-within": ":focus-within",
	"focus-visible": ":focus-visible",
	"active":      ":active",
	"visited":     ":visited",
	"disabled":    ":disabled",
	"checked":     ":checked",
	"indeterminate": ":indeterminate",
	"required":    ":required",
	"valid":       ":valid",
	"invalid":     ":invalid",
	"first":       ":first-child",
	"last":        ":last-child",
	"only":        ":only-child",
	"odd":         ":nth-child(odd)",
	"even":        ":nth-child(even)",
	"empty":       ":empty",
	"target":      ":target",
	"placeholder": "::placeholder",
	"file":        "::file-selector-button",
	"selection":   "::selection",
	"marker":      "::marker",
	"before":      "::before",
	"after":       "::after",
}

var deviceNames = map[string]string{
	"print":  "print",
	"screen": "screen",
}

// registeredCustom holds process-wide custom variants registered via
// RegisterCustom, matching spec §6.1's register_custom_variant operation.
// Mutation happens only at setup time (typically process init); lookups
// are read-only thereafter, matching the "no global mutable state during
// compilation" guarantee in spec §9.
var registeredCustom = map[string]Variant{}

// RegisterCustom registers a custom variant name with a literal selector
// template containing '&' as the element placeholder.
func RegisterCustom(name, template string) {
	registeredCustom[name] = Variant{Kind: Custom, Raw: name, Name: name, Template: template}
}

// Classify recognizes a single variant fragment in the order spec §4.2
// mandates: (1) exact responsive/device names, (2) dark, (3) structural
// prefixes (group-/peer-/aria-/data-/supports-/@container/@<size>), (4)
// bracketed arbitrary selector, (5) registered custom variant, (6)
// pseudo-class/element state names.
func Classify(fragment string, th *theme.Theme) (Variant, error) {
	if fragment == "" {
		return Variant{}, apperrors.NewError(apperrors.MalformedToken, "empty variant fragment")
	}

	if px, ok := th.Breakpoint(fragment); ok {
		return Variant{Kind: Responsive, Raw: fragment, Name: strconv.Itoa(px)}, nil
	}
	if strings.HasPrefix(fragment, "max-") {
		name := fragment[len("max-"):]
		if px, ok := th.Breakpoint(name); ok {
			return Variant{Kind: MaxResponsive, Raw: fragment, Name: strconv.Itoa(px - 1)}, nil
		}
	}
	if wrapper, ok := deviceNames[fragment]; ok {
		return Variant{Kind: Device, Raw: fragment, Name: wrapper}, nil
	}

	if fragment == "dark" {
		return Variant{Kind: Dark, Raw: fragment, Name: fragment}, nil
	}

	switch {
	case strings.HasPrefix(fragment, "group-"):
		return Variant{Kind: Group, Raw: fragment, Name: fragment[len("group-"):]}, nil
	case strings.HasPrefix(fragment, "peer-"):
		return Variant{Kind: Peer, Raw: fragment, Name: fragment[len("peer-"):]}, nil
	case strings.HasPrefix(fragment, "aria-"):
		return classifyAria(fragment)
	case strings.HasPrefix(fragment, "data-"):
		return classifyData(fragment)
	case strings.HasPrefix(fragment, "supports-"):
		return classifySupports(fragment)
	case fragment == "@container" || strings.HasPrefix(fragment, "@container/"):
		return classifyContainer(fragment, th)
	case strings.HasPrefix(fragment, "@"):
		return classifyContainerShorthand(fragment, th)
	}

	if strings.HasPrefix(fragment, "[") && strings.HasSuffix(fragment, "]") {
		return classifyArbitrarySelector(fragment)
	}

	if v, ok := registeredCustom[fragment]; ok {
		return v, nil
	}

	if wrapper, ok := stateNames[fragment]; ok {
		return Variant{Kind: State, Raw: fragment, Name: wrapper}, nil
	}

	return Variant{}, apperrors.NewErrorf(apperrors.UnknownVariant, "unrecognized variant fragment %q", fragment).WithPath(fragment)
}

func classifyAria(fragment string) (Variant, error) {
	rest := fragment[len("aria-"):]
	if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]") {
		kv := rest[1 : len(rest)-1]
		key, value, ok := splitKeyValue(kv)
		if !ok {
			return Variant{}, apperrors.NewErrorf(apperrors.MalformedToken, "malformed aria attribute variant %q", fragment)
		}
		return Variant{Kind: Aria, Raw: fragment, Name: fmt.Sprintf(`[aria-%s="%s"]`, key, value)}, nil
	}
	// boolean shorthand, e.g. aria-expanded -> [aria-expanded="true"]
	return Variant{Kind: Aria, Raw: fragment, Name: fmt.Sprintf(`[aria-%s="true"]`, rest)}, nil
}

func classifyData(fragment string) (Variant, error) {
	rest := fragment[len("data-"):]
	if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]") {
		kv := rest[1 : len(rest)-1]
		key, value, ok := splitKeyValue(kv)
		if !ok {
			return Variant{}, apperrors.NewErrorf(apperrors.MalformedToken, "malformed data attribute variant %q", fragment)
		}
		return Variant{Kind: Data, Raw: fragment, Name: fmt.Sprintf(`[data-%s="%s"]`, key, value)}, nil
	}
	// bare form, e.g. data-open -> [data-open], or "data-<name>:<utility>" is
	// handled by the parser re-parsing the tail — here we only classify the
	// variant shape itself.
	return Variant{Kind: Data, Raw: fragment, Name: fmt.Sprintf("[data-%s]", rest)}, nil
}

func classifySupports(fragment string) (Variant, error) {
	rest := fragment[len("supports-"):]
	if !strings.HasPrefix(rest, "[") || !strings.HasSuffix(rest, "]") {
		return Variant{}, apperrors.NewErrorf(apperrors.MalformedToken, "malformed supports variant %q", fragment)
	}
	cond := strings.ReplaceAll(rest[1:len(rest)-1], "_", " ")
	key, value, ok := splitKeyValue(cond)
	if !ok {
		return Variant{Kind: Supports, Raw: fragment, Name: cond}, nil
	}
	return Variant{Kind: Supports, Raw: fragment, Name: fmt.Sprintf("(%s: %s)", key, value)}, nil
}

func classifyContainer(fragment string, th *theme.Theme) (Variant, error) {
	if fragment == "@container" {
		return Variant{Kind: Container, Raw: fragment, Name: ""}, nil
	}
	rest := fragment[len("@container/"):]
	// "<axis>:<size>" form, e.g. "inline-size:lg"
	parts := strings.SplitN(rest, ":", 2)
	if len(parts) != 2 {
		return Variant{}, apperrors.NewErrorf(apperrors.MalformedToken, "malformed container variant %q", fragment)
	}
	axis, size := parts[0], parts[1]
	px, ok := th.Container(size)
	if !ok {
		return Variant{}, apperrors.NewErrorf(apperrors.ThemeMiss, "unknown container size %q", size).WithPath(fragment)
	}
	return Variant{Kind: Container, Raw: fragment, Name: fmt.Sprintf("(min-width: %dpx) %s", px, axis)}, nil
}

func classifyContainerShorthand(fragment string, th *theme.Theme) (Variant, error) {
	name := fragment[1:]
	px, ok := th.Container(name)
	if !ok {
		return Variant{}, apperrors.NewErrorf(apperrors.UnknownVariant, "unrecognized variant fragment %q", fragment).WithPath(fragment)
	}
	return Variant{Kind: Container, Raw: fragment, Name: fmt.Sprintf("(min-width: %dpx)", px)}, nil
}

func classifyArbitrarySelector(fragment string) (Variant, error) {
	inner := fragment[1 : len(fragment)-1]
	if !strings.Contains(inner, "&") {
		return Variant{}, apperrors.NewErrorf(apperrors.MalformedToken, "arbitrary selector %q must contain '&'", fragment)
	}
	template := strings.ReplaceAll(inner, "_", " ")
	if err := validateArbitrarySelector(template); err != nil {
		return Variant{}, err
	}
	return Variant{Kind: ArbitrarySelector, Raw: fragment, Template: template}, nil
}

// splitKeyValue splits "key=value" or "key=\"value\"" forms used inside
// data-[...]/aria-[...] brackets.
func splitKeyValue(s string) (key, value string, ok bool) {
	idx := strings.IndexByte(s, '=')
	if idx < 0 {
		return s, "", true // presence-only attribute, e.g. data-[open]
	}
	key = s[:idx]
	value = strings.Trim(s[idx+1:], `"'`)
	if key == "" {
		return "", "", false
	}
	return key, value, true
}

// BuildSet classifies every fragment of a token's variants, in order.
func BuildSet(fragments []string, th *theme.Theme) (Set, error) {
	vs := Set{Variants: make([]Variant, 0, len(fragments))}
	for _, f := range fragments {
		v, err := Classify(f, th)
		if err != nil {
			return Set{}, err
		}
		vs.Variants = append(vs.Variants, v)
	}
	return vs, nil
}

// Specificity computes the ordering hint from spec §4.3:
// 10*|states| + 5*|structural| + 1*|responsive|.
func (s Set) Specificity() int {
	var states, structural, responsive int
	for _, v := range s.Variants {
		switch v.Kind {
		case State:
			states++
		case Group, Peer, Data, Aria:
			structural++
		case Responsive, MaxResponsive:
			responsive++
		}
	}
	return 10*states + 5*structural + responsive
}

// isOpacityNumber reports whether s is a plain integer or one-decimal
// number in [0,100], used by color-family parsers to validate the opacity
// literal surfaced by the token lexer.
func IsOpacityNumber(s string) (int, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f > 100 {
		return 0, false
	}
	return int(f), true
}
