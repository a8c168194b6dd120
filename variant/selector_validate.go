package variant

import (
	"sync"
	"time"

	"github.com/dlclark/regexp2"

	apperrors "github.com/niiniyare/atomiccss/pkg/errors"
)

// arbitrarySelectorPattern rejects '&'-templates that smuggle a rule
// terminator or nested at-rule into the selector (e.g. "[&;background:red]"
// or "[&{bad}]"). It uses a negative lookahead, which RE2 (the stdlib
// regexp engine) cannot express, hence regexp2 — grounded on
// pkg/condition/builder.go's regexCache pattern (bounded size, per-match
// timeout to guard against catastrophic backtracking on attacker-controlled
// patterns).
const arbitrarySelectorPattern = `^(?!.*[;{}]).+$`

const regexMatchTimeout = 50 * time.Millisecond

var (
	selectorRegexOnce sync.Once
	selectorRegex     *regexp2.Regexp
)

func compiledSelectorPattern() *regexp2.Regexp {
	selectorRegexOnce.Do(func() {
		re := regexp2.MustCompile(arbitrarySelectorPattern, regexp2.None)
		re.MatchTimeout = regexMatchTimeout
		selectorRegex = re
	})
	return selectorRegex
}

// validateArbitrarySelector rejects a '&'-template that contains a rule
// terminator or brace, which would otherwise let an arbitrary selector
// token inject additional CSS statements at emission time.
func validateArbitrarySelector(template string) error {
	re := compiledSelectorPattern()
	matched, err := re.MatchString(template)
	if err != nil {
		return apperrors.WrapError(apperrors.MalformedToken, "arbitrary selector validation timed out", err)
	}
	if !matched {
		return apperrors.NewErrorf(apperrors.MalformedToken, "arbitrary selector %q contains disallowed characters", template)
	}
	return nil
}
