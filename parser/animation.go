package parser

import (
	"strings"

	"github.com/niiniyare/atomiccss/rule"
)

var animatePlaybackKeywords = map[string]struct{ property, value string }{
	"once":      {"animation-iteration-count", "1"},
	"infinite":  {"animation-iteration-count", "infinite"},
	"reverse":   {"animation-direction", "reverse"},
	"alternate": {"animation-direction", "alternate"},
	"paused":    {"animation-play-state", "paused"},
	"running":   {"animation-play-state", "running"},
}

// parseAnimation implements spec §4.4's animation contract: the animate-*
// keyframe-name and playback-control longhands only. duration-*/delay-*/
// ease-* belong to the transition family (transition.go) since in practice
// those longhands style CSS transitions, not @keyframes playback — kept
// separate so the two families never fight over the same base prefix.
func parseAnimation(in Input) ([]rule.Declaration, bool, error) {
	rest, ok := strings.CutPrefix(in.Base, "animate-")
	if !ok {
		return nil, false, nil
	}
	if kw, ok := animatePlaybackKeywords[rest]; ok {
		return []rule.Declaration{{Property: kw.property, Value: kw.value}}, true, nil
	}
	v, err := parseValueTail(rest)
	if err != nil {
		return nil, false, err
	}
	if v.kind == valueArbitrary {
		return []rule.Declaration{{Property: "animation-name", Value: v.raw}}, true, nil
	}
	return []rule.Declaration{{Property: "animation-name", Value: rest}}, true, nil
}
