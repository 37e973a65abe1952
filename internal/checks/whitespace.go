package checks

import (
	"bytes"

	"github.com/bartekus/commitgate/internal/engine"
	"github.com/bartekus/commitgate/internal/policy"
)

// TrailingWhitespace rejects lines ending in spaces or tabs before the
// terminator. Lines are split on '\n'; a preceding '\r' is tolerated and
// not counted as whitespace.
type TrailingWhitespace struct {
	set *policy.Set
}

func NewTrailingWhitespace(set *policy.Set) *TrailingWhitespace {
	return &TrailingWhitespace{set: set}
}

func (c *TrailingWhitespace) Name() string { return "trailing-whitespace" }

func (c *TrailingWhitespace) Applies(mode engine.Mode, hook engine.HookType) bool {
	return contentApplies(mode, hook)
}

func (c *TrailingWhitespace) CheckFile(f engine.FileCandidate) engine.Verdict {
	if !c.set.TextSubject(f.Path, f.Raw) {
		return engine.Pass(c.Name(), f.Path)
	}

	var locs []engine.Location
	forEachLine(f.Raw, func(num int, line []byte) {
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if n := len(line); n > 0 && (line[n-1] == ' ' || line[n-1] == '\t') {
			locs = append(locs, engine.Location{Line: num})
		}
	})
	if len(locs) > 0 {
		return engine.Fail(c.Name(), f.Path, "trailing whitespace", locs...)
	}
	return engine.Pass(c.Name(), f.Path)
}
