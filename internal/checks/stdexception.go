package checks

import (
	"github.com/bartekus/commitgate/internal/engine"
	"github.com/bartekus/commitgate/internal/policy"
)

// StdException flags throwing the base exception type directly. Project
// code is expected to use the project exception hierarchy instead.
type StdException struct {
	set *policy.Set
}

func NewStdException(set *policy.Set) *StdException {
	return &StdException{set: set}
}

func (c *StdException) Name() string { return "std-exception" }

func (c *StdException) Applies(mode engine.Mode, hook engine.HookType) bool {
	return contentApplies(mode, hook)
}

func (c *StdException) CheckFile(f engine.FileCandidate) engine.Verdict {
	pattern := c.set.ThrowPattern()
	if pattern == nil || !c.set.Cpp(f.Path) || !c.set.TextSubject(f.Path, f.Raw) {
		return engine.Pass(c.Name(), f.Path)
	}

	var locs []engine.Location
	forEachLine(f.Raw, func(num int, line []byte) {
		if pattern.Match(line) {
			locs = append(locs, engine.Location{Line: num})
		}
	})
	if len(locs) > 0 {
		return engine.Fail(c.Name(), f.Path, "std::exception thrown directly", locs...)
	}
	return engine.Pass(c.Name(), f.Path)
}
