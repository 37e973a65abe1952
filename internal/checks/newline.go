package checks

import (
	"github.com/bartekus/commitgate/internal/engine"
	"github.com/bartekus/commitgate/internal/policy"
)

// TerminatingNewline requires non-empty files of the configured types to
// end with a newline. Some compilers and diff tools misbehave without one.
type TerminatingNewline struct {
	set *policy.Set
}

func NewTerminatingNewline(set *policy.Set) *TerminatingNewline {
	return &TerminatingNewline{set: set}
}

func (c *TerminatingNewline) Name() string { return "terminating-newline" }

func (c *TerminatingNewline) Applies(mode engine.Mode, hook engine.HookType) bool {
	return contentApplies(mode, hook)
}

func (c *TerminatingNewline) CheckFile(f engine.FileCandidate) engine.Verdict {
	if !c.set.NeedsNewline(f.Path) || !c.set.TextSubject(f.Path, f.Raw) {
		return engine.Pass(c.Name(), f.Path)
	}
	if len(f.Raw) == 0 {
		return engine.Pass(c.Name(), f.Path)
	}
	if f.Raw[len(f.Raw)-1] != '\n' {
		return engine.Fail(c.Name(), f.Path, "missing terminating newline")
	}
	return engine.Pass(c.Name(), f.Path)
}
