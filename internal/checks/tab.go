package checks

import (
	"bytes"

	"github.com/bartekus/commitgate/internal/engine"
	"github.com/bartekus/commitgate/internal/policy"
)

// Tab rejects literal tab characters in file types where the policy
// mandates spaces.
type Tab struct {
	set *policy.Set
}

func NewTab(set *policy.Set) *Tab {
	return &Tab{set: set}
}

func (c *Tab) Name() string { return "tab" }

func (c *Tab) Applies(mode engine.Mode, hook engine.HookType) bool {
	return contentApplies(mode, hook)
}

func (c *Tab) CheckFile(f engine.FileCandidate) engine.Verdict {
	if !c.set.TabsDisallowed(f.Path) || !c.set.TextSubject(f.Path, f.Raw) {
		return engine.Pass(c.Name(), f.Path)
	}

	var locs []engine.Location
	forEachLine(f.Raw, func(num int, line []byte) {
		if i := bytes.IndexByte(line, '\t'); i >= 0 {
			locs = append(locs, engine.Location{Line: num, Column: i + 1})
		}
	})
	if len(locs) > 0 {
		return engine.Fail(c.Name(), f.Path, "tab character", locs...)
	}
	return engine.Pass(c.Name(), f.Path)
}
