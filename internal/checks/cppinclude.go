package checks

import (
	"github.com/bartekus/commitgate/internal/engine"
	"github.com/bartekus/commitgate/internal/policy"
)

// CppInclude flags #include forms the build checkers have rejected before.
// The disallowed forms live in the policy's pattern table, so new ones are
// configuration, not code.
type CppInclude struct {
	set *policy.Set
}

func NewCppInclude(set *policy.Set) *CppInclude {
	return &CppInclude{set: set}
}

func (c *CppInclude) Name() string { return "cpp-include" }

func (c *CppInclude) Applies(mode engine.Mode, hook engine.HookType) bool {
	return contentApplies(mode, hook)
}

func (c *CppInclude) CheckFile(f engine.FileCandidate) engine.Verdict {
	if !c.set.Cpp(f.Path) || !c.set.TextSubject(f.Path, f.Raw) {
		return engine.Pass(c.Name(), f.Path)
	}

	table := c.set.IncludeTable()
	var locs []engine.Location
	var msg string
	forEachLine(f.Raw, func(num int, line []byte) {
		for _, row := range table {
			if row.Pattern.Match(line) {
				locs = append(locs, engine.Location{Line: num})
				if msg == "" {
					msg = row.Message
				}
				return
			}
		}
	})
	if len(locs) > 0 {
		return engine.Fail(c.Name(), f.Path, msg, locs...)
	}
	return engine.Pass(c.Name(), f.Path)
}
