package checks

import (
	"fmt"
	"strings"

	"github.com/bartekus/commitgate/internal/engine"
	"github.com/bartekus/commitgate/internal/policy"
)

// CaseCollision catches two paths that differ only by letter case, either
// between commit candidates or between a candidate and a path already on
// the branch. Such pairs cannot coexist in a checkout on a
// case-insensitive filesystem.
type CaseCollision struct {
	set *policy.Set
}

func NewCaseCollision(set *policy.Set) *CaseCollision {
	return &CaseCollision{set: set}
}

func (c *CaseCollision) Name() string { return "case-collision" }

func (c *CaseCollision) Applies(mode engine.Mode, hook engine.HookType) bool {
	return contentApplies(mode, hook)
}

func (c *CaseCollision) CheckAll(ec *engine.Context) []engine.Verdict {
	lower2case := make(map[string]string, len(ec.ExistingPaths))
	for _, p := range ec.ExistingPaths {
		lower2case[strings.ToLower(p)] = p
	}

	var verdicts []engine.Verdict
	for _, f := range ec.Files {
		key := strings.ToLower(f.Path)
		if other, ok := lower2case[key]; ok && other != f.Path {
			verdicts = append(verdicts, engine.Fail(c.Name(), f.Path,
				fmt.Sprintf("case-folding collision with %q", other)))
			continue
		}
		lower2case[key] = f.Path
		verdicts = append(verdicts, engine.Pass(c.Name(), f.Path))
	}
	return verdicts
}
