package checks

import (
	"fmt"
	"strings"

	"github.com/bartekus/commitgate/internal/engine"
	"github.com/bartekus/commitgate/internal/policy"
)

// Size enforces the file-size budget. New files get the soft limit, which
// a commit message carrying the large-file marker lifts to the hard limit;
// modified files always get the hard limit. A context check rather than a
// file check because the override lives in the commit message.
type Size struct {
	set *policy.Set
}

func NewSize(set *policy.Set) *Size {
	return &Size{set: set}
}

func (c *Size) Name() string { return "file-size" }

func (c *Size) Applies(mode engine.Mode, hook engine.HookType) bool {
	return mode == engine.ModeAction || hook == engine.HookCommitMsg
}

func (c *Size) CheckAll(ec *engine.Context) []engine.Verdict {
	markerPresent := c.set.LargeFileMarker != "" && ec.Message != nil &&
		strings.Contains(*ec.Message, c.set.LargeFileMarker)

	verdicts := make([]engine.Verdict, 0, len(ec.Files))
	for _, f := range ec.Files {
		limit := c.set.ModifiedFileSizeLimit
		if f.NewFile && !markerPresent {
			limit = c.set.NewFileSizeLimit
		}
		if limit > 0 && int64(len(f.Raw)) > limit {
			verdicts = append(verdicts, engine.Fail(c.Name(), f.Path,
				fmt.Sprintf("file is %d bytes, the limit is %d", len(f.Raw), limit)))
			continue
		}
		verdicts = append(verdicts, engine.Pass(c.Name(), f.Path))
	}
	return verdicts
}
