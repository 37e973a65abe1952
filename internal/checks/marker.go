package checks

import (
	"fmt"
	"strings"

	"github.com/bartekus/commitgate/internal/engine"
	"github.com/bartekus/commitgate/internal/policy"
)

// Marker rejects files carrying a forbidden literal token such as
// "DO NOT MERGE" or "DO NOT COMMIT". It scans every candidate byte-wise
// regardless of extension, because the tokens also show up in build
// scripts and data files. This is the one file rule that also runs during
// pre-merge-commit.
type Marker struct {
	set *policy.Set
}

func NewMarker(set *policy.Set) *Marker {
	return &Marker{set: set}
}

func (c *Marker) Name() string { return "forbidden-marker" }

func (c *Marker) Applies(mode engine.Mode, hook engine.HookType) bool {
	return contentApplies(mode, hook) || hook == engine.HookPreMergeCommit
}

func (c *Marker) CheckFile(f engine.FileCandidate) engine.Verdict {
	var locs []engine.Location
	var found string
	forEachLine(f.Raw, func(num int, line []byte) {
		haystack := string(line)
		if !c.set.MarkerCaseSensitive {
			haystack = strings.ToUpper(haystack)
		}
		for _, marker := range c.set.ForbiddenMarkers {
			needle := marker
			if !c.set.MarkerCaseSensitive {
				needle = strings.ToUpper(needle)
			}
			if strings.Contains(haystack, needle) {
				locs = append(locs, engine.Location{Line: num})
				if found == "" {
					found = marker
				}
				return
			}
		}
	})
	if len(locs) > 0 {
		return engine.Fail(c.Name(), f.Path,
			fmt.Sprintf("found %s", found), locs...)
	}
	return engine.Pass(c.Name(), f.Path)
}
