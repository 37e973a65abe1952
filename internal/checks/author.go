package checks

import (
	"fmt"
	"regexp"

	"github.com/bartekus/commitgate/internal/engine"
)

// badAuthorPattern matches service accounts and idents that were never set
// up: anything that is not plain letters and spaces.
var badAuthorPattern = regexp.MustCompile(`root|buildman|[^a-zA-Z ]`)

// Author sanity-checks the commit author ident. Skipped when the caller
// could not resolve one.
type Author struct{}

func NewAuthor() *Author {
	return &Author{}
}

func (c *Author) Name() string { return "author" }

func (c *Author) Applies(mode engine.Mode, hook engine.HookType) bool {
	return mode == engine.ModeAction ||
		hook == engine.HookPreCommit || hook == engine.HookPreMergeCommit
}

func (c *Author) CheckAll(ec *engine.Context) []engine.Verdict {
	if ec.Author == "" {
		return nil
	}
	if badAuthorPattern.MatchString(ec.Author) {
		return []engine.Verdict{engine.Fail(c.Name(), engine.AuthorTarget,
			fmt.Sprintf("bad author ident %q; set user.name to your real name", ec.Author))}
	}
	return []engine.Verdict{engine.Pass(c.Name(), engine.AuthorTarget)}
}
