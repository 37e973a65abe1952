package checks

import (
	"fmt"
	"strings"

	"github.com/bartekus/commitgate/internal/engine"
	"github.com/bartekus/commitgate/internal/policy"
)

// CommitMessage requires an issue-tracker ID in the commit message unless
// the override marker is present. Messages generated by git for merges are
// exempt.
type CommitMessage struct {
	set *policy.Set
}

func NewCommitMessage(set *policy.Set) *CommitMessage {
	return &CommitMessage{set: set}
}

func (c *CommitMessage) Name() string { return "commit-message" }

func (c *CommitMessage) Applies(mode engine.Mode, hook engine.HookType) bool {
	return mode == engine.ModeAction || hook == engine.HookCommitMsg
}

func (c *CommitMessage) CheckMessage(msg string) engine.Verdict {
	if c.set.NoIssueMarker != "" && strings.Contains(msg, c.set.NoIssueMarker) {
		return engine.Pass(c.Name(), engine.MessageTarget)
	}
	if exempt := c.set.MergeExempt(); exempt != nil && exempt.MatchString(msg) {
		return engine.Pass(c.Name(), engine.MessageTarget)
	}
	pattern := c.set.IssuePattern()
	if pattern == nil || pattern.MatchString(msg) {
		return engine.Pass(c.Name(), engine.MessageTarget)
	}
	return engine.Fail(c.Name(), engine.MessageTarget,
		fmt.Sprintf("commit message needs an issue ID or the text %s", c.set.NoIssueMarker))
}
