package checks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bartekus/commitgate/internal/engine"
)

func TestCommitMessage(t *testing.T) {
	c := NewCommitMessage(testSet(t))

	tests := []struct {
		msg string
		ok  bool
	}{
		{"ABC-1234", true},
		{"Some changes for ABC-1234 ticket", true},
		{"fixed some builds\n some more text BLD-1234", true},
		{"Trivial change NO_JIRA", true},
		{"Merge branch 'main' into my_branch", true},
		{"Merge branch 'branch_1' into branch_2", true},
		{"Merge commit 'abcdef' into jira_mer_123_abc", true},
		{"I forgot to add the issue marker!", false},
		{"Close but no cigar abc-1234", false},
		{"A-1234 too short a project key", false},
		{"ABCDEFGHI-1234 too long a project key", false},
		{"BLD-123456 issue number out of range", false},
		{"wordBLD-1234 no boundary", false},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			v := c.CheckMessage(tt.msg)
			assert.Equal(t, tt.ok, v.Passed, "message: %s", v.Message)
			assert.Equal(t, engine.MessageTarget, v.Target)
		})
	}
}

func TestCommitMessage_OverrideBeatsEverything(t *testing.T) {
	c := NewCommitMessage(testSet(t))
	// NO_JIRA passes no matter what surrounds it.
	v := c.CheckMessage("NO_JIRA " + strings.Repeat("gibberish ", 50))
	assert.True(t, v.Passed)
}

func TestCommitMessage_Applicability(t *testing.T) {
	c := NewCommitMessage(testSet(t))
	assert.True(t, c.Applies(engine.ModeLocalHook, engine.HookCommitMsg))
	assert.False(t, c.Applies(engine.ModeLocalHook, engine.HookPreCommit))
	assert.False(t, c.Applies(engine.ModeLocalHook, engine.HookPreMergeCommit))
	assert.True(t, c.Applies(engine.ModeAction, engine.HookNone))
}
