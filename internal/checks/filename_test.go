package checks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/commitgate/internal/engine"
	"github.com/bartekus/commitgate/internal/policy"
)

func testSet(t *testing.T) *policy.Set {
	t.Helper()
	set, err := policy.Default().Compile()
	require.NoError(t, err)
	return set
}

func cand(path, content string, isNew bool) engine.FileCandidate {
	return engine.FileCandidate{Path: path, Raw: []byte(content), NewFile: isNew}
}

func TestFilename(t *testing.T) {
	c := NewFilename(testSet(t))

	tests := []struct {
		path string
		ok   bool
	}{
		{"good/some.txt", true},
		{"bad/illegal/star*star.txt", false},
		{"bad/illegal/pipe|pipe.txt", false},
		{"bad/reserved/device/con.txt", false},
		{"bad/reserved/device/LPT1.inc", false},
		{"good/console.txt", true},
		{"bad/end/period.txt.", false},
		{"bad/end/space.txt ", false},
		{"bad/ascii/你好.txt", false},
		{strings.Repeat("long/path/", 20) + "l208.txt", true},
		{strings.Repeat("long/path/", 20) + "ll209.txt", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			v := c.CheckFile(cand(tt.path, "", true))
			assert.Equal(t, tt.ok, v.Passed, "message: %s", v.Message)
		})
	}
}

func TestFilename_RenameRecheckConfigurable(t *testing.T) {
	p := policy.Default()
	off := false
	p.RecheckRenames = &off
	set, err := p.Compile()
	require.NoError(t, err)

	v := NewFilename(set).CheckFile(cand("bad*.txt", "", false))
	assert.True(t, v.Passed, "modified paths are not rechecked when disabled")

	v = NewFilename(testSet(t)).CheckFile(cand("bad*.txt", "", false))
	assert.False(t, v.Passed, "default policy rechecks modified paths")
}

func TestCaseCollision(t *testing.T) {
	c := NewCaseCollision(testSet(t))

	ec := &engine.Context{
		Mode:          engine.ModeAction,
		ExistingPaths: []string{"src/Widget.cpp", "README.md"},
		Files: []engine.FileCandidate{
			cand("src/widget.cpp", "", true),
			cand("src/other.cpp", "", true),
			cand("SRC/Other.cpp", "", true),
		},
	}

	verdicts := c.CheckAll(ec)
	require.Len(t, verdicts, 3)
	assert.False(t, verdicts[0].Passed, "collides with branch path")
	assert.True(t, verdicts[1].Passed)
	assert.False(t, verdicts[2].Passed, "collides with earlier candidate")
}
