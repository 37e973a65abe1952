package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCompiles(t *testing.T) {
	set, err := Default().Compile()
	require.NoError(t, err)

	assert.True(t, set.Checked("main.cpp"))
	assert.True(t, set.Checked("script.py"))
	assert.False(t, set.Checked("image.png"))

	assert.True(t, set.NeedsNewline("a.inl"))
	assert.False(t, set.NeedsNewline("a.py"))

	// Tabs default to the checked-extension class.
	assert.True(t, set.TabsDisallowed("a.py"))
	assert.False(t, set.TabsDisallowed("Makefile"))

	assert.True(t, set.Cpp("a.h"))
	assert.False(t, set.Cpp("a.c"))

	assert.True(t, set.RecheckRenames)
	require.Len(t, set.IncludeTable(), 1)
	assert.Equal(t, "backslash-include", set.IncludeTable()[0].Name)
}

func TestTextSubject(t *testing.T) {
	set, err := Default().Compile()
	require.NoError(t, err)

	assert.True(t, set.TextSubject("a.py", []byte("print('hi')\n")))
	assert.False(t, set.TextSubject("a.py", []byte{0x7f, 0x00, 0x01}), "NUL byte means binary")
	assert.False(t, set.TextSubject("a.png", []byte("text-looking content")))
	// Non-UTF8 is still text as long as there is no NUL byte.
	assert.True(t, set.TextSubject("a.py", []byte{'a', 0xe9, '\n'}))
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
new_file_size_limit: 1024
marker_case_sensitive: true
tab_extensions: [".go"]
`), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	set, err := p.Compile()
	require.NoError(t, err)

	assert.Equal(t, int64(1024), set.NewFileSizeLimit)
	assert.True(t, set.MarkerCaseSensitive)
	assert.True(t, set.TabsDisallowed("main.go"))
	assert.False(t, set.TabsDisallowed("a.py"))

	// Everything not mentioned keeps its default.
	assert.Equal(t, int64(99<<20), set.ModifiedFileSizeLimit)
	assert.Equal(t, "NO_JIRA", set.NoIssueMarker)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestCompileRejectsBadPattern(t *testing.T) {
	p := Default()
	p.IssuePattern = "["
	_, err := p.Compile()
	assert.Error(t, err)

	p = Default()
	p.IncludePatterns = []IncludePattern{{Name: "broken", Pattern: "("}}
	_, err = p.Compile()
	assert.Error(t, err)
}
