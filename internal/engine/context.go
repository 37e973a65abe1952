package engine

// FileCandidate is one file touched by the commit under validation.
// Raw holds the staged (or action-supplied) bytes, which may be binary;
// checks must not assume any encoding. Immutable once built.
type FileCandidate struct {
	Path    string
	Raw     []byte
	NewFile bool
}

// Context is the resolved input bundle for a single run. It is built by the
// calling entry point (hook or action), consumed read-only by the engine and
// discarded afterwards. One Context is never shared between runs.
type Context struct {
	Files []FileCandidate

	// Message is the commit message, nil when the hook stage does not
	// carry one (pre-commit, pre-merge-commit).
	Message *string

	// Author is the git author ident, empty when unknown.
	Author string

	// ExistingPaths lists the paths already present on the branch, used by
	// cross-file rules. Empty when the caller could not resolve it.
	ExistingPaths []string

	Mode Mode

	// Hook is set iff Mode == ModeLocalHook.
	Hook HookType
}
