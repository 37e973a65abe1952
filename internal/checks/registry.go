package checks

import (
	"github.com/bartekus/commitgate/internal/engine"
	"github.com/bartekus/commitgate/internal/policy"
)

// Registry returns the full ordered check set. The order is fixed at build
// time and determines report ordering, so CI output stays diff-friendly.
// Tests substitute their own smaller slices; nothing registers at runtime.
func Registry(set *policy.Set) []engine.Check {
	return []engine.Check{
		NewFilename(set),
		NewCaseCollision(set),
		NewLineEnding(set),
		NewMarker(set),
		NewTrailingWhitespace(set),
		NewTab(set),
		NewTerminatingNewline(set),
		NewCppInclude(set),
		NewStdException(set),
		NewAuthor(),
		NewCommitMessage(set),
		NewSize(set),
	}
}
