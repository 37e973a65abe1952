// SPDX-License-Identifier: AGPL-3.0-or-later

// Package engine holds the check abstraction and the dispatch/aggregation
// core shared by the local-hook and action entry points.
package engine

// Mode says how the process was invoked.
type Mode int

const (
	// ModeLocalHook means the process runs synchronously inside a git hook.
	ModeLocalHook Mode = iota
	// ModeAction means the process received an explicit file list from CI
	// and must not touch the working tree or git state.
	ModeAction
)

// HookType identifies the git hook stage for ModeLocalHook runs.
// It is HookNone for ModeAction.
type HookType int

const (
	HookNone HookType = iota
	HookCommitMsg
	HookPreCommit
	HookPreMergeCommit
)

func (h HookType) String() string {
	switch h {
	case HookCommitMsg:
		return "commit-msg"
	case HookPreCommit:
		return "pre-commit"
	case HookPreMergeCommit:
		return "pre-merge-commit"
	}
	return "none"
}

// Check is a single policy rule. Implementations are stateless and safe to
// reuse across runs; the same instance may evaluate many contexts.
//
// A Check additionally implements one of FileCheck, MessageCheck or
// ContextCheck. The dispatcher discovers the capability by type assertion,
// so a rule declares what it evaluates by the interface it satisfies.
type Check interface {
	// Name returns the stable identifier used in reports.
	Name() string

	// Applies reports whether the check is selected for the given
	// invocation. hook is HookNone when mode is ModeAction.
	Applies(mode Mode, hook HookType) bool
}

// FileCheck evaluates one file candidate at a time.
type FileCheck interface {
	Check
	CheckFile(f FileCandidate) Verdict
}

// MessageCheck evaluates the commit message.
type MessageCheck interface {
	Check
	CheckMessage(msg string) Verdict
}

// ContextCheck evaluates the whole context at once. It is the escape hatch
// for rules that need more than one target, such as cross-file collision
// detection or a size rule consulting the commit message.
type ContextCheck interface {
	Check
	CheckAll(ec *Context) []Verdict
}
