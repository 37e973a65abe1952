// SPDX-License-Identifier: AGPL-3.0-or-later

// Package checks implements the individual policy rules and the fixed
// registry that orders them. Every rule is a pure function of its target;
// rule constructors bind the compiled policy once and the resulting checks
// are reused across runs.
package checks

import (
	"bytes"

	"github.com/bartekus/commitgate/internal/engine"
)

// contentApplies is the selection shared by the per-file content rules:
// they run for the action entry point and for the pre-commit hook.
func contentApplies(mode engine.Mode, hook engine.HookType) bool {
	return mode == engine.ModeAction || hook == engine.HookPreCommit
}

// forEachLine walks raw byte-wise, calling fn with 1-based line numbers.
// The yielded line excludes the terminating '\n' but keeps a preceding
// '\r', so callers can tell CRLF from LF. A final unterminated line is
// yielded too. No decoding happens, so arbitrary binary content is safe.
func forEachLine(raw []byte, fn func(num int, line []byte)) {
	num := 0
	for len(raw) > 0 {
		num++
		i := bytes.IndexByte(raw, '\n')
		if i < 0 {
			fn(num, raw)
			return
		}
		fn(num, raw[:i])
		raw = raw[i+1:]
	}
}
