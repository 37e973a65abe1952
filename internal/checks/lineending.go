package checks

import (
	"bytes"

	"github.com/bartekus/commitgate/internal/engine"
	"github.com/bartekus/commitgate/internal/policy"
)

// LineEnding rejects CRLF sequences in policy-subject text files. The
// repository standard is LF; files with properly configured autocrlf never
// reach this state, but a misconfigured client does.
type LineEnding struct {
	set *policy.Set
}

func NewLineEnding(set *policy.Set) *LineEnding {
	return &LineEnding{set: set}
}

func (c *LineEnding) Name() string { return "line-ending" }

func (c *LineEnding) Applies(mode engine.Mode, hook engine.HookType) bool {
	return contentApplies(mode, hook)
}

func (c *LineEnding) CheckFile(f engine.FileCandidate) engine.Verdict {
	if !c.set.TextSubject(f.Path, f.Raw) {
		return engine.Pass(c.Name(), f.Path)
	}

	// Flag only lines actually terminated by "\r\n"; a stray '\r' at EOF
	// is not a CRLF sequence.
	var locs []engine.Location
	line := 1
	raw := f.Raw
	for {
		i := bytes.IndexByte(raw, '\n')
		if i < 0 {
			break
		}
		if i > 0 && raw[i-1] == '\r' {
			locs = append(locs, engine.Location{Line: line})
		}
		raw = raw[i+1:]
		line++
	}
	if len(locs) > 0 {
		return engine.Fail(c.Name(), f.Path, "CRLF line ending", locs...)
	}
	return engine.Pass(c.Name(), f.Path)
}
