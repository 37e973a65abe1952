package checks

import (
	"fmt"
	"path"
	"strings"

	"github.com/bartekus/commitgate/internal/engine"
	"github.com/bartekus/commitgate/internal/policy"
)

// Characters a filename may not contain on Windows.
const illegalFilenameChars = `\/:*?"<>|`

// Stems reserved by Windows regardless of extension.
var reservedDeviceNames = map[string]bool{
	"con": true, "prn": true, "aux": true, "nul": true,
	"com1": true, "com2": true, "com3": true, "com4": true, "com5": true,
	"com6": true, "com7": true, "com8": true, "com9": true,
	"lpt1": true, "lpt2": true, "lpt3": true, "lpt4": true, "lpt5": true,
	"lpt6": true, "lpt7": true, "lpt8": true, "lpt9": true,
}

// Filename rejects paths that would break the repository on a
// case-insensitive, reserved-device-name-sensitive filesystem. It is easy
// to commit such a path from Linux and leave Windows checkouts unusable.
type Filename struct {
	set *policy.Set
}

func NewFilename(set *policy.Set) *Filename {
	return &Filename{set: set}
}

func (c *Filename) Name() string { return "filename" }

func (c *Filename) Applies(mode engine.Mode, hook engine.HookType) bool {
	return contentApplies(mode, hook)
}

func (c *Filename) CheckFile(f engine.FileCandidate) engine.Verdict {
	if !f.NewFile && !c.set.RecheckRenames {
		return engine.Pass(c.Name(), f.Path)
	}

	name := path.Base(f.Path)
	for _, r := range name {
		if strings.ContainsRune(illegalFilenameChars, r) || r <= 31 {
			return engine.Fail(c.Name(), f.Path,
				fmt.Sprintf("illegal character %q in filename %q", r, name))
		}
	}

	stem := strings.TrimSuffix(name, path.Ext(name))
	if reservedDeviceNames[strings.ToLower(stem)] {
		return engine.Fail(c.Name(), f.Path,
			fmt.Sprintf("filename %q is a reserved device name on Windows", name))
	}

	if strings.HasSuffix(f.Path, ".") || strings.HasSuffix(f.Path, " ") ||
		strings.HasSuffix(f.Path, "\t") {
		return engine.Fail(c.Name(), f.Path,
			"file names may not end with a period or whitespace")
	}

	for _, r := range f.Path {
		if r > 127 {
			return engine.Fail(c.Name(), f.Path,
				"only ASCII characters are permitted in paths")
		}
	}

	if c.set.MaxPathLength > 0 && len(f.Path) > c.set.MaxPathLength {
		return engine.Fail(c.Name(), f.Path,
			fmt.Sprintf("path is %d characters long, the limit is %d",
				len(f.Path), c.set.MaxPathLength))
	}

	return engine.Pass(c.Name(), f.Path)
}
