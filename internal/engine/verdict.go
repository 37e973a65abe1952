package engine

// Targets for verdicts that are not about a file.
const (
	MessageTarget = "<commit-message>"
	AuthorTarget  = "<author>"
)

// Location points at a line (and optionally a column, 1-based) inside a
// target. Column 0 means "not set".
type Location struct {
	Line   int
	Column int
}

// Verdict is the outcome of one check against one target.
type Verdict struct {
	Check     string
	Target    string
	Passed    bool
	Message   string
	Locations []Location
}

// Pass builds a passing verdict.
func Pass(check, target string) Verdict {
	return Verdict{Check: check, Target: target, Passed: true}
}

// Fail builds a failing verdict with optional line locations.
func Fail(check, target, message string, locs ...Location) Verdict {
	return Verdict{Check: check, Target: target, Message: message, Locations: locs}
}

// Report is the ordered list of failing verdicts for a run. Registry order
// is the major key, candidate order the minor one; both fall out of the
// dispatch loops, so no sorting happens after collection.
type Report []Verdict

// Empty reports whether the run found no violations.
func (r Report) Empty() bool { return len(r) == 0 }
