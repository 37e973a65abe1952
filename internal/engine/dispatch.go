package engine

import "fmt"

// Evaluate runs every applicable check against every applicable target and
// returns all verdicts, passing and failing, in registry-then-candidate
// order. It never short-circuits: one failing check on one file must not
// hide violations elsewhere.
func Evaluate(ec *Context, checks []Check) []Verdict {
	var verdicts []Verdict
	for _, c := range checks {
		if !c.Applies(ec.Mode, ec.Hook) {
			continue
		}
		switch impl := c.(type) {
		case ContextCheck:
			verdicts = append(verdicts, runContext(impl, ec)...)
		case FileCheck:
			for _, f := range ec.Files {
				verdicts = append(verdicts, runFile(impl, f))
			}
		case MessageCheck:
			// Message presence is decided here, not in the check: an
			// absent message means skip, never fail.
			if ec.Message != nil {
				verdicts = append(verdicts, runMessage(impl, *ec.Message))
			}
		}
	}
	return verdicts
}

// runFile confines a panicking check to a single failing verdict for that
// (check, file) pair so the rest of the run still completes.
func runFile(c FileCheck, f FileCandidate) (v Verdict) {
	defer recoverVerdict(c.Name(), f.Path, &v)
	return c.CheckFile(f)
}

func runMessage(c MessageCheck, msg string) (v Verdict) {
	defer recoverVerdict(c.Name(), MessageTarget, &v)
	return c.CheckMessage(msg)
}

func runContext(c ContextCheck, ec *Context) (vs []Verdict) {
	defer func() {
		if r := recover(); r != nil {
			vs = append(vs, internalError(c.Name(), "<context>", r))
		}
	}()
	return c.CheckAll(ec)
}

func recoverVerdict(check, target string, v *Verdict) {
	if r := recover(); r != nil {
		*v = internalError(check, target, r)
	}
}

func internalError(check, target string, cause any) Verdict {
	return Fail(check, target, fmt.Sprintf("internal error: %v", cause))
}
