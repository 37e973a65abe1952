package engine

// Exit codes returned to the calling hook or CI step.
const (
	ExitOK   = 0
	ExitFail = 1
)

// Aggregate keeps the failing verdicts and maps them to a process exit
// code. Order is preserved as produced by Evaluate. ExitOK iff the report
// is empty.
func Aggregate(verdicts []Verdict) (Report, int) {
	var report Report
	for _, v := range verdicts {
		if !v.Passed {
			report = append(report, v)
		}
	}
	if report.Empty() {
		return report, ExitOK
	}
	return report, ExitFail
}

// Run is the single-call form used by the entry points: dispatch, then
// aggregate.
func Run(ec *Context, checks []Check) (Report, int) {
	return Aggregate(Evaluate(ec, checks))
}
