package engine

import (
	"fmt"
	"io"
)

// WriteReport emits one line per violation location in a stable,
// script-parsable shape:
//
//	FAIL [<check>] <target>:<line>: <message>
//	FAIL [<check>] <target>: <message>        (no line available)
//
// Verdicts without locations produce a single line.
func WriteReport(w io.Writer, r Report) {
	for _, v := range r {
		if len(v.Locations) == 0 {
			fmt.Fprintf(w, "FAIL [%s] %s: %s\n", v.Check, v.Target, v.Message)
			continue
		}
		for _, loc := range v.Locations {
			fmt.Fprintf(w, "FAIL [%s] %s:%d: %s\n", v.Check, v.Target, loc.Line, v.Message)
		}
	}
}
