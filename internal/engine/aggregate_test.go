package engine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_ExitCodeMatchesReport(t *testing.T) {
	tests := []struct {
		name     string
		verdicts []Verdict
		failing  int
		code     int
	}{
		{
			name: "all passing",
			verdicts: []Verdict{
				Pass("c1", "a"),
				Pass("c2", "b"),
			},
			failing: 0,
			code:    ExitOK,
		},
		{
			name:     "no verdicts",
			verdicts: nil,
			failing:  0,
			code:     ExitOK,
		},
		{
			name: "one failure",
			verdicts: []Verdict{
				Pass("c1", "a"),
				Fail("c2", "b", "bad"),
			},
			failing: 1,
			code:    ExitFail,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, code := Aggregate(tt.verdicts)
			assert.Len(t, report, tt.failing)
			assert.Equal(t, tt.code, code)
			// Invariant: report empty iff exit code is success.
			assert.Equal(t, report.Empty(), code == ExitOK)
		})
	}
}

func TestAggregate_PreservesOrder(t *testing.T) {
	report, _ := Aggregate([]Verdict{
		Fail("c1", "b", "x"),
		Pass("c1", "a"),
		Fail("c2", "a", "y"),
	})
	require.Len(t, report, 2)
	assert.Equal(t, "c1", report[0].Check)
	assert.Equal(t, "c2", report[1].Check)
}

func TestWriteReport_LineFormat(t *testing.T) {
	var b bytes.Buffer
	WriteReport(&b, Report{
		Fail("tab", "foo.cpp", "tab character", Location{Line: 3}, Location{Line: 7}),
		Fail("file-size", "big.bin", "file is 10 bytes, the limit is 5"),
	})

	assert.Equal(t,
		"FAIL [tab] foo.cpp:3: tab character\n"+
			"FAIL [tab] foo.cpp:7: tab character\n"+
			"FAIL [file-size] big.bin: file is 10 bytes, the limit is 5\n",
		b.String())
}
