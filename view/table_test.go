package view

import (
	"bytes"
	"strings"
	"testing"

	"click/report"
)

func TestRenderTable(t *testing.T) {
	rows := []report.DisplayRow{
		{
			Day:         "04/02/2014",
			FirstEntry:  "08:00",
			FirstExit:   "12:00",
			SecondEntry: "14:00",
			SecondExit:  "19:00",
			Remote:      "00:00",
			Worked:      "09:00",
			Balance:     "+01:00",
		},
		{
			Day:     "03/02/2014",
			Remote:  "00:00",
			Worked:  "00:00",
			Balance: "-08:00",
		},
	}
	totals := report.ExportTotals{WorkedSeconds: 9 * 3600, BalanceSeconds: -7 * 3600}

	var buf bytes.Buffer
	RenderTable(&buf, rows, totals)
	out := buf.String()

	// go-pretty upper-cases header and footer text
	for _, want := range []string{"04/02/2014", "03/02/2014", "+01:00", "-08:00", "TOTAL", "09:00", "-07:00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	// newest first
	if strings.Index(out, "04/02/2014") > strings.Index(out, "03/02/2014") {
		t.Fatal("expected rows to render newest first")
	}
}
