package view

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"click/report"
)

// RenderTable writes the report listing to w with a totals footer, rows in
// the order they were prepared (newest first).
func RenderTable(w io.Writer, rows []report.DisplayRow, totals report.ExportTotals) {
	buildTableWriter(w, rows, totals).Render()
}

func buildTableWriter(w io.Writer, rows []report.DisplayRow, totals report.ExportTotals) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Day", "First Entry", "First Exit", "Second Entry", "Second Exit", "Remote", "Worked", "Balance"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Day, r.FirstEntry, r.FirstExit, r.SecondEntry, r.SecondExit, r.Remote, r.Worked, r.Balance})
	}
	t.AppendFooter(table.Row{
		"", "", "", "", "",
		"Total",
		report.FormatHourMinute(totals.WorkedSeconds),
		report.FormatSignedHourMinute(totals.BalanceSeconds),
	})
	t.SetStyle(table.StyleRounded)
	return t
}
