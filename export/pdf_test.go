package export

import (
	"bytes"
	"testing"

	"click/report"
)

func TestWritePDF(t *testing.T) {
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
	if err := WritePDF(&buf, rows, totals); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected a PDF document, got %q", buf.Bytes()[:8])
	}
}

func TestWritePDFEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, nil, report.ExportTotals{}); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected a document even without rows")
	}
}

func TestWritePDFManyRowsPaginates(t *testing.T) {
	var rows []report.DisplayRow
	for i := 0; i < 85; i++ {
		rows = append(rows, report.DisplayRow{
			Day:     "03/02/2014",
			Remote:  "00:00",
			Worked:  "08:00",
			Balance: "+00:00",
		})
	}

	var buf bytes.Buffer
	if err := WritePDF(&buf, rows, report.ExportTotals{WorkedSeconds: 85 * 8 * 3600}); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	// 85 rows cannot fit one landscape page; the page tree must hold more
	// than a single /Page object.
	if n := bytes.Count(buf.Bytes(), []byte("/Type /Page")); n < 3 {
		t.Fatalf("expected multiple pages, found %d page objects", n)
	}
}
