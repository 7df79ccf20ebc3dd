package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"click/report"
)

// Document layout, A4 landscape with the day column wide enough for the
// formatted date.
var (
	columnWidths = [8]float64{165, 75, 75, 75, 75, 75, 75, 75}
	headers      = [8]string{
		"Dia", "Primeira Entrada", "Primeira Saída", "Segunda Entrada",
		"Segunda Saída", "Remoto", "Total", "Saldo",
	}
)

// WritePDF renders the prepared rows as the hours report document. It
// consumes only display rows and totals; every figure arrives formatted.
func WritePDF(w io.Writer, rows []report.DisplayRow, totals report.ExportTotals) error {
	pdf := fpdf.New("L", "pt", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(75, 40, 75)
	pdf.SetAutoPageBreak(true, 40)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-30)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0xa0, 0xa0, 0xa0)
		pdf.CellFormat(0, 10, fmt.Sprintf("page %d of {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetTextColor(0x40, 0x46, 0x4e)
	pdf.SetFont("Helvetica", "BI", 30)
	pdf.CellFormat(0, 34, "Click", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 24, tr("Relatório de Horas"), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(0xee, 0xee, 0xee)
	for i, h := range headers {
		pdf.CellFormat(columnWidths[i], 18, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	for i, row := range rows {
		if i%2 == 0 {
			pdf.SetFillColor(0xff, 0xff, 0xff)
		} else {
			pdf.SetFillColor(0xf5, 0xf5, 0xf5)
		}
		cells := [8]string{
			row.Day, row.FirstEntry, row.FirstExit, row.SecondEntry,
			row.SecondExit, row.Remote, row.Worked, row.Balance,
		}
		for j, c := range cells {
			style := ""
			if j >= 6 {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, 9)
			pdf.CellFormat(columnWidths[j], 16, c, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}

	var labelWidth float64
	for _, cw := range columnWidths[:6] {
		labelWidth += cw
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(0xee, 0xee, 0xee)
	pdf.CellFormat(labelWidth, 16, "Total", "1", 0, "R", true, 0, "")
	pdf.CellFormat(columnWidths[6], 16, report.FormatHourMinute(totals.WorkedSeconds), "1", 0, "C", true, 0, "")
	pdf.CellFormat(columnWidths[7], 16, report.FormatSignedHourMinute(totals.BalanceSeconds), "1", 0, "C", true, 0, "")
	pdf.Ln(-1)

	return pdf.Output(w)
}
