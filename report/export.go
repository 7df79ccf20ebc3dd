package report

// DisplayRow is one line of the hours report with every value already
// formatted. This is the only surface handed to rendering collaborators.
type DisplayRow struct {
	Day         string
	FirstEntry  string
	FirstExit   string
	SecondEntry string
	SecondExit  string
	Remote      string
	Worked      string
	Balance     string
}

// ExportTotals aggregates the prepared rows in listing order.
type ExportTotals struct {
	WorkedSeconds  int
	BalanceSeconds int // signed, deficits negative
}

// PolicyFunc resolves the balance policy that applies to one report.
type PolicyFunc func(Report) BalancePolicy

const exportDayLayout = "02/01/2006"

// PrepareExportRows projects reports into display rows plus running totals,
// preserving the sequence order (day descending by convention). It performs
// no I/O and owns no rendering concern.
func PrepareExportRows(reports []Report, policy PolicyFunc) ([]DisplayRow, ExportTotals) {
	rows := make([]DisplayRow, 0, len(reports))
	var totals ExportTotals
	for _, r := range reports {
		worked := r.Worked()
		balance := r.BalanceFor(policy(r))
		totals.WorkedSeconds += worked
		totals.BalanceSeconds += balance.Signed()
		rows = append(rows, DisplayRow{
			Day:         r.Day.Format(exportDayLayout),
			FirstEntry:  r.FirstEntry,
			FirstExit:   r.FirstExit,
			SecondEntry: r.SecondEntry,
			SecondExit:  r.SecondExit,
			Remote:      r.Remote,
			Worked:      FormatHourMinute(worked),
			Balance:     balance.String(),
		})
	}
	return rows, totals
}
