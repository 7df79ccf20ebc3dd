package view

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rivo/tview"

	"click/report"
)

// ReportEditor runs the interactive entry form for a single day's report.
type ReportEditor struct {
	repo   report.Repository
	user   string
	logger *slog.Logger

	app *tview.Application
}

func NewReportEditor(repo report.Repository, user string, logger *slog.Logger) *ReportEditor {
	return &ReportEditor{repo: repo, user: user, logger: logger}
}

// Edit opens the form pre-filled with r. When create is true the save is a
// creation and a duplicate day is surfaced in the form rather than
// overwriting the stored report.
func (e *ReportEditor) Edit(r report.Report, create bool) error {
	e.app = tview.NewApplication()
	form := e.newReportForm(r, create)
	return e.app.SetRoot(form, true).Run()
}

func (e *ReportEditor) newReportForm(r report.Report, create bool) *tview.Form {
	firstEntry := r.FirstEntry
	firstExit := r.FirstExit
	secondEntry := r.SecondEntry
	secondExit := r.SecondExit
	remote := r.Remote
	away := r.Away
	notice := r.Notice

	form := tview.NewForm().
		AddInputField("First entry (HH:MM)", firstEntry, 0, nil, func(text string) {
			firstEntry = text
		}).
		AddInputField("First exit (HH:MM)", firstExit, 0, nil, func(text string) {
			firstExit = text
		}).
		AddInputField("Second entry (HH:MM)", secondEntry, 0, nil, func(text string) {
			secondEntry = text
		}).
		AddInputField("Second exit (HH:MM)", secondExit, 0, nil, func(text string) {
			secondExit = text
		}).
		AddInputField("Remote (HH:MM)", remote, 0, nil, func(text string) {
			remote = text
		}).
		AddCheckbox("Away", away, func(checked bool) {
			away = checked
		}).
		AddInputField("Notice", notice, 0, nil, func(text string) {
			notice = text
		}).
		AddTextView("", "", 0, 1, false, false)

	showError := func(msg string) {
		form.GetFormItem(7).(*tview.TextView).
			SetLabel("Error").
			SetText(msg)
	}

	form.AddButton("Save", func() {
		fields := []struct {
			label, value string
		}{
			{"first entry", firstEntry},
			{"first exit", firstExit},
			{"second entry", secondEntry},
			{"second exit", secondExit},
			{"remote", remote},
		}
		for _, f := range fields {
			if f.value == "" {
				continue
			}
			if _, err := time.Parse("15:04", f.value); err != nil {
				showError(fmt.Sprintf("%s must be HH:MM", f.label))
				return
			}
		}

		saved := r
		saved.FirstEntry = firstEntry
		saved.FirstExit = firstExit
		saved.SecondEntry = secondEntry
		saved.SecondExit = secondExit
		saved.Remote = orMidnight(remote)
		saved.Away = away
		saved.Notice = notice

		var err error
		if create {
			err = e.repo.Create(e.user, saved)
		} else {
			err = e.repo.Update(e.user, saved)
		}
		if err != nil {
			e.logger.Error("save report", slog.String("day", string(saved.Day)), slog.String("err", err.Error()))
			showError(err.Error())
			return
		}
		e.app.Stop()
	}).AddButton("Cancel", func() {
		e.app.Stop()
	})

	form.SetBorder(true).SetTitle(fmt.Sprintf(" Report %s ", r.Day)).SetTitleAlign(tview.AlignLeft)
	return form
}

// orMidnight mirrors the remote field's mandatory presence: a blank value
// is stored as the zero duration.
func orMidnight(s string) string {
	if s == "" {
		return "00:00"
	}
	return s
}
