package punch

import (
	"errors"
	"log/slog"
	"time"

	"github.com/alexflint/go-filemutex"

	"click/report"
)

// Puncher stamps the first clock-in of a day from observed activity and
// reminds the user when the estimated exit time arrives.
type Puncher struct {
	repo     report.Repository
	user     report.User
	notifier Notifier
	mux      *filemutex.FileMutex
	logger   *slog.Logger
	now      func() time.Time

	lastReminded report.Date
}

func NewPuncher(repo report.Repository, user report.User, notifier Notifier, fm *filemutex.FileMutex, logger *slog.Logger) *Puncher {
	return &Puncher{
		repo:     repo,
		user:     user,
		notifier: notifier,
		mux:      fm,
		logger:   logger,
		now:      time.Now,
	}
}

// HandleActivity creates today's report with the current time as first
// entry when no report exists yet. A day that already has a report is left
// alone; corrections stay manual.
func (p *Puncher) HandleActivity() error {
	p.mux.Lock()
	defer p.mux.Unlock()

	now := p.now()
	day := report.NewDate(now)
	existing, err := p.repo.Get(p.user.Name, day)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	r := report.Report{
		Day:        day,
		FirstEntry: now.Format("15:04"),
		Remote:     "00:00",
	}
	if err := p.repo.Create(p.user.Name, r); err != nil {
		if errors.Is(err, report.ErrReportExists) {
			// lost the race to another process
			return nil
		}
		return err
	}
	p.logger.Debug("punched first entry", slog.String("day", string(day)), slog.String("at", r.FirstEntry))
	p.notifier.Notify("Clocked in", "First entry recorded at "+r.FirstEntry)
	return nil
}

// CheckEstimatedExit notifies once per day when the projected exit has been
// reached while the final clock-out is still blank.
func (p *Puncher) CheckEstimatedExit() error {
	p.mux.Lock()
	defer p.mux.Unlock()

	now := p.now()
	day := report.NewDate(now)
	if p.lastReminded == day {
		return nil
	}
	r, err := p.repo.Get(p.user.Name, day)
	if err != nil || r == nil {
		return err
	}
	exit := r.EstimatedExit(p.user.Quota())
	if exit == nil {
		return nil
	}
	nowClock := report.ParseClock(now.Format("15:04"))
	if nowClock == nil || *nowClock < *exit {
		return nil
	}
	p.lastReminded = day
	p.logger.Debug("estimated exit reached", slog.String("day", string(day)), slog.String("exit", exit.String()))
	p.notifier.Notify("Time to clock out", "Estimated exit "+exit.String()+" reached")
	return nil
}
