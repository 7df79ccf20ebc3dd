package punch

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexflint/go-filemutex"

	"click/report"
)

type memoryRepo struct {
	reports map[string]report.Report
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{reports: make(map[string]report.Report)}
}

func (m *memoryRepo) key(user string, day report.Date) string {
	return user + ":" + string(day)
}

func (m *memoryRepo) Create(user string, r report.Report) error {
	if err := r.Validate(); err != nil {
		return err
	}
	k := m.key(user, r.Day)
	if _, ok := m.reports[k]; ok {
		return report.ErrReportExists
	}
	m.reports[k] = r
	return nil
}

func (m *memoryRepo) Update(user string, r report.Report) error {
	k := m.key(user, r.Day)
	if _, ok := m.reports[k]; !ok {
		return report.ErrReportNotFound
	}
	m.reports[k] = r
	return nil
}

func (m *memoryRepo) Get(user string, day report.Date) (*report.Report, error) {
	if r, ok := m.reports[m.key(user, day)]; ok {
		return &r, nil
	}
	return nil, nil
}

func (m *memoryRepo) Delete(user string, day report.Date) error {
	delete(m.reports, m.key(user, day))
	return nil
}

func (m *memoryRepo) FindByDateRange(user string, from, to report.Date) ([]report.Report, error) {
	return nil, nil
}

type recordingNotifier struct {
	titles []string
}

func (n *recordingNotifier) Notify(title, message string) error {
	n.titles = append(n.titles, title)
	return nil
}

func newTestPuncher(t *testing.T, repo report.Repository, notifier Notifier, now time.Time) *Puncher {
	t.Helper()
	fm, err := filemutex.New(filepath.Join(t.TempDir(), "punch.lock"))
	if err != nil {
		t.Fatalf("filemutex: %v", err)
	}
	user := report.User{Name: "alice", HoursPerDay: 8}
	p := NewPuncher(repo, user, notifier, fm, slog.Default())
	p.now = func() time.Time { return now }
	return p
}

func TestHandleActivityPunchesFirstEntryOnce(t *testing.T) {
	repo := newMemoryRepo()
	notifier := &recordingNotifier{}
	now := time.Date(2014, 2, 3, 9, 12, 0, 0, time.Local)
	p := newTestPuncher(t, repo, notifier, now)

	if err := p.HandleActivity(); err != nil {
		t.Fatalf("handle activity: %v", err)
	}
	r, _ := repo.Get("alice", report.Date("2014-02-03"))
	if r == nil {
		t.Fatal("expected a punched report")
	}
	if r.FirstEntry != "09:12" {
		t.Fatalf("expected first entry 09:12, got %s", r.FirstEntry)
	}
	if r.Remote != "00:00" {
		t.Fatalf("expected zero remote credit, got %s", r.Remote)
	}

	// later activity on the same day leaves the report alone
	p.now = func() time.Time { return now.Add(2 * time.Hour) }
	if err := p.HandleActivity(); err != nil {
		t.Fatalf("handle activity: %v", err)
	}
	r, _ = repo.Get("alice", report.Date("2014-02-03"))
	if r.FirstEntry != "09:12" {
		t.Fatalf("first entry changed to %s", r.FirstEntry)
	}
	if len(notifier.titles) != 1 {
		t.Fatalf("expected one notification, got %v", notifier.titles)
	}
}

func TestCheckEstimatedExitRemindsOncePerDay(t *testing.T) {
	repo := newMemoryRepo()
	if err := repo.Create("alice", report.Report{
		Day:         report.Date("2014-02-03"),
		FirstEntry:  "08:00",
		FirstExit:   "12:00",
		SecondEntry: "14:30",
		Remote:      "00:00",
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	notifier := &recordingNotifier{}

	before := time.Date(2014, 2, 3, 15, 0, 0, 0, time.Local)
	p := newTestPuncher(t, repo, notifier, before)
	if err := p.CheckEstimatedExit(); err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(notifier.titles) != 0 {
		t.Fatalf("expected no reminder before the estimated exit, got %v", notifier.titles)
	}

	after := time.Date(2014, 2, 3, 18, 31, 0, 0, time.Local)
	p.now = func() time.Time { return after }
	if err := p.CheckEstimatedExit(); err != nil {
		t.Fatalf("check: %v", err)
	}
	if err := p.CheckEstimatedExit(); err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(notifier.titles) != 1 {
		t.Fatalf("expected exactly one reminder, got %v", notifier.titles)
	}
}

func TestCheckEstimatedExitSkipsCompleteDay(t *testing.T) {
	repo := newMemoryRepo()
	if err := repo.Create("alice", report.Report{
		Day:         report.Date("2014-02-03"),
		FirstEntry:  "08:00",
		FirstExit:   "12:00",
		SecondEntry: "14:00",
		SecondExit:  "18:00",
		Remote:      "00:00",
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	notifier := &recordingNotifier{}
	now := time.Date(2014, 2, 3, 19, 0, 0, 0, time.Local)
	p := newTestPuncher(t, repo, notifier, now)

	if err := p.CheckEstimatedExit(); err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(notifier.titles) != 0 {
		t.Fatalf("expected no reminder for a closed day, got %v", notifier.titles)
	}
}
