package report

import "errors"

// Report is one user's time record for a single day: two clock-in/out pairs,
// a remote-work credit and an absence flag. Clock fields hold raw "HH:MM"
// text and may be blank.
type Report struct {
	Day         Date   `json:"day"`
	FirstEntry  string `json:"first_entry"`
	FirstExit   string `json:"first_exit"`
	SecondEntry string `json:"second_entry"`
	SecondExit  string `json:"second_exit"`
	Remote      string `json:"remote"`
	Away        bool   `json:"away"`
	Notice      string `json:"notice"`
}

var (
	ErrDayRequired    = errors.New("day is required")
	ErrRemoteRequired = errors.New("remote is required")
	ErrEntryExitOrder = errors.New("invalid entry/exit sequence")
)

// Validate gates persistence: day and remote must be present and the
// populated clock events must be in chronological order.
func (r Report) Validate() error {
	if r.Day == "" {
		return ErrDayRequired
	}
	if r.Remote == "" {
		return ErrRemoteRequired
	}
	return r.validateEntryExitOrder()
}

// validateEntryExitOrder scans the canonical event list pairwise: a field
// earlier in the sequence must not be later than any populated field after
// it. Blank or unparseable events never participate, and any number of
// violations collapses into the one record-level error.
func (r Report) validateEntryExitOrder() error {
	events := r.clocks()
	for i, c := range events[:len(events)-1] {
		if c == nil {
			continue
		}
		for _, later := range events[i+1:] {
			if later != nil && *later < *c {
				return ErrEntryExitOrder
			}
		}
	}
	return nil
}

func (r Report) clocks() [4]*Clock {
	return [4]*Clock{
		ParseClock(r.FirstEntry),
		ParseClock(r.FirstExit),
		ParseClock(r.SecondEntry),
		ParseClock(r.SecondExit),
	}
}

// Worked returns the total attributed work for the day in seconds: both
// clocked intervals plus the remote credit. An incomplete pair contributes
// nothing rather than going negative.
func (r Report) Worked() int {
	total := interval(r.FirstEntry, r.FirstExit) + interval(r.SecondEntry, r.SecondExit)
	if remote := ParseClock(r.Remote); remote != nil {
		total += remote.Seconds()
	}
	return total
}

func interval(entry, exit string) int {
	e := ParseClock(entry)
	x := ParseClock(exit)
	if e == nil || x == nil {
		return 0
	}
	return x.Seconds() - e.Seconds()
}
