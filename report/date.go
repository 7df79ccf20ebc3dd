package report

import "time"

// Date is a calendar day in YYYY-MM-DD form. The textual representation
// sorts chronologically, which the repository relies on for key order.
type Date string

const dateLayout = "2006-01-02"

func NewDate(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", err
	}
	return NewDate(t), nil
}

func (d Date) Time() time.Time {
	t, _ := time.Parse(dateLayout, string(d))
	return t
}

func (d Date) Format(layout string) string {
	return d.Time().Format(layout)
}
