package report

// User owns reports. Only the contractual daily quota is ever read from it.
type User struct {
	Name        string
	HoursPerDay int
}

// Quota is the expected work duration for one day, in seconds.
func (u User) Quota() int {
	return u.HoursPerDay * 3600
}
