package report

// Balance is a non-negative amount of seconds owed by the user (deficit) or
// to the user (surplus).
type Balance struct {
	Seconds int
	Surplus bool
}

// BalancePolicy configures how a day's balance is judged.
type BalancePolicy struct {
	Quota      int  // contractual seconds per day
	NonWorking bool // a day the user is not obligated to work
}

// BalanceFor compares worked time against the policy. An away day owes the
// full quota no matter what was clocked; a non-working day credits it in
// full instead.
func (r Report) BalanceFor(p BalancePolicy) Balance {
	switch {
	case r.Away:
		return Balance{Seconds: p.Quota}
	case p.NonWorking:
		return Balance{Seconds: p.Quota, Surplus: true}
	default:
		worked := r.Worked()
		if worked < p.Quota {
			return Balance{Seconds: p.Quota - worked}
		}
		return Balance{Seconds: worked - p.Quota, Surplus: true}
	}
}

// Signed returns the balance in seconds, deficits negative.
func (b Balance) Signed() int {
	if b.Surplus {
		return b.Seconds
	}
	return -b.Seconds
}

func (b Balance) String() string {
	return FormatSignedHourMinute(b.Signed())
}
