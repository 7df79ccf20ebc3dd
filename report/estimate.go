package report

// EstimatedExit projects the final clock-out that would close the day at
// exactly the contractual quota. It only applies while the user is mid way
// through the second shift: first entry, first exit and second entry
// populated, second exit still blank. Anything else yields no value, never
// a guess.
func (r Report) EstimatedExit(quota int) *Clock {
	if !r.canEstimate() {
		return nil
	}
	second := ParseClock(r.SecondEntry)
	if second == nil {
		return nil
	}
	worked := r.Worked()
	if worked >= quota {
		return second
	}
	c := Clock(second.Seconds() + quota - worked)
	return &c
}

func (r Report) canEstimate() bool {
	if r.SecondExit != "" {
		return false
	}
	for _, f := range []string{r.FirstEntry, r.FirstExit, r.SecondEntry} {
		if f == "" {
			return false
		}
	}
	return true
}
