package model

// HasEntryFor reports whether the history already holds a record for the
// given date.
func HasEntryFor(history []WeightRecord, date string) bool {
	for _, r := range history {
		if r.Date == date {
			return true
		}
	}
	return false
}

// EntryDue reports whether a weigh-in prompt is due for the given date.
// It is a derived signal, recomputed on every state change, never stored.
func EntryDue(s AppState, today string) bool {
	if !s.Onboarded || s.Profile == nil {
		return false
	}
	return !HasEntryFor(s.History, today)
}
