package model

import "time"

// Frequency is the cadence of a recurring transaction pattern.
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiWeekly  Frequency = "bi-weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// FrequencyDays maps each frequency to its nominal interval in days. Pattern
// matching compares observed mean intervals against these targets.
var FrequencyDays = map[Frequency]float64{
	FrequencyDaily:     1,
	FrequencyWeekly:    7,
	FrequencyBiWeekly:  14,
	FrequencyMonthly:   30,
	FrequencyQuarterly: 90,
	FrequencyYearly:    365,
}

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	_, ok := FrequencyDays[f]
	return ok
}

// Days returns the nominal interval in days, or 0 for an unknown frequency.
func (f Frequency) Days() float64 {
	return FrequencyDays[f]
}

// NextAfter returns the expected next occurrence after the given date.
func (f Frequency) NextAfter(d time.Time) time.Time {
	return d.AddDate(0, 0, int(f.Days()))
}
