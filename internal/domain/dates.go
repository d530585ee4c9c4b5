package domain

import "time"

// DateOnly strips the time-of-day from t and pins the result to UTC. All
// status derivation and dashboard bucketing compare dates through this, so
// same-day instants are equal regardless of the hour or zone the API recorded.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// Nights returns the number of nights between arrival and departure in whole
// days. Equal dates yield 0.
func Nights(arrivee, depart time.Time) int {
	return int(DateOnly(depart).Sub(DateOnly(arrivee)).Hours() / 24)
}
