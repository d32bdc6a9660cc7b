// Package expiry computes how long a note has left, how to describe that to a
// person, and when the note must be deleted. Everything here is a pure
// function of a note's expiry instant and the current time.
package expiry

import (
	"time"

	"discard/internal/notes/data"
)

// SoonDays is the largest calendar day-delta that still counts as expiring soon
const SoonDays = 7

const (
	finePoll   = 100 * time.Millisecond
	coarsePoll = time.Minute
)

// Remaining returns the time left before the note expires, negative once expired
func Remaining(n data.Note, now time.Time) time.Duration {
	return n.ExpiryDate.Sub(now)
}

// IsExpired reports whether the note's expiry instant has been reached
func IsExpired(n data.Note, now time.Time) bool {
	return Remaining(n, now) <= 0
}

// ShouldTriggerDeletion reports whether a poll at now must delete the note.
// It is safe to evaluate any number of times.
func ShouldTriggerDeletion(n data.Note, now time.Time) bool {
	return IsExpired(n, now)
}

// NearestBucket picks the first bucket whose duration times 1.5 is not
// exceeded by remaining, or Year when none is.
func NearestBucket(remaining time.Duration) Bucket {
	for _, b := range Buckets() {
		if remaining <= b.Duration()*3/2 {
			return b
		}
	}
	return Year
}

// DaysUntil returns the number of whole calendar days from now to expiry,
// truncated toward zero. It is negative for instants more than a day past.
func DaysUntil(now, expiry time.Time) int {
	if expiry.Before(now) {
		days, _, _ := calendarComponents(expiry, now)
		return -days
	}
	days, _, _ := calendarComponents(now, expiry)
	return days
}

// IsExpiringSoon reports whether the note expires within SoonDays calendar days
func IsExpiringSoon(n data.Note, now time.Time) bool {
	return DaysUntil(now, n.ExpiryDate) <= SoonDays
}

// PollInterval returns how long a scheduler may wait before checking a note
// with the given remaining time again.
func PollInterval(remaining time.Duration) time.Duration {
	if remaining <= time.Minute {
		return finePoll
	}
	wait := remaining - time.Minute
	if wait > coarsePoll {
		return coarsePoll
	}
	if wait < finePoll {
		return finePoll
	}
	return wait
}

// calendarComponents splits the span from..to into whole calendar days, then
// whole hours and minutes, in from's location. to must not precede from.
func calendarComponents(from, to time.Time) (days, hours, minutes int) {
	to = to.In(from.Location())

	// Durations saturate after ~292 years, so estimate from the dates
	days = dayNumber(to) - dayNumber(from)
	for !from.AddDate(0, 0, days+1).After(to) {
		days++
	}
	for days > 0 && from.AddDate(0, 0, days).After(to) {
		days--
	}

	rest := to.Sub(from.AddDate(0, 0, days))
	hours = int(rest / time.Hour)
	minutes = int(rest % time.Hour / time.Minute)
	return days, hours, minutes
}

// dayNumber counts days since the Unix epoch for t's calendar date
func dayNumber(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}
