package expiry

import (
	"fmt"
	"math"
	"time"

	"discard/internal/notes/data"
)

// HumanRemaining describes remaining as seen from the current local time
func HumanRemaining(remaining time.Duration) string {
	return HumanRemainingAt(time.Now(), remaining)
}

// Describe returns the "expires in" text for a note
func Describe(n data.Note, now time.Time) string {
	return HumanRemainingAt(now, Remaining(n, now))
}

// HumanRemainingAt gives a coarse, calendar-aware description of remaining
// measured from now. It is meant for display only.
func HumanRemainingAt(now time.Time, remaining time.Duration) string {
	if remaining <= 0 {
		return "now"
	}
	if remaining <= time.Minute {
		return fmt.Sprintf("%d seconds", int(math.Round(remaining.Seconds())))
	}

	days, hours, minutes := calendarComponents(now, now.Add(remaining))

	switch {
	case days < 1:
		switch {
		case hours < 1:
			switch {
			case minutes <= 0:
				return "now"
			case minutes == 1:
				return "1 minute"
			default:
				return fmt.Sprintf("%d minutes", minutes)
			}
		case hours == 1:
			return "1 hour"
		default:
			return fmt.Sprintf("%d hours", hours)
		}
	case days == 1:
		return "1 day"
	case days < 7:
		return fmt.Sprintf("%d days", days)
	case days < 14:
		return "1 week"
	case days < 30:
		return fmt.Sprintf("%d weeks", days/7)
	case days < 60:
		return "1 month"
	case days < 180:
		return fmt.Sprintf("%d months", days/30)
	case days < 365:
		return "6 months"
	default:
		return "1 year"
	}
}
