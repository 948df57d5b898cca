package progression

import (
	"time"

	"englishquest/internal/models"
)

// Clock abstracts current time so streak logic can be tested with fixed dates
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// NewRealClock returns a Clock backed by time.Now
func NewRealClock() Clock {
	return realClock{}
}

// daysBetween returns the number of whole calendar days from an earlier
// date string to a later time, ignoring the time-of-day portion.
func daysBetween(dateStr string, now time.Time) (int, error) {
	then, err := time.ParseInLocation(models.DateLayout, dateStr, now.Location())
	if err != nil {
		return 0, err
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return int(today.Sub(then).Hours() / 24), nil
}
