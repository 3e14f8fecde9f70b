package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/florette/internal/models"
)

var ErrInvalidDate = errors.New("invalid date")

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// ParseDay reads a YYYY-MM-DD value as midnight in location.
func ParseDay(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation(models.DateLayout, strings.TrimSpace(raw), location)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return parsed, nil
}

func IsFutureDay(day time.Time, now time.Time, location *time.Location) bool {
	return DateAtLocation(day, location).After(DateAtLocation(now, location))
}
