// utils/dates.go
package utils

import (
	"cloud.google.com/go/civil"
)

// Today is the calendar date of clock.Now in the clock's own location.
func Today(clock Clock) civil.Date {
	return civil.DateOf(clock.Now())
}

// DaysBetween is end minus start in whole days.
func DaysBetween(start, end civil.Date) int {
	return end.DaysSince(start)
}
