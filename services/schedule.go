package services

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"

	"aquadrop-backend/models"
	"aquadrop-backend/utils"
)

const (
	// NoServiceHorizon is what DaysUntil reports for an unknown date. It is
	// far enough out that such customers never classify as due or upcoming.
	NoServiceHorizon = 9999

	DueWithinDays      = 7
	UpcomingWithinDays = 15
)

// NextServiceDate is the last service (or the install when never serviced)
// plus the customer's interval. Nil when neither date is known.
func NextServiceDate(c models.Customer) *civil.Date {
	base := c.LastServiceDate
	if base == nil {
		base = c.InstallDate
	}
	if base == nil {
		return nil
	}
	next := base.AddDays(c.IntervalDays)
	return &next
}

// DaysUntil counts whole days from today to date. Past dates are negative.
func DaysUntil(date *civil.Date, today civil.Date) int {
	if date == nil {
		return NoServiceHorizon
	}
	return utils.DaysBetween(today, *date)
}

// StatusOf classifies a customer. The inactive flag wins over any date.
func StatusOf(c models.Customer, today civil.Date) models.ServiceStatus {
	if !c.IsActive() {
		return models.StatusInactive
	}
	d := DaysUntil(NextServiceDate(c), today)
	switch {
	case d <= DueWithinDays:
		return models.StatusDue
	case d <= UpcomingWithinDays:
		return models.StatusUpcoming
	default:
		return models.StatusGood
	}
}

// CustomerView is a customer with its schedule derived for one day.
type CustomerView struct {
	models.Customer
	NextServiceDate *civil.Date          `json:"next_service_date"`
	DaysUntil       int                  `json:"days_until"`
	ServiceStatus   models.ServiceStatus `json:"service_status"`
}

func Classify(c models.Customer, today civil.Date) CustomerView {
	next := NextServiceDate(c)
	return CustomerView{
		Customer:        c,
		NextServiceDate: next,
		DaysUntil:       DaysUntil(next, today),
		ServiceStatus:   StatusOf(c, today),
	}
}

// Summary holds the dashboard counters.
type Summary struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Due      int `json:"due"`
	Upcoming int `json:"upcoming"`
	Good     int `json:"good"`
}

func Summarize(customers []models.Customer, today civil.Date) Summary {
	sum := Summary{Total: len(customers)}
	for _, c := range customers {
		if c.IsActive() {
			sum.Active++
		} else {
			sum.Inactive++
		}
		switch StatusOf(c, today) {
		case models.StatusDue:
			sum.Due++
		case models.StatusUpcoming:
			sum.Upcoming++
		case models.StatusGood:
			sum.Good++
		}
	}
	return sum
}

// CustomerFilter selects customers for the list view. All lists active
// customers only; the status filters never include inactive customers.
type CustomerFilter string

const (
	FilterAll      CustomerFilter = "All"
	FilterDue      CustomerFilter = "Due"
	FilterUpcoming CustomerFilter = "Upcoming"
	FilterGood     CustomerFilter = "Good"
	FilterInactive CustomerFilter = "Inactive"
)

// ParseCustomerFilter is case-insensitive; empty means All.
func ParseCustomerFilter(s string) (CustomerFilter, error) {
	if s == "" {
		return FilterAll, nil
	}
	for _, f := range []CustomerFilter{FilterAll, FilterDue, FilterUpcoming, FilterGood, FilterInactive} {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", invalid("status", fmt.Sprintf("unknown filter %q", s))
}

func (f CustomerFilter) Match(v CustomerView) bool {
	switch f {
	case FilterAll:
		return v.IsActive()
	case FilterInactive:
		return !v.IsActive()
	case FilterDue:
		return v.ServiceStatus == models.StatusDue
	case FilterUpcoming:
		return v.ServiceStatus == models.StatusUpcoming
	case FilterGood:
		return v.ServiceStatus == models.StatusGood
	}
	return false
}
