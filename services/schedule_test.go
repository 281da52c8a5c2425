package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquadrop-backend/models"
)

func TestNextServiceDate(t *testing.T) {
	tests := []struct {
		name     string
		customer models.Customer
		want     *string
	}{
		{
			name:     "falls back to install date",
			customer: models.Customer{InstallDate: dayPtr("2025-06-01"), IntervalDays: 90},
			want:     strPtr("2025-08-30"),
		},
		{
			name:     "last service wins over install date",
			customer: models.Customer{InstallDate: dayPtr("2025-06-01"), LastServiceDate: dayPtr("2025-09-01"), IntervalDays: 60},
			want:     strPtr("2025-10-31"),
		},
		{
			name:     "zero interval yields the base date",
			customer: models.Customer{InstallDate: dayPtr("2025-06-01"), IntervalDays: 0},
			want:     strPtr("2025-06-01"),
		},
		{
			name:     "crosses a year boundary",
			customer: models.Customer{LastServiceDate: dayPtr("2025-12-15"), IntervalDays: 30},
			want:     strPtr("2026-01-14"),
		},
		{
			name:     "unknown without any date",
			customer: models.Customer{IntervalDays: 90},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextServiceDate(tt.customer)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, got.String())
		})
	}
}

func strPtr(s string) *string { return &s }

func TestDaysUntil(t *testing.T) {
	today := day("2025-08-20")

	assert.Equal(t, 0, DaysUntil(&today, today))
	assert.Equal(t, 10, DaysUntil(dayPtr("2025-08-30"), today))
	assert.Equal(t, -19, DaysUntil(dayPtr("2025-08-01"), today))
	assert.Equal(t, NoServiceHorizon, DaysUntil(nil, today))
}

func TestStatusOfBoundaries(t *testing.T) {
	today := day("2025-08-20")
	tests := []struct {
		days int
		want models.ServiceStatus
	}{
		{-30, models.StatusDue},
		{0, models.StatusDue},
		{7, models.StatusDue},
		{8, models.StatusUpcoming},
		{15, models.StatusUpcoming},
		{16, models.StatusGood},
		{400, models.StatusGood},
	}
	for _, tt := range tests {
		base := today.AddDays(tt.days - 30)
		c := models.Customer{InstallDate: &base, IntervalDays: 30, Status: models.CustomerActive}
		require.Equal(t, tt.days, DaysUntil(NextServiceDate(c), today))
		assert.Equal(t, tt.want, StatusOf(c, today), "days until = %d", tt.days)
	}
}

func TestStatusOfInactiveIgnoresDates(t *testing.T) {
	today := day("2025-08-20")
	for _, c := range []models.Customer{
		{Status: models.CustomerInactive, InstallDate: dayPtr("2020-01-01"), IntervalDays: 30},
		{Status: models.CustomerInactive, LastServiceDate: dayPtr("2025-08-19"), IntervalDays: 365},
		{Status: models.CustomerInactive},
	} {
		assert.Equal(t, models.StatusInactive, StatusOf(c, today))
	}
}

func TestStatusOfWithoutDatesIsGood(t *testing.T) {
	c := models.Customer{Status: models.CustomerActive, IntervalDays: 90}
	assert.Equal(t, models.StatusGood, StatusOf(c, day("2025-08-20")))
}

func TestClassifyUpcomingScenario(t *testing.T) {
	c := models.Customer{ID: "C9", InstallDate: dayPtr("2025-06-01"), IntervalDays: 90, Status: models.CustomerActive}
	v := Classify(c, day("2025-08-20"))

	require.NotNil(t, v.NextServiceDate)
	assert.Equal(t, "2025-08-30", v.NextServiceDate.String())
	assert.Equal(t, 10, v.DaysUntil)
	assert.Equal(t, models.StatusUpcoming, v.ServiceStatus)
	assert.Equal(t, "C9", v.ID)
}

func TestSummarizeSampleData(t *testing.T) {
	sum := Summarize(models.SampleCustomers(), day("2025-10-15"))
	assert.Equal(t, Summary{Total: 3, Active: 2, Inactive: 1, Due: 0, Upcoming: 1, Good: 1}, sum)
}

func TestCustomerFilter(t *testing.T) {
	f, err := ParseCustomerFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	f, err = ParseCustomerFilter("upcoming")
	require.NoError(t, err)
	assert.Equal(t, FilterUpcoming, f)

	_, err = ParseCustomerFilter("overdue")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)

	active := CustomerView{Customer: models.Customer{Status: models.CustomerActive}, ServiceStatus: models.StatusDue}
	inactive := CustomerView{Customer: models.Customer{Status: models.CustomerInactive}, ServiceStatus: models.StatusInactive}

	assert.True(t, FilterAll.Match(active))
	assert.False(t, FilterAll.Match(inactive))
	assert.True(t, FilterInactive.Match(inactive))
	assert.False(t, FilterInactive.Match(active))
	assert.True(t, FilterDue.Match(active))
	assert.False(t, FilterDue.Match(inactive))
	assert.False(t, FilterGood.Match(active))
}
