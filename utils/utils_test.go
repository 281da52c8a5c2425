package utils

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhone(t *testing.T) {
	for phone, ok := range map[string]bool{
		"9876543210":        true,
		"+91 98765-43210":   true,
		"(080) 2345 6789":   false,
		"+1 (415) 555-0100": true,
		"0123":              false,
		"abc":               false,
		"":                  false,
	} {
		assert.Equal(t, ok, ValidatePhone(phone), phone)
	}
}

func TestValidateStructUsesJSONNames(t *testing.T) {
	type contact struct {
		FullName string `json:"full_name" validate:"required"`
		Mobile   string `json:"mobile" validate:"omitempty,phone"`
	}

	err := ValidateStruct(contact{Mobile: "012"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 2)
	assert.Equal(t, "full_name", verrs[0].Field())
	assert.Equal(t, "mobile", verrs[1].Field())
	assert.Equal(t, "phone", verrs[1].Tag())

	assert.NoError(t, ValidateStruct(contact{FullName: "Suma"}))
}

func TestTodayUsesClockLocation(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)
	// 20:00 UTC is already the next morning in IST
	clock := FixedClock{T: time.Date(2025, 10, 14, 20, 0, 0, 0, time.UTC).In(kolkata)}
	assert.Equal(t, civil.Date{Year: 2025, Month: time.October, Day: 15}, Today(clock))

	rc := RealClock{Location: kolkata}
	assert.Equal(t, kolkata, rc.Now().Location())
}

func TestDaysBetween(t *testing.T) {
	a := civil.Date{Year: 2025, Month: time.February, Day: 20}
	b := civil.Date{Year: 2025, Month: time.March, Day: 2}
	assert.Equal(t, 10, DaysBetween(a, b))
	assert.Equal(t, -10, DaysBetween(b, a))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("suma@example.com"))
	assert.False(t, ValidateEmail("suma-at-example"))
	assert.False(t, ValidateEmail(""))
}
