package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kasku/kasku_backend/internal/utils/dates"
)

func TestAddCalendarMonth(t *testing.T) {
	testCases := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "mid-month keeps the day",
			input:    time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Jan 31 clamps to Feb 28",
			input:    time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Jan 31 clamps to Feb 29 in a leap year",
			input:    time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Mar 31 clamps to Apr 30",
			input:    time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "December rolls into the next year",
			input:    time.Date(2025, time.December, 10, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "clock is preserved",
			input:    time.Date(2025, time.May, 5, 13, 45, 30, 0, time.UTC),
			expected: time.Date(2025, time.June, 5, 13, 45, 30, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, dates.AddCalendarMonth(tc.input))
		})
	}
}

func TestAddCalendarMonthIsNotThirtyDays(t *testing.T) {
	// A Feb 28 due date must land on Mar 28, not Mar 30.
	input := time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.March, 28, 0, 0, 0, 0, time.UTC), dates.AddCalendarMonth(input))
}
