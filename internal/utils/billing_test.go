package utils

import (
	"testing"
	"time"

	"gamestation-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testRates() RateTable {
	return RateTable{
		domain.ConsoleTypePS3: {ConsoleType: domain.ConsoleTypePS3, DayRate: 5000, NightRate: 4000},
		domain.ConsoleTypePS4: {ConsoleType: domain.ConsoleTypePS4, DayRate: 7000, NightRate: 6000},
		domain.ConsoleTypePS5: {ConsoleType: domain.ConsoleTypePS5, DayRate: 10000, NightRate: 8000},
	}
}

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.Local)
}

func TestIsDayHour(t *testing.T) {
	tests := []struct {
		hour     int
		expected bool
	}{
		{5, false},
		{6, true},
		{12, true},
		{17, true},
		{18, false},
		{23, false},
		{0, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsDayHour(tt.hour), "hour %d", tt.hour)
	}
}

func TestHourlyRate(t *testing.T) {
	rates := testRates()

	t.Run("Day rate inside window", func(t *testing.T) {
		assert.Equal(t, int32(10000), HourlyRate(rates, domain.ConsoleTypePS5, at(9, 0)))
	})

	t.Run("Night rate outside window", func(t *testing.T) {
		assert.Equal(t, int32(8000), HourlyRate(rates, domain.ConsoleTypePS5, at(19, 0)))
	})

	t.Run("Unknown type falls back to PS5", func(t *testing.T) {
		assert.Equal(t, int32(10000), HourlyRate(rates, domain.ConsoleType("PS2"), at(9, 0)))
	})
}

func TestCalculateDynamicCost(t *testing.T) {
	rates := testRates()

	t.Run("End before start is zero", func(t *testing.T) {
		cost := CalculateDynamicCost(domain.ConsoleTypePS5, at(10, 0), at(9, 0), rates, 6)
		assert.Equal(t, int32(0), cost)
	})

	t.Run("End equal to start is zero", func(t *testing.T) {
		cost := CalculateDynamicCost(domain.ConsoleTypePS5, at(10, 0), at(10, 0), rates, 6)
		assert.Equal(t, int32(0), cost)
	})

	t.Run("Whole day hour equals hourly rate", func(t *testing.T) {
		cost := CalculateDynamicCost(domain.ConsoleTypePS5, at(9, 0), at(10, 0), rates, 6)
		assert.Equal(t, int32(10000), cost)
	})

	t.Run("Whole night hour equals night rate", func(t *testing.T) {
		cost := CalculateDynamicCost(domain.ConsoleTypePS3, at(20, 0), at(21, 0), rates, 6)
		assert.Equal(t, int32(4000), cost)
	})

	t.Run("66 minutes bills 11 full quanta", func(t *testing.T) {
		// 09:00 to 10:06 on a PS5 at 10000/hr: 11 quanta of 1000 each.
		cost := CalculateDynamicCost(domain.ConsoleTypePS5, at(9, 0), at(10, 6), rates, 6)
		assert.Equal(t, int32(11000), cost)
	})

	t.Run("Partial trailing quantum bills in full", func(t *testing.T) {
		// 09:00 to 09:07 covers one full quantum plus one minute of the next.
		cost := CalculateDynamicCost(domain.ConsoleTypePS5, at(9, 0), at(9, 7), rates, 6)
		assert.Equal(t, int32(2000), cost)
	})

	t.Run("Quantum straddling boundary bills at its start rate", func(t *testing.T) {
		// The quantum starting 17:58 bills entirely at the day rate even
		// though 4 of its minutes fall in the night window.
		cost := CalculateDynamicCost(domain.ConsoleTypePS5, at(17, 58), at(18, 4), rates, 6)
		assert.Equal(t, int32(1000), cost)
	})

	t.Run("Interval crossing into night mixes rates per quantum", func(t *testing.T) {
		// 17:00 to 19:00 on a PS3: first hour at day 5000, second at night 4000.
		cost := CalculateDynamicCost(domain.ConsoleTypePS3, at(17, 0), at(19, 0), rates, 6)
		assert.Equal(t, int32(9000), cost)
	})

	t.Run("Zero quantum uses default", func(t *testing.T) {
		cost := CalculateDynamicCost(domain.ConsoleTypePS5, at(9, 0), at(10, 0), rates, 0)
		assert.Equal(t, int32(10000), cost)
	})
}

func TestElapsedMinutes(t *testing.T) {
	t.Run("Exact minutes", func(t *testing.T) {
		assert.Equal(t, int32(66), ElapsedMinutes(at(9, 0), at(10, 6)))
	})

	t.Run("Partial minute rounds up", func(t *testing.T) {
		start := at(9, 0)
		end := start.Add(90 * time.Second)
		assert.Equal(t, int32(2), ElapsedMinutes(start, end))
	})

	t.Run("Negative duration is zero", func(t *testing.T) {
		assert.Equal(t, int32(0), ElapsedMinutes(at(10, 0), at(9, 0)))
	})
}
