package utils

import (
	"time"

	"gamestation-backend/internal/domain"
)

// Day window boundaries, local wall-clock hours. [06:00, 18:00) bills at the
// day rate, the complement at the night rate.
const (
	DayWindowStartHour = 6
	DayWindowEndHour   = 18
)

// DefaultQuantumMinutes is the billing granularity when none is configured.
const DefaultQuantumMinutes = 6

// RateTable maps console types to their pricing rules.
type RateTable map[domain.ConsoleType]domain.PricingRule

// IsDayHour reports whether a local wall-clock hour falls in the day window.
func IsDayHour(hour int) bool {
	return hour >= DayWindowStartHour && hour < DayWindowEndHour
}

// HourlyRate returns the hourly rate in force for a console type at the given
// instant. A console type with no configured rule falls back to the PS5 row;
// that fallback is a documented quirk of the shop's price list, not an error.
func HourlyRate(rates RateTable, consoleType domain.ConsoleType, at time.Time) int32 {
	rule, ok := rates[consoleType]
	if !ok {
		rule = rates[domain.ConsoleTypePS5]
	}
	if IsDayHour(at.Hour()) {
		return rule.DayRate
	}
	return rule.NightRate
}

// CalculateDynamicCost converts a rental interval into a cost. Cost accrues
// in fixed quanta rather than continuously: each quantum bills at the rate in
// force at its start instant, so a quantum straddling the day/night boundary
// bills entirely at its starting rate. A partial trailing quantum bills in
// full. Returns 0 when end is not after start.
func CalculateDynamicCost(consoleType domain.ConsoleType, start, end time.Time, rates RateTable, quantumMinutes int) int32 {
	if quantumMinutes <= 0 {
		quantumMinutes = DefaultQuantumMinutes
	}
	if !end.After(start) {
		return 0
	}

	quantum := time.Duration(quantumMinutes) * time.Minute
	var total int32
	for cur := start; cur.Before(end); cur = cur.Add(quantum) {
		rate := HourlyRate(rates, consoleType, cur)
		total += rate * int32(quantumMinutes) / 60
	}
	return total
}

// ElapsedMinutes returns the session duration in whole minutes, rounding any
// partial minute up. Non-positive durations count as 0.
func ElapsedMinutes(start, end time.Time) int32 {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	mins := d / time.Minute
	if d%time.Minute > 0 {
		mins++
	}
	return int32(mins)
}
