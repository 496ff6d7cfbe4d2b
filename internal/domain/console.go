package domain

import "time"

type ConsoleType string

const (
	ConsoleTypePS3 ConsoleType = "PS3"
	ConsoleTypePS4 ConsoleType = "PS4"
	ConsoleTypePS5 ConsoleType = "PS5"
)

// ValidConsoleType reports whether t is one of the known console generations.
func ValidConsoleType(t ConsoleType) bool {
	switch t {
	case ConsoleTypePS3, ConsoleTypePS4, ConsoleTypePS5:
		return true
	}
	return false
}

type ConsoleStatus string

const (
	ConsoleStatusAvailable   ConsoleStatus = "AVAILABLE"
	ConsoleStatusInUse       ConsoleStatus = "IN_USE"
	ConsoleStatusMaintenance ConsoleStatus = "MAINTENANCE"
)

type Console struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Type      ConsoleType   `json:"type"`
	Status    ConsoleStatus `json:"status"`
	ImageURL  string        `json:"image_url,omitempty"`
	CreatedOn time.Time     `json:"created_on"`
	UpdatedOn time.Time     `json:"updated_on"`
}

// PricingPeriod selects the day or night column of a pricing rule.
type PricingPeriod string

const (
	PricingPeriodDay   PricingPeriod = "DAY"
	PricingPeriodNight PricingPeriod = "NIGHT"
)

// PricingRule holds the hourly rates for one console type. Amounts are whole
// currency units per hour.
type PricingRule struct {
	ConsoleType ConsoleType `json:"console_type"`
	DayRate     int32       `json:"day_rate"`
	NightRate   int32       `json:"night_rate"`
}
