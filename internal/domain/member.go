package domain

import (
	"sort"
	"strings"
	"time"
)

type PackageKind string

const (
	PackageKindBasic   PackageKind = "BASIC"
	PackageKindPremium PackageKind = "PREMIUM"
)

// EligibilityTier names the console-type set a package may be spent on.
type EligibilityTier string

const (
	TierPS3 EligibilityTier = "PS3_ONLY"
	TierPS4 EligibilityTier = "PS4_PS5"
)

// ConsoleTypes returns the console set covered by the tier.
func (t EligibilityTier) ConsoleTypes() []ConsoleType {
	if t == TierPS4 {
		return []ConsoleType{ConsoleTypePS4, ConsoleTypePS5}
	}
	return []ConsoleType{ConsoleTypePS3}
}

// Label is the human-readable tier name used in transaction notes.
func (t EligibilityTier) Label() string {
	if t == TierPS4 {
		return "PS4/PS5"
	}
	return "PS3 Only"
}

// MemberPackage is one prepaid bundle owned by a member. Initial is reset to
// the merged remaining value on every top-up, so progress displays always
// read relative to the latest top-up rather than the lifetime maximum.
type MemberPackage struct {
	ID                   string        `json:"id"`
	Kind                 PackageKind   `json:"kind"`
	RemainingMinutes     int32         `json:"remaining_minutes"`
	InitialMinutes       int32         `json:"initial_minutes"`
	RemainingDrinks      int32         `json:"remaining_drinks"`
	InitialDrinks        int32         `json:"initial_drinks"`
	ExpiryDate           time.Time     `json:"expiry_date"`
	EligibleConsoleTypes []ConsoleType `json:"eligible_console_types"`
}

// Covers reports whether the package may be spent on the given console type.
func (p *MemberPackage) Covers(t ConsoleType) bool {
	for _, ct := range p.EligibleConsoleTypes {
		if ct == t {
			return true
		}
	}
	return false
}

// Expired reports whether the package is past its expiry at the given instant.
func (p *MemberPackage) Expired(now time.Time) bool {
	return !now.Before(p.ExpiryDate)
}

// EligibilityKey is a canonical string for the eligible-type set, used to
// match packages on top-up (same set merges, different set creates).
func (p *MemberPackage) EligibilityKey() string {
	types := make([]string, len(p.EligibleConsoleTypes))
	for i, ct := range p.EligibleConsoleTypes {
		types[i] = string(ct)
	}
	sort.Strings(types)
	return strings.Join(types, "+")
}

// EligibilityKeyFor returns the canonical key for a tier's console set.
func EligibilityKeyFor(tier EligibilityTier) string {
	pkg := MemberPackage{EligibleConsoleTypes: tier.ConsoleTypes()}
	return pkg.EligibilityKey()
}

type Member struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Phone        string          `json:"phone"`
	TotalRentals int32           `json:"total_rentals"`
	TotalSpend   int32           `json:"total_spend"`
	Packages     []MemberPackage `json:"packages"`
	CreatedOn    time.Time       `json:"created_on"`
	UpdatedOn    time.Time       `json:"updated_on"`
}

// PackageDefinition is the canonical grant for one package kind.
type PackageDefinition struct {
	Minutes      int32 `yaml:"minutes" json:"minutes"`
	Drinks       int32 `yaml:"drinks" json:"drinks"`
	ValidityDays int32 `yaml:"validity_days" json:"validity_days"`
	PricePS3     int32 `yaml:"price_ps3" json:"price_ps3"`
	PricePS4     int32 `yaml:"price_ps4" json:"price_ps4"` // covers PS4/PS5
}

// Price returns the charge for the definition at a given tier.
func (d PackageDefinition) Price(tier EligibilityTier) int32 {
	if tier == TierPS4 {
		return d.PricePS4
	}
	return d.PricePS3
}
