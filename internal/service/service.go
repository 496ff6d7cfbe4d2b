package service

import (
	"context"
	"time"

	"gamestation-backend/internal/domain"
	"gamestation-backend/internal/utils"
)

// PricingService is the read-mostly table of day/night hourly rates.
type PricingService interface {
	// RateFor returns the hourly rate for a console type at an instant,
	// falling back to the PS5 row for unconfigured types.
	RateFor(consoleType domain.ConsoleType, at time.Time) int32
	// SetRate updates one day or night rate. Negative input clamps to 0.
	SetRate(ctx context.Context, consoleType domain.ConsoleType, period domain.PricingPeriod, value int32) error
	// Rates returns a copy of the current table.
	Rates() utils.RateTable
}

// SettlementOutcome reports what a package settlement consumed.
type SettlementOutcome struct {
	PackageID       string
	MinutesDeducted int32
	FreeUnits       int32
	DiscountAmount  int32
}

// MembershipService owns the prepaid-package rules: selection, top-up
// merging, and close-time consumption.
type MembershipService interface {
	// FindEligiblePackage returns the first package usable for the console
	// type at the given instant, or nil with a warning classification.
	FindEligiblePackage(m *domain.Member, consoleType domain.ConsoleType, at time.Time) (*domain.MemberPackage, domain.PackageWarning)
	// PurchasePackage creates or tops up the member's package for the
	// tier's eligibility set and records a membership transaction.
	PurchasePackage(ctx context.Context, memberID string, kind domain.PackageKind, tier domain.EligibilityTier, now time.Time) (*domain.Member, *domain.MembershipTransaction, error)
	// ApplySettlement mutates the member in place: deducts elapsed minutes
	// from the covering package and consumes free-drink credits against
	// units of the designated complimentary product in the cart. The
	// caller persists the member and must hold its per-member lock.
	ApplySettlement(m *domain.Member, consoleType domain.ConsoleType, elapsedMinutes int32, items []domain.CartItem, complimentaryProductID string, now time.Time) *SettlementOutcome
}

// RentalService is the per-console session state machine.
type RentalService interface {
	OpenSession(ctx context.Context, consoleID, memberID, customerName string, now time.Time) (*domain.RentalSession, domain.PackageWarning, error)
	AddItem(ctx context.Context, sessionID, productID string) (*domain.RentalSession, error)
	// Tick recomputes the advisory running totals of one active session.
	Tick(ctx context.Context, sessionID string, now time.Time) (*domain.RentalSession, error)
	// CloseSession settles and freezes the session. feeOverride, when
	// non-nil, replaces the computed rental fee (clamped to >= 0).
	CloseSession(ctx context.Context, sessionID, staffID string, now time.Time, feeOverride *int32) (*domain.RentalSession, error)
	GetSession(ctx context.Context, sessionID string) (*domain.RentalSession, error)
	ListActiveSessions(ctx context.Context) ([]domain.RentalSession, error)
}

// HistoryWindow selects a reporting period anchored at local calendar days.
type HistoryWindow string

const (
	HistoryWindowDaily   HistoryWindow = "daily"   // today
	HistoryWindowWeekly  HistoryWindow = "weekly"  // last 7 days
	HistoryWindowMonthly HistoryWindow = "monthly" // last 30 days
)

// DailyBucket is one calendar day of the report series.
type DailyBucket struct {
	Date    string `json:"date"` // local calendar date, yyyy-mm-dd
	Income  int32  `json:"income"`
	Expense int32  `json:"expense"`
	Profit  int32  `json:"profit"`
}

// ReportRow is one line for the export collaborator.
type ReportRow struct {
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Kind      string    `json:"kind"`
	Detail    string    `json:"detail"`
	Note      string    `json:"note"`
	Amount    int32     `json:"amount"`
}

// HistorySummary is the aggregate output for one window.
type HistorySummary struct {
	Window           HistoryWindow `json:"window"`
	From             time.Time     `json:"from"`
	To               time.Time     `json:"to"`
	RentalIncome     int32         `json:"rental_income"`
	MembershipIncome int32         `json:"membership_income"`
	TotalIncome      int32         `json:"total_income"`
	TotalExpense     int32         `json:"total_expense"`
	NetProfit        int32         `json:"net_profit"`
	Days             []DailyBucket `json:"days"`
	Rows             []ReportRow   `json:"rows"`
}

// HistoryService is the pure read-side aggregation over closed sessions,
// membership transactions and expenses.
type HistoryService interface {
	Summarize(ctx context.Context, window HistoryWindow, now time.Time) (*HistorySummary, error)
}

// CatalogService manages products and stock.
type CatalogService interface {
	CreateProduct(ctx context.Context, name string, price int32, category domain.ProductCategory, stock int32, complimentary bool) (*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, p *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, delta int32) error
	// ComplimentaryProduct returns the product whose units free-drink
	// credits may cover, or ErrNotFound when none is flagged.
	ComplimentaryProduct(ctx context.Context) (*domain.Product, error)
}

// MemberService manages member records.
type MemberService interface {
	CreateMember(ctx context.Context, name, phone string) (*domain.Member, error)
	GetMember(ctx context.Context, id string) (*domain.Member, error)
	ListMembers(ctx context.Context) ([]domain.Member, error)
	SearchMembers(ctx context.Context, query string) ([]domain.Member, error)
	UpdateMember(ctx context.Context, id, name, phone string) (*domain.Member, error)
}

// ConsoleService manages the stations themselves.
type ConsoleService interface {
	CreateConsole(ctx context.Context, name string, consoleType domain.ConsoleType) (*domain.Console, error)
	GetConsole(ctx context.Context, id string) (*domain.Console, error)
	ListConsoles(ctx context.Context) ([]domain.Console, error)
	UpdateConsole(ctx context.Context, c *domain.Console) error
	DeleteConsole(ctx context.Context, id string) error
}

// ExpenseService records outgoing cash.
type ExpenseService interface {
	RecordExpense(ctx context.Context, note string, amount int32, staff *domain.Staff, now time.Time) (*domain.ExpenseRecord, error)
	ListExpenses(ctx context.Context, from, to time.Time) ([]domain.ExpenseRecord, error)
}

// AuthService authenticates staff and manages their accounts.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.Staff, error)
	CreateStaff(ctx context.Context, username, password, name string, role domain.StaffRole) (*domain.Staff, error)
	GetStaff(ctx context.Context, id string) (*domain.Staff, error)
	ListStaff(ctx context.Context) ([]domain.Staff, error)
	UpdateStaff(ctx context.Context, id, name, password string, role domain.StaffRole) (*domain.Staff, error)
	DeleteStaff(ctx context.Context, id string) error
}
