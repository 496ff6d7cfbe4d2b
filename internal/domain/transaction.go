package domain

import "time"

// MembershipTransaction records one package purchase or top-up.
type MembershipTransaction struct {
	ID          string      `json:"id"`
	MemberID    string      `json:"member_id"`
	MemberName  string      `json:"member_name"`
	PackageKind PackageKind `json:"package_kind"`
	Amount      int32       `json:"amount"`
	Timestamp   time.Time   `json:"timestamp"`
	// Note carries the eligibility tier plus a "(New)" or "(Extend/Top Up)"
	// marker, e.g. "PS4/PS5 (Extend/Top Up)".
	Note string `json:"note"`
}

// ExpenseRecord is an outgoing cash entry logged by staff.
type ExpenseRecord struct {
	ID        string    `json:"id"`
	Note      string    `json:"note"`
	Amount    int32     `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
	StaffID   string    `json:"staff_id"`
	StaffName string    `json:"staff_name"`
}
