package domain

import "time"

// CartItem is a line in a session's cart. Name and price are snapshots taken
// when the item was added; later catalog edits do not change an open cart.
type CartItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int32           `json:"quantity"`
	Price       int32           `json:"price"`
	Category    ProductCategory `json:"category"`
}

// RentalSession is one console rental from open to close. Monetary fields are
// recomputed continuously while the session is active and frozen at close.
type RentalSession struct {
	ID           string     `json:"id"`
	ConsoleID    string     `json:"console_id"`
	MemberID     string     `json:"member_id,omitempty"`
	CustomerName string     `json:"customer_name"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	IsActive     bool       `json:"is_active"`
	Items        []CartItem `json:"items"`

	// IsMembershipBacked is decided at open from the member's packages and
	// never changes for the session's lifetime.
	IsMembershipBacked bool `json:"is_membership_backed"`

	SubtotalRental int32 `json:"subtotal_rental"`
	SubtotalItems  int32 `json:"subtotal_items"`
	DiscountAmount int32 `json:"discount_amount"`
	TotalPrice     int32 `json:"total_price"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// ItemsSubtotal sums quantity times snapshotted price over the cart.
func (s *RentalSession) ItemsSubtotal() int32 {
	var sum int32
	for _, it := range s.Items {
		sum += it.Price * it.Quantity
	}
	return sum
}

// PackageWarning classifies why a member session opened as cash-billed.
type PackageWarning string

const (
	// PackageWarningNone: session is membership-backed or no member given.
	PackageWarningNone PackageWarning = ""
	// PackageWarningExpired: a package covers the console type but is expired.
	PackageWarningExpired PackageWarning = "MEMBERSHIP_EXPIRED"
	// PackageWarningIneligible: no package covers the console type, or the
	// covering package has no minutes left.
	PackageWarningIneligible PackageWarning = "NO_VALID_PACKAGE"
)
