package security

import "gamestation-backend/internal/domain"

// Action names one mutating engine operation for permission checks.
type Action string

const (
	ActionOpenSession    Action = "session.open"
	ActionCloseSession   Action = "session.close"
	ActionAddItem        Action = "session.add_item"
	ActionOverrideFee    Action = "session.override_fee"
	ActionManageMembers  Action = "members.manage"
	ActionSellPackage    Action = "members.sell_package"
	ActionRecordExpense  Action = "expenses.record"
	ActionManagePricing  Action = "pricing.manage"
	ActionManageCatalog  Action = "catalog.manage"
	ActionManageConsoles Action = "consoles.manage"
	ActionManageStaff    Action = "staff.manage"
)

// adminOnly lists actions reserved for admin operators. Everything else is
// day-to-day POS work available to any staff member.
var adminOnly = map[Action]bool{
	ActionOverrideFee:    true,
	ActionManagePricing:  true,
	ActionManageCatalog:  true,
	ActionManageConsoles: true,
	ActionManageStaff:    true,
}

// Can is the single permission check consulted before every mutating engine
// operation. Roles are a flat two-tier scheme: admin can do everything,
// staff everything not reserved for admin.
func Can(role domain.StaffRole, action Action) bool {
	switch role {
	case domain.StaffRoleAdmin:
		return true
	case domain.StaffRoleStaff:
		return !adminOnly[action]
	default:
		return false
	}
}
