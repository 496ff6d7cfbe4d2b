package security

import (
	"testing"

	"gamestation-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCan(t *testing.T) {
	tests := []struct {
		role     domain.StaffRole
		action   Action
		expected bool
	}{
		{domain.StaffRoleAdmin, ActionManagePricing, true},
		{domain.StaffRoleAdmin, ActionOpenSession, true},
		{domain.StaffRoleAdmin, ActionManageStaff, true},
		{domain.StaffRoleStaff, ActionOpenSession, true},
		{domain.StaffRoleStaff, ActionCloseSession, true},
		{domain.StaffRoleStaff, ActionRecordExpense, true},
		{domain.StaffRoleStaff, ActionOverrideFee, false},
		{domain.StaffRoleAdmin, ActionOverrideFee, true},
		{domain.StaffRoleStaff, ActionManagePricing, false},
		{domain.StaffRoleStaff, ActionManageCatalog, false},
		{domain.StaffRoleStaff, ActionManageStaff, false},
		{domain.StaffRole("intern"), ActionOpenSession, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+" "+string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.expected, Can(tt.role, tt.action))
		})
	}
}
