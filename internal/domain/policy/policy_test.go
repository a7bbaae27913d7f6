package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kipsang/dukapos-api/internal/domain/enum"
)

func TestAdminAllowedEverything(t *testing.T) {
	actions := []Action{
		ActionManageUsers, ActionManageSettings, ActionManageCatalog,
		ActionManageTerminals, ActionAdjustStock, ActionViewReports,
		ActionCreateSale, ActionRecordPayment, ActionViewSales, ActionManageCustomers,
	}
	for _, a := range actions {
		assert.True(t, Allows(enum.RoleAdmin, a), "admin should be allowed %s", a)
	}
}

func TestManagerDeniedAdminActions(t *testing.T) {
	assert.False(t, Allows(enum.RoleManager, ActionManageUsers))
	assert.False(t, Allows(enum.RoleManager, ActionManageSettings))
	assert.True(t, Allows(enum.RoleManager, ActionManageCatalog))
	assert.True(t, Allows(enum.RoleManager, ActionAdjustStock))
	assert.True(t, Allows(enum.RoleManager, ActionViewReports))
}

func TestStaffLimitedToSellingActions(t *testing.T) {
	assert.True(t, Allows(enum.RoleStaff, ActionCreateSale))
	assert.True(t, Allows(enum.RoleStaff, ActionRecordPayment))
	assert.True(t, Allows(enum.RoleStaff, ActionViewSales))
	assert.True(t, Allows(enum.RoleStaff, ActionManageCustomers))

	assert.False(t, Allows(enum.RoleStaff, ActionManageCatalog))
	assert.False(t, Allows(enum.RoleStaff, ActionAdjustStock))
	assert.False(t, Allows(enum.RoleStaff, ActionViewReports))
	assert.False(t, Allows(enum.RoleStaff, ActionManageUsers))
}

func TestUnknownRoleAndActionDenied(t *testing.T) {
	assert.False(t, Allows(enum.Role("ghost"), ActionCreateSale))
	assert.False(t, Allows(enum.RoleAdmin, Action("nonexistent")))
}
