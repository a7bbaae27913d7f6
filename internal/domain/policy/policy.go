// Package policy maps roles to the actions they may perform. Handlers and
// middleware ask Allows instead of testing roles directly, so the full
// permission surface lives in one table.
package policy

import "github.com/kipsang/dukapos-api/internal/domain/enum"

// Action names a permission-gated operation.
type Action string

const (
	ActionManageUsers     Action = "users:manage"
	ActionManageSettings  Action = "settings:manage"
	ActionManageCatalog   Action = "catalog:manage"
	ActionManageTerminals Action = "terminals:manage"
	ActionAdjustStock     Action = "stock:adjust"
	ActionViewReports     Action = "reports:view"
	ActionCreateSale      Action = "sales:create"
	ActionRecordPayment   Action = "payments:record"
	ActionViewSales       Action = "sales:view"
	ActionManageCustomers Action = "customers:manage"
)

var allRoles = []enum.Role{enum.RoleAdmin, enum.RoleManager, enum.RoleStaff}
var managerUp = []enum.Role{enum.RoleAdmin, enum.RoleManager}
var adminOnly = []enum.Role{enum.RoleAdmin}

var grants = map[Action][]enum.Role{
	ActionManageUsers:     adminOnly,
	ActionManageSettings:  adminOnly,
	ActionManageCatalog:   managerUp,
	ActionManageTerminals: managerUp,
	ActionAdjustStock:     managerUp,
	ActionViewReports:     managerUp,
	ActionCreateSale:      allRoles,
	ActionRecordPayment:   allRoles,
	ActionViewSales:       allRoles,
	ActionManageCustomers: allRoles,
}

// Allows reports whether the given role may perform the action. Unknown
// roles and unknown actions are both denied.
func Allows(role enum.Role, action Action) bool {
	for _, r := range grants[action] {
		if r == role {
			return true
		}
	}
	return false
}
