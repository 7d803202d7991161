package user

type Permission string

const (
	// Reports
	PermissionReportViewOwn Permission = "report.view_own"
	PermissionReportViewAll Permission = "report.view_all"
	PermissionReportExport  Permission = "report.export"

	// Activity logs
	PermissionActivityManage Permission = "activity.manage"

	// Employee management
	PermissionEmployeeManage Permission = "employee.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		// Superadmin has all permissions
		PermissionReportViewOwn,
		PermissionReportViewAll,
		PermissionReportExport,
		PermissionActivityManage,
		PermissionEmployeeManage,
	},
	RoleAdmin: {
		PermissionReportViewOwn,
		PermissionReportViewAll,
		PermissionReportExport,
		PermissionActivityManage,
	},
	RoleEmployee: {
		PermissionReportViewOwn,
		PermissionReportExport,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
