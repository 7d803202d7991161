package user

type Role string

const (
	RoleSuperAdmin Role = "superadmin" // Configured account, full access
	RoleAdmin      Role = "admin"      // Configured account, manages activity logs
	RoleEmployee   Role = "employee"   // Logs in by emp_id, sees own report
)

// Principal is the authenticated caller, read from verified token claims.
type Principal struct {
	Role     Role
	Username string
	EmpID    string
	Name     string
	UserID   string
}

func (p Principal) IsEmployee() bool {
	return p.Role == RoleEmployee
}
