package auth

import "context"

type AuthService interface {
	// Login checks the configured superadmin and admin accounts first and
	// then looks the identifier up as an employee emp_id.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
