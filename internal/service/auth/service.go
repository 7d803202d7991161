package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/auth"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/employee"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/user"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Credentials is a configured privileged account. A Password beginning with
// "$2" is treated as a bcrypt hash.
type Credentials struct {
	Username string
	Password string
}

// Accounts are the privileged logins, checked in order before employees.
type Accounts struct {
	SuperAdmin Credentials
	Admin      Credentials
}

type AuthServiceImpl struct {
	employee.EmployeeRepository
	jwt.Service
	accounts Accounts
}

func NewAuthService(employeeRepository employee.EmployeeRepository, jwtService jwt.Service, accounts Accounts) auth.AuthService {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
		accounts:           accounts,
	}
}

// matches reports whether identifier and password match c. Unconfigured
// accounts never match.
func (c Credentials) matches(identifier, password string) bool {
	if c.Username == "" || c.Password == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(identifier), []byte(c.Username)) != 1 {
		return false
	}
	if strings.HasPrefix(c.Password, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	var principal user.Principal
	switch {
	case a.accounts.SuperAdmin.matches(req.Identifier, req.Password):
		principal = user.Principal{Role: user.RoleSuperAdmin, Username: req.Identifier}
	case a.accounts.Admin.matches(req.Identifier, req.Password):
		principal = user.Principal{Role: user.RoleAdmin, Username: req.Identifier}
	default:
		emp, err := a.EmployeeRepository.GetByEmpID(ctx, strings.TrimSpace(req.Identifier))
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return auth.LoginResponse{}, auth.ErrInvalidCredentials
			}
			return auth.LoginResponse{}, fmt.Errorf("failed to get employee by emp_id: %w", err)
		}
		principal = user.Principal{
			Role:   user.RoleEmployee,
			EmpID:  emp.EmpID,
			Name:   emp.Name,
			UserID: emp.ID,
		}
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(principal)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		OK:        true,
		Token:     token,
		ExpiresAt: expiresAt,
		User:      auth.NewUserInfo(principal),
	}, nil
}
