package auth

import (
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/user"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/validator"
)

// LoginRequest identifies a privileged account by username or an employee
// by emp_id. Employees log in without a password.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Identifier) {
		errs = append(errs, validator.ValidationError{
			Field:   "identifier",
			Message: "identifier is required",
		})
	}
	if len(r.Identifier) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "identifier",
			Message: "identifier must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UserInfo mirrors the identity claims carried by the token.
type UserInfo struct {
	Role     user.Role `json:"role"`
	Username string    `json:"username,omitempty"`
	EmpID    string    `json:"emp_id,omitempty"`
	Name     string    `json:"name,omitempty"`
	UserID   string    `json:"userId,omitempty"`
}

func NewUserInfo(p user.Principal) UserInfo {
	return UserInfo{
		Role:     p.Role,
		Username: p.Username,
		EmpID:    p.EmpID,
		Name:     p.Name,
		UserID:   p.UserID,
	}
}

type LoginResponse struct {
	OK        bool     `json:"ok"`
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expires_at"`
	User      UserInfo `json:"user"`
}
