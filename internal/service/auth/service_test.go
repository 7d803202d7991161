package auth

import (
	"context"
	"testing"
	"time"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/auth"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/employee"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/user"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/jwt"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/validator"
	"github.com/fasihgds-afk/activity-detector-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

func newAuthTestService(t *testing.T, accounts Accounts) (auth.AuthService, jwt.Service) {
	t.Helper()
	repo := memory.NewEmployeeRepository(memory.NewStore())
	_, err := repo.Create(context.Background(), employee.Employee{EmpID: "GDS-9", Name: "Hina"})
	require.NoError(t, err)

	jwtService := jwt.NewJWTService(testSecret, time.Hour)
	return NewAuthService(repo, jwtService, accounts), jwtService
}

func principalOf(t *testing.T, svc jwt.Service, token string) user.Principal {
	t.Helper()
	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	p, err := jwt.PrincipalFromClaims(claims)
	require.NoError(t, err)
	return p
}

func TestAuthService_Login_SuperAdmin(t *testing.T) {
	svc, jwtService := newAuthTestService(t, Accounts{
		SuperAdmin: Credentials{Username: "root", Password: "s3cret"},
		Admin:      Credentials{Username: "ops", Password: "0ps"},
	})

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Identifier: "root", Password: "s3cret"})
	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, user.RoleSuperAdmin, resp.User.Role)
	assert.Equal(t, "root", resp.User.Username)

	p := principalOf(t, jwtService, resp.Token)
	assert.Equal(t, user.RoleSuperAdmin, p.Role)
	assert.Equal(t, "root", p.Username)
}

func TestAuthService_Login_AdminWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("0ps"), bcrypt.MinCost)
	require.NoError(t, err)

	svc, _ := newAuthTestService(t, Accounts{Admin: Credentials{Username: "ops", Password: string(hash)}})

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Identifier: "ops", Password: "0ps"})
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, resp.User.Role)
}

func TestAuthService_Login_WrongAdminPasswordFallsThroughToEmployees(t *testing.T) {
	svc, _ := newAuthTestService(t, Accounts{Admin: Credentials{Username: "ops", Password: "0ps"}})

	_, err := svc.Login(context.Background(), auth.LoginRequest{Identifier: "ops", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_Employee(t *testing.T) {
	svc, jwtService := newAuthTestService(t, Accounts{})

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Identifier: "  GDS-9 "})
	require.NoError(t, err)
	assert.Equal(t, user.RoleEmployee, resp.User.Role)
	assert.Equal(t, "GDS-9", resp.User.EmpID)
	assert.Equal(t, "Hina", resp.User.Name)
	assert.NotEmpty(t, resp.User.UserID)

	p := principalOf(t, jwtService, resp.Token)
	assert.Equal(t, "GDS-9", p.EmpID)
	assert.Equal(t, resp.User.UserID, p.UserID)
}

func TestAuthService_Login_EmptyAccountsNeverMatch(t *testing.T) {
	svc, _ := newAuthTestService(t, Accounts{})

	_, err := svc.Login(context.Background(), auth.LoginRequest{Identifier: "nobody", Password: ""})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_Validation(t *testing.T) {
	svc, _ := newAuthTestService(t, Accounts{})

	_, err := svc.Login(context.Background(), auth.LoginRequest{Identifier: "   "})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
