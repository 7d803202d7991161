package jwt

import (
	"time"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const tokenTypeAccess = "access"

type Service interface {
	// GenerateAccessToken signs the identity of p with the configured lifetime.
	GenerateAccessToken(p user.Principal) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime time.Duration
	tokenAuth                 *jwtauth.JWTAuth
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime time.Duration) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                       time.Now,
	}
}

func (j *JWTService) GenerateAccessToken(p user.Principal) (token string, expiresAt int64, err error) {
	issuedAt := j.now()
	expiresAt = issuedAt.Add(j.accessTokenExpirationTime).Unix()

	claims := map[string]interface{}{
		"role": string(p.Role),
		"type": tokenTypeAccess,
		"iat":  issuedAt.Unix(),
		"exp":  expiresAt,
	}
	if p.Role == user.RoleEmployee {
		claims["emp_id"] = p.EmpID
		claims["name"] = p.Name
		claims["userId"] = p.UserID
	} else {
		claims["username"] = p.Username
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// PrincipalFromClaims rebuilds the caller from verified access token claims.
func PrincipalFromClaims(claims map[string]interface{}) (user.Principal, error) {
	if tokenType, _ := claims["type"].(string); tokenType != tokenTypeAccess {
		return user.Principal{}, user.ErrMissingClaims
	}

	role, _ := claims["role"].(string)
	switch user.Role(role) {
	case user.RoleSuperAdmin, user.RoleAdmin, user.RoleEmployee:
	default:
		return user.Principal{}, user.ErrUnknownRole
	}

	p := user.Principal{Role: user.Role(role)}
	p.Username, _ = claims["username"].(string)
	p.EmpID, _ = claims["emp_id"].(string)
	p.Name, _ = claims["name"].(string)
	p.UserID, _ = claims["userId"].(string)
	return p, nil
}
