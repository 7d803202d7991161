package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/auth"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/user"
	"github.com/fasihgds-afk/activity-detector-backend/internal/handler/http/response"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type principalKey struct{}

// WithPrincipal stores the authenticated caller in ctx.
func WithPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the caller stored by AuthRequired.
func PrincipalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(user.Principal)
	return p, ok
}

// Verifier reads the token from the Authorization: Bearer header only.
func Verifier(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return jwtauth.Verify(ja, jwtauth.TokenFromHeader)
}

// AuthRequired rejects requests without a verified access token and puts
// the caller's Principal into the request context.
func AuthRequired(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())

		if errors.Is(err, jwtauth.ErrNoTokenFound) {
			response.HandleError(w, auth.ErrMissingToken)
			return
		}
		if err != nil || token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		claims, err := token.AsMap(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		principal, err := jwt.PrincipalFromClaims(claims)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	}
	return http.HandlerFunc(hfn)
}
