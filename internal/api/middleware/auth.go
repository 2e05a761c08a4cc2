package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/howdythrift/server/internal/api/respond"
	"github.com/howdythrift/server/internal/auth"
)

// AuthCookieName is the session cookie the login handler sets and the auth
// gate reads.
const AuthCookieName = "auth-token"

type contextKeyAuth string

const adminClaimsKey contextKeyAuth = "adminClaims"

// AdminAuth guards mutating endpoints. The token is read from the session
// cookie first, then from the Authorization header; both transports are
// accepted. Missing or invalid tokens fail with 401; a valid token without
// the admin claim fails with 403.
func AdminAuth(manager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if manager == nil {
				respond.Error(w, r, http.StatusUnauthorized, "Authentication required", auth.ErrMissingToken)
				return
			}

			token := tokenFromRequest(r)
			if token == "" {
				respond.Error(w, r, http.StatusUnauthorized, "Authentication required", auth.ErrMissingToken)
				return
			}

			claims, err := manager.Validate(token)
			if err != nil {
				respond.Error(w, r, http.StatusUnauthorized, "Invalid token", err)
				return
			}
			if !claims.Admin {
				respond.Error(w, r, http.StatusForbidden, "Admin access required", errors.New("token lacks admin claim"))
				return
			}

			ctx := contextWithAdminClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(AuthCookieName); err == nil && strings.TrimSpace(cookie.Value) != "" {
		return cookie.Value
	}
	if header := strings.TrimSpace(r.Header.Get("Authorization")); header != "" {
		if token, err := auth.TokenFromHeader(header); err == nil {
			return token
		}
	}
	return ""
}

func contextWithAdminClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, adminClaimsKey, claims)
}

// AdminClaims returns the decoded identity the auth gate attached, or nil on
// unauthenticated requests.
func AdminClaims(r *http.Request) *auth.Claims {
	if r == nil {
		return nil
	}
	if claims, ok := r.Context().Value(adminClaimsKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}
