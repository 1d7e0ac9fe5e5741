package middleware

import (
	"context"
	"net/http"
	"strings"

	"docman/internal/authutil"
	"docman/internal/transport/http/api"
)

type claimsKey struct{}

// loginPath is the one route reachable without a token. Matched exactly so
// no other route can smuggle the suffix.
const loginPath = "/api/v1/auth/login"

// Auth validates the Bearer token on every request except the login
// endpoint and puts the claims on the context.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == loginPath {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
				return
			}

			claims, err := authutil.ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token", GetRequestID(r.Context()))
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (*authutil.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*authutil.Claims)
	return claims, ok
}
