package middleware

import (
	"net/http"
	"strings"

	"acadrec/internal/auth"
)

// AuthContext extracts an optional Bearer token and, when it verifies,
// attaches the principal to the request context. A missing or invalid
// token yields an anonymous context, never a rejected request; the
// resolvers that need a principal enforce it themselves.
func AuthContext(jwtService *auth.JWTService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				next.ServeHTTP(w, r)
				return
			}
			principal, err := jwtService.VerifyToken(strings.TrimSpace(parts[1]))
			if err != nil {
				// Verification failure is swallowed into anonymous.
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
		})
	}
}
