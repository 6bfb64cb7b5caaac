package middleware

import (
	"net/http"
	"strings"

	"github.com/dukerupert/kestrel/internal/domain"
)

// TokenParser verifies a bearer token and returns the identity it carries.
// Implemented by auth.TokenIssuer.
type TokenParser interface {
	Parse(token string) (*domain.Identity, error)
}

// Authenticate attaches the identity from a valid "Authorization: Bearer"
// header to the request context. Requests without a header continue
// anonymously; a present but invalid token is rejected with 401 so clients
// notice expired sessions instead of silently losing their identity.
func Authenticate(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				respondUnauthorized(w, r)
				return
			}

			identity, err := tokens.Parse(strings.TrimSpace(token))
			if err != nil {
				GetLogger(r.Context()).Debug("bearer token rejected", "error", err)
				respondUnauthorized(w, r)
				return
			}

			ctx := domain.NewContextWithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireMember rejects anonymous requests with 401.
func RequireMember(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !domain.IsAuthenticated(r.Context()) {
			respondUnauthorized(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects anonymous requests with 401 and non-administrators
// with 403.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := domain.IdentityFromContext(r.Context())
		if identity == nil {
			respondUnauthorized(w, r)
			return
		}
		if !identity.IsAdmin() {
			respondForbidden(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
