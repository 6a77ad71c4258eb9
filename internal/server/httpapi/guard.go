package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/devhub/backend/internal/server/auth"
)

const ctxKeyIdentity ctxKey = "identity"

// IdentityFromContext extracts the authenticated identity attached by
// authMiddleware. Returns nil for unauthenticated requests.
func IdentityFromContext(ctx context.Context) *auth.Identity {
	if id, ok := ctx.Value(ctxKeyIdentity).(*auth.Identity); ok {
		return id
	}
	return nil
}

// extractToken pulls the session token from the request: the session
// cookie first, then an Authorization bearer header for clients that
// cannot rely on cross-origin cookies.
func extractToken(r *http.Request) string {
	if c, err := r.Cookie(auth.SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	h := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(h, "Bearer "); ok {
		return token
	}
	return ""
}

// authMiddleware is the route guard. A missing token rejects immediately;
// a present token is verified on signature and expiry alone, and on
// success the embedded identity is attached to the request context. A
// failed validation is final for the request: the client must log in
// again.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)

		if token == "" {
			respondMessage(w, http.StatusUnauthorized, "Not authorized, no token")
			return
		}

		identity, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			s.logger.Warn(r.Context(), "token rejected", "reason", err.Error())
			respondMessage(w, http.StatusUnauthorized, "Not authorized, token failed")
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyIdentity, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole is the role guard: it rejects with 403 unless the request
// carries an identity whose role is in the permitted set. It assumes
// authMiddleware ran earlier in the chain; a missing identity is treated
// as an unknown role, never as a pass.
func requireRole(roles ...string) func(http.Handler) http.Handler {
	permitted := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		permitted[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := IdentityFromContext(r.Context())

			role := "unknown"
			if identity != nil {
				role = identity.Role
			}

			if _, ok := permitted[role]; !ok {
				respondMessage(w, http.StatusForbidden,
					fmt.Sprintf("User role %s is not authorized to access this route", role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
