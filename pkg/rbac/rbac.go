// Package rbac provides role checks layered on top of middleware.Auth.
package rbac

import (
	"net/http"

	"github.com/shashiranjanraj/backoffice/pkg/middleware"
	"github.com/shashiranjanraj/backoffice/pkg/response"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// HasRole allows only the given roles. Auth must already have run; a
// request without claims is 401, a request with another role is 403.
func HasRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := middleware.RoleFromCtx(r.Context())
			if !ok {
				response.Unauthorized(w)
				return
			}
			if !allowed[role] {
				response.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsAdmin reports whether the authenticated caller is an admin.
func IsAdmin(r *http.Request) bool {
	role, ok := middleware.RoleFromCtx(r.Context())
	return ok && role == RoleAdmin
}

// SelfOrAdmin reports whether the caller is userID or an admin.
func SelfOrAdmin(r *http.Request, userID string) bool {
	if IsAdmin(r) {
		return true
	}
	id, ok := middleware.UserIDFromCtx(r.Context())
	return ok && id == userID
}
