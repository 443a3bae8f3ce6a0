package middleware

import (
	"net/http"

	"github.com/Sowmya0405/Super-mall-web-application/internal/auth"
	"github.com/Sowmya0405/Super-mall-web-application/internal/httpx"
	"github.com/Sowmya0405/Super-mall-web-application/internal/models"
)

// AdminDirectory is the slice of the store the gate needs.
type AdminDirectory interface {
	AdminByUsername(username string) (models.AdminUser, error)
}

// AdminOnly guards mutating routes: the request must carry a Basic
// credential matching a stored admin account. No header is 401; a wrong
// credential or a non-admin role is 403. Checked before the handler
// runs, so refused requests change nothing.
func AdminOnly(dir AdminDirectory) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				httpx.JSONError(w, http.StatusUnauthorized, "no_authorization_header", nil)
				return
			}
			username, password, ok := auth.ParseBasic(header)
			if !ok {
				httpx.JSONError(w, http.StatusUnauthorized, "malformed_authorization_header", nil)
				return
			}
			user, err := dir.AdminByUsername(username)
			if err != nil || !auth.CheckHash(user.Password, password) || user.Role != "admin" {
				httpx.JSONError(w, http.StatusForbidden, "unauthorized", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
