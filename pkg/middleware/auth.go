package middleware

import (
	"net/http"

	"greenvault/internal/data/repository"
	"greenvault/pkg/utils"

	"go.uber.org/zap"
)

// BasicAuth validates the request's Basic credentials against the User Store.
// The original system is a single-operator desktop application with no
// session store, so every admin request re-authenticates by credential match.
func BasicAuth(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", `Basic realm="greenvault"`)
				utils.ResponseUnauthorized(w, "Missing credentials")
				return
			}

			account, err := userRepo.FindByCredentials(r.Context(), username, password)
			if err != nil {
				logger.Error("Failed to authenticate request",
					zap.String("username", username),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if account == nil {
				logger.Warn("Invalid credentials", zap.String("username", username))
				utils.ResponseUnauthorized(w, "Invalid username or password")
				return
			}

			ctx := utils.SetUserContext(r.Context(), account.Username, account.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin - middleware restricting a route to the Admin role
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if role != "Admin" {
				username, _ := utils.GetUsernameFromContext(r.Context())
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("username", username),
					zap.String("role", role),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
