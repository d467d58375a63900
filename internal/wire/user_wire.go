package wire

import (
	"greenvault/internal/adaptor"
	"greenvault/internal/data/repository"
	"greenvault/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures admin-only account management routes
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(
		middleware.BasicAuth(repo.User, log),
		middleware.Admin(log),
	).Route("/api/admin/users", func(r chi.Router) {
		r.Get("/", userHandler.GetAllUsers)
		r.Get("/{username}", userHandler.GetUser)
		r.Delete("/{username}", userHandler.DeleteUser)
	})
}
