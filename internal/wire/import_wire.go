package wire

import (
	"greenvault/internal/adaptor"
	"greenvault/internal/data/repository"
	"greenvault/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireImport configures the bulk import routes
func wireImport(
	r chi.Router,
	importHandler *adaptor.ImportHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(
		middleware.BasicAuth(repo.User, log),
		middleware.Admin(log),
	).Route("/api/admin/import", func(r chi.Router) {
		r.Post("/users", importHandler.ImportUsers)
		r.Post("/pending", importHandler.ImportPending)
	})
}
