package wire

import (
	"greenvault/internal/adaptor"
	"greenvault/internal/data/repository"
	"greenvault/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireApproval configures the admin review queue routes
func wireApproval(
	r chi.Router,
	approvalHandler *adaptor.ApprovalHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(
		middleware.BasicAuth(repo.User, log),
		middleware.Admin(log),
	).Route("/api/admin/approvals", func(r chi.Router) {
		r.Get("/", approvalHandler.ListPending)
		r.Post("/{username}/approve", approvalHandler.Approve)
		r.Post("/{username}/reject", approvalHandler.Reject)
		r.Delete("/{username}", approvalHandler.Delete)
	})
}
