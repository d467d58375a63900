package usecase

import (
	"greenvault/internal/data/mirror"
	"greenvault/internal/data/repository"
	"greenvault/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Registration RegistrationService
	Approval     ApprovalService
	User         UserService
	Import       ImportService
}

func NewService(repo *repository.Repository, mirrorStore *mirror.Store, config *utils.Config, log *zap.Logger) *Service {
	approval := NewApprovalService(repo.Pending, repo.User, mirrorStore, config, log)
	return &Service{
		Registration: NewRegistrationService(repo.User, mirrorStore, approval, config, log),
		Approval:     approval,
		User:         NewUserService(repo.User, repo.Pending, mirrorStore, log),
		Import:       NewImportService(repo.User, repo.Pending, log),
	}
}
