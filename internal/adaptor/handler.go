package adaptor

import (
	"errors"
	"net/http"

	"greenvault/internal/data/entity"
	"greenvault/internal/usecase"
	"greenvault/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Approval *ApprovalHandler
	Import   *ImportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Registration, service.User, log),
		User:     NewUserHandler(service.User, log),
		Approval: NewApprovalHandler(service.Approval, log),
		Import:   NewImportHandler(service.Import, log),
	}
}

// handleServiceError maps domain errors to HTTP statuses
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrDuplicateUsername):
		log.Warn(operation+" failed - duplicate username", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, entity.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
