package adaptor

import (
	"net/http"

	"greenvault/internal/usecase"
	"greenvault/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// GetAllUsers handles GET /api/admin/users
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.ListAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list accounts")
		return
	}

	utils.ResponseSuccess(w, "Accounts retrieved", accounts)
}

// GetUser handles GET /api/admin/users/{username}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		utils.ResponseBadRequest(w, "Username is required", nil)
		return
	}

	account, err := h.service.GetInfo(r.Context(), username)
	if err != nil {
		handleServiceError(w, h.log, err, "get account")
		return
	}

	utils.ResponseSuccess(w, "Account retrieved", account)
}

// DeleteUser handles DELETE /api/admin/users/{username}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		utils.ResponseBadRequest(w, "Username is required", nil)
		return
	}

	if err := h.service.DeleteAccount(r.Context(), username); err != nil {
		handleServiceError(w, h.log, err, "delete account")
		return
	}

	utils.ResponseSuccess(w, "Account deleted", nil)
}
