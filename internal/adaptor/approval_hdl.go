package adaptor

import (
	"net/http"

	"greenvault/internal/usecase"
	"greenvault/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ApprovalHandler struct {
	service usecase.ApprovalService
	log     *zap.Logger
}

func NewApprovalHandler(service usecase.ApprovalService, log *zap.Logger) *ApprovalHandler {
	return &ApprovalHandler{
		service: service,
		log:     log,
	}
}

// ListPending handles GET /api/admin/approvals?role=
func (h *ApprovalHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	roleFilter := r.URL.Query().Get("role")

	pendings, err := h.service.ListPending(r.Context(), roleFilter)
	if err != nil {
		handleServiceError(w, h.log, err, "list pending registrations")
		return
	}

	utils.ResponseSuccess(w, "Pending registrations retrieved", pendings)
}

// Approve handles POST /api/admin/approvals/{username}/approve
func (h *ApprovalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		utils.ResponseBadRequest(w, "Username is required", nil)
		return
	}

	account, err := h.service.Approve(r.Context(), username)
	if err != nil {
		handleServiceError(w, h.log, err, "approve registration")
		return
	}

	utils.ResponseSuccess(w, "Registration approved", account)
}

// Reject handles POST /api/admin/approvals/{username}/reject
func (h *ApprovalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		utils.ResponseBadRequest(w, "Username is required", nil)
		return
	}

	if err := h.service.Reject(r.Context(), username); err != nil {
		handleServiceError(w, h.log, err, "reject registration")
		return
	}

	utils.ResponseSuccess(w, "Registration rejected", nil)
}

// Delete handles DELETE /api/admin/approvals/{username}
func (h *ApprovalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		utils.ResponseBadRequest(w, "Username is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), username); err != nil {
		handleServiceError(w, h.log, err, "delete pending registration")
		return
	}

	utils.ResponseSuccess(w, "Pending registration deleted", nil)
}
