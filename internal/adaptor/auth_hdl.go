package adaptor

import (
	"encoding/json"
	"net/http"

	"greenvault/internal/dto/request"
	"greenvault/internal/usecase"
	"greenvault/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	registration usecase.RegistrationService
	users        usecase.UserService
	log          *zap.Logger
}

func NewAuthHandler(registration usecase.RegistrationService, users usecase.UserService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		registration: registration,
		users:        users,
		log:          log,
	}
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.registration.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register")
		return
	}

	if resp.Status == "pending_approval" {
		utils.ResponseCreated(w, "Registration submitted for approval", resp)
		return
	}
	utils.ResponseCreated(w, "Registration successful", resp)
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.users.Authenticate(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}
