package wire

import (
	"greenvault/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Public routes: anyone can register or log in
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)
}
