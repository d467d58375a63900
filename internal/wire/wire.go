package wire

import (
	"net/http"

	"greenvault/internal/adaptor"
	"greenvault/internal/data/mirror"
	"greenvault/internal/data/repository"
	"greenvault/internal/usecase"
	"greenvault/pkg/middleware"
	"greenvault/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, mirrorStore *mirror.Store, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, mirrorStore, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, repo, logger)
	wireApproval(r, handler.Approval, repo, logger)
	wireImport(r, handler.Import, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
