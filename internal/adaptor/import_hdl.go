package adaptor

import (
	"net/http"

	"greenvault/internal/usecase"
	"greenvault/pkg/utils"

	"go.uber.org/zap"
)

// ImportHandler accepts pipe-delimited text bodies, one record per line.
type ImportHandler struct {
	service usecase.ImportService
	log     *zap.Logger
}

func NewImportHandler(service usecase.ImportService, log *zap.Logger) *ImportHandler {
	return &ImportHandler{
		service: service,
		log:     log,
	}
}

// ImportUsers handles POST /api/admin/import/users
func (h *ImportHandler) ImportUsers(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	result, err := h.service.ImportAccounts(r.Context(), r.Body)
	if err != nil {
		handleServiceError(w, h.log, err, "import accounts")
		return
	}

	utils.ResponseSuccess(w, "Account import complete", result)
}

// ImportPending handles POST /api/admin/import/pending
func (h *ImportHandler) ImportPending(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	result, err := h.service.ImportPending(r.Context(), r.Body)
	if err != nil {
		handleServiceError(w, h.log, err, "import pending registrations")
		return
	}

	utils.ResponseSuccess(w, "Pending import complete", result)
}
