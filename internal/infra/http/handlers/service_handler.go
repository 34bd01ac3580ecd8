package handlers

import (
	"net/http"

	"github.com/bizzyglass/glass-crm/internal/entity"
)

type ServiceHandler struct {
	Repo entity.ServiceRepositoryInterface
}

func NewServiceHandler(repo entity.ServiceRepositoryInterface) *ServiceHandler {
	return &ServiceHandler{Repo: repo}
}

// HandleList returns the glass service catalog the dashboard offers
// when building a quote.
func (h *ServiceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	services, err := h.Repo.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}
