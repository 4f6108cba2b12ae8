// internal/handlers/projects.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/meta4-erp/internal/core/ports"
)

// ProjectHandler serves production projects and workstations
type ProjectHandler struct {
	store  ports.ProjectStore
	logger *slog.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(store ports.ProjectStore, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		store:  store,
		logger: logger.With(slog.String("handler", "projects")),
	}
}

// ListProjects handles GET /api/v1/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.store.ListProjects(r.Context())
	if err != nil {
		respondDomainError(r.Context(), w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, projects)
}

// GetProject handles GET /api/v1/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.store.GetProject(r.Context(), r.PathValue("id"))
	if err != nil {
		respondDomainError(r.Context(), w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, project)
}

// ListWorkstations handles GET /api/v1/workstations
func (h *ProjectHandler) ListWorkstations(w http.ResponseWriter, r *http.Request) {
	workstations, err := h.store.ListWorkstations(r.Context())
	if err != nil {
		respondDomainError(r.Context(), w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, workstations)
}

// GetWorkstation handles GET /api/v1/workstations/{id}
func (h *ProjectHandler) GetWorkstation(w http.ResponseWriter, r *http.Request) {
	workstation, err := h.store.GetWorkstation(r.Context(), r.PathValue("id"))
	if err != nil {
		respondDomainError(r.Context(), w, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, workstation)
}
