package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/garagekeep/garagekeep/pkg/services"
)

// ProjectRequest is the request body for creating or updating a project.
type ProjectRequest struct {
	Name  string              `json:"name"`
	Price decimal.NullDecimal `json:"price"`
}

// ProjectsHandler handles project-related HTTP requests.
type ProjectsHandler struct {
	projectService services.ProjectService
	logger         *zap.Logger
}

// NewProjectsHandler creates a new projects handler.
func NewProjectsHandler(projectService services.ProjectService, logger *zap.Logger) *ProjectsHandler {
	return &ProjectsHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// RegisterRoutes registers the projects handler's routes on the given mux.
func (h *ProjectsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /projects", h.List)
	mux.HandleFunc("POST /projects", h.Create)
	mux.HandleFunc("GET /projects/{id}", h.Get)
	mux.HandleFunc("PUT /projects/{id}", h.Update)
	mux.HandleFunc("DELETE /projects/{id}", h.Delete)
}

// List handles GET /projects.
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		respondError(w, h.logger, err, "list projects")
		return
	}
	if err := WriteJSON(w, http.StatusOK, projects); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Get handles GET /projects/{id}.
func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r, h.logger)
	if !ok {
		return
	}

	project, err := h.projectService.Get(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err, "get project")
		return
	}
	if err := WriteJSON(w, http.StatusOK, project); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Create handles POST /projects. CreationDate is set server-side.
func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	project, err := h.projectService.Create(r.Context(), req.Name, req.Price)
	if err != nil {
		respondError(w, h.logger, err, "create project")
		return
	}
	if err := WriteJSON(w, http.StatusCreated, project); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Update handles PUT /projects/{id}.
func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r, h.logger)
	if !ok {
		return
	}

	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	project, err := h.projectService.Update(r.Context(), id, req.Name, req.Price)
	if err != nil {
		respondError(w, h.logger, err, "update project")
		return
	}
	if err := WriteJSON(w, http.StatusOK, project); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Delete handles DELETE /projects/{id}.
func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r, h.logger)
	if !ok {
		return
	}

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		respondError(w, h.logger, err, "delete project")
		return
	}
	w.WriteHeader(http.StatusOK)
}
