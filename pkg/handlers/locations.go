package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/garagekeep/garagekeep/pkg/services"
)

// LocationRequest is the request body for creating or updating a location.
type LocationRequest struct {
	Name string `json:"name"`
}

// LocationsHandler handles location-related HTTP requests.
type LocationsHandler struct {
	locationService services.LocationService
	logger          *zap.Logger
}

// NewLocationsHandler creates a new locations handler.
func NewLocationsHandler(locationService services.LocationService, logger *zap.Logger) *LocationsHandler {
	return &LocationsHandler{
		locationService: locationService,
		logger:          logger,
	}
}

// RegisterRoutes registers the locations handler's routes on the given mux.
func (h *LocationsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /locations", h.List)
	mux.HandleFunc("POST /locations", h.Create)
	mux.HandleFunc("GET /locations/{id}", h.Get)
	mux.HandleFunc("PUT /locations/{id}", h.Update)
	mux.HandleFunc("DELETE /locations/{id}", h.Delete)
}

// List handles GET /locations.
func (h *LocationsHandler) List(w http.ResponseWriter, r *http.Request) {
	locations, err := h.locationService.List(r.Context())
	if err != nil {
		respondError(w, h.logger, err, "list locations")
		return
	}
	if err := WriteJSON(w, http.StatusOK, locations); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Get handles GET /locations/{id}.
func (h *LocationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r, h.logger)
	if !ok {
		return
	}

	location, err := h.locationService.Get(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err, "get location")
		return
	}
	if err := WriteJSON(w, http.StatusOK, location); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Create handles POST /locations.
func (h *LocationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	location, err := h.locationService.Create(r.Context(), req.Name)
	if err != nil {
		respondError(w, h.logger, err, "create location")
		return
	}
	if err := WriteJSON(w, http.StatusCreated, location); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Update handles PUT /locations/{id}.
func (h *LocationsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r, h.logger)
	if !ok {
		return
	}

	var req LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	location, err := h.locationService.Update(r.Context(), id, req.Name)
	if err != nil {
		respondError(w, h.logger, err, "update location")
		return
	}
	if err := WriteJSON(w, http.StatusOK, location); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Delete handles DELETE /locations/{id}.
func (h *LocationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r, h.logger)
	if !ok {
		return
	}

	if err := h.locationService.Delete(r.Context(), id); err != nil {
		respondError(w, h.logger, err, "delete location")
		return
	}
	w.WriteHeader(http.StatusOK)
}
