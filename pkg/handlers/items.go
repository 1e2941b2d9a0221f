package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/garagekeep/garagekeep/pkg/models"
	"github.com/garagekeep/garagekeep/pkg/services"
)

// ItemRequest is the request body for creating or updating an item.
// On create, sku may be omitted to have one allocated from the project's
// counter; inDate is always set server-side and ignored if sent.
type ItemRequest struct {
	Name               string              `json:"name"`
	ManufacturerNumber *string             `json:"manufacturerNumber"`
	SKU                *string             `json:"sku"`
	InPrice            decimal.NullDecimal `json:"inPrice"`
	OutPrice           decimal.NullDecimal `json:"outPrice"`
	OutDate            *time.Time          `json:"outDate"`
	Status             models.ItemStatus   `json:"status"`
	Description        *string             `json:"description"`
	LocationID         int64               `json:"locationId"`
	ProjectID          int64               `json:"projectId"`
}

func (req *ItemRequest) toInput() services.ItemInput {
	return services.ItemInput{
		Name:               req.Name,
		ManufacturerNumber: req.ManufacturerNumber,
		SKU:                req.SKU,
		InPrice:            req.InPrice,
		OutPrice:           req.OutPrice,
		OutDate:            req.OutDate,
		Status:             req.Status,
		Description:        req.Description,
		LocationID:         req.LocationID,
		ProjectID:          req.ProjectID,
	}
}

// ItemsHandler handles item-related HTTP requests.
type ItemsHandler struct {
	itemService services.ItemService
	logger      *zap.Logger
}

// NewItemsHandler creates a new items handler.
func NewItemsHandler(itemService services.ItemService, logger *zap.Logger) *ItemsHandler {
	return &ItemsHandler{
		itemService: itemService,
		logger:      logger,
	}
}

// RegisterRoutes registers the items handler's routes on the given mux.
func (h *ItemsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /items", h.List)
	mux.HandleFunc("POST /items", h.Create)
	mux.HandleFunc("GET /items/{id}", h.Get)
	mux.HandleFunc("PUT /items/{id}", h.Update)
	mux.HandleFunc("DELETE /items/{id}", h.Delete)
}

// List handles GET /items?projectId=N. Items come back most recent first,
// with their location and project resolved.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	var projectID *int64
	if raw := r.URL.Query().Get("projectId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			if err := ErrorResponse(w, http.StatusBadRequest, "invalid_project_id", "Invalid projectId filter"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		projectID = &id
	}

	items, err := h.itemService.List(r.Context(), projectID)
	if err != nil {
		respondError(w, h.logger, err, "list items")
		return
	}
	if err := WriteJSON(w, http.StatusOK, items); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Get handles GET /items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r, h.logger)
	if !ok {
		return
	}

	item, err := h.itemService.Get(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err, "get item")
		return
	}
	if err := WriteJSON(w, http.StatusOK, item); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Create handles POST /items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	item, err := h.itemService.Create(r.Context(), req.toInput())
	if err != nil {
		respondError(w, h.logger, err, "create item")
		return
	}
	if err := WriteJSON(w, http.StatusCreated, item); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Update handles PUT /items/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r, h.logger)
	if !ok {
		return
	}

	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	item, err := h.itemService.Update(r.Context(), id, req.toInput())
	if err != nil {
		respondError(w, h.logger, err, "update item")
		return
	}
	if err := WriteJSON(w, http.StatusOK, item); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Delete handles DELETE /items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r, h.logger)
	if !ok {
		return
	}

	if err := h.itemService.Delete(r.Context(), id); err != nil {
		respondError(w, h.logger, err, "delete item")
		return
	}
	w.WriteHeader(http.StatusOK)
}
