package handler

import (
	"net/http"
	"strconv"

	"github.com/tillerlane/CroftBot_Go/internal/farm"
	"github.com/tillerlane/CroftBot_Go/internal/logger"
)

// PlantRequest represents the request to plant a crop
type PlantRequest struct {
	Username   string `json:"username" validate:"required,max=100"`
	Platform   string `json:"platform" validate:"required,platform"`
	PlatformID string `json:"platform_id" validate:"required"`
	CropType   string `json:"crop_type" validate:"required,max=100"`
	PlotIndex  int    `json:"plot_index" validate:"gte=0"`
}

// HarvestRequest represents the request to harvest a plot
type HarvestRequest struct {
	Username   string `json:"username" validate:"required,max=100"`
	Platform   string `json:"platform" validate:"required,platform"`
	PlatformID string `json:"platform_id" validate:"required"`
	PlotIndex  int    `json:"plot_index" validate:"gte=0"`
}

// FarmHandler handles farm-related HTTP requests
type FarmHandler struct {
	farmSvc farm.Service
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(farmSvc farm.Service) *FarmHandler {
	return &FarmHandler{
		farmSvc: farmSvc,
	}
}

// Plant handles the plant endpoint
func (h *FarmHandler) Plant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
		return
	}

	log.Info("Plant request received", "username", req.Username, "platform", req.Platform, "crop", req.CropType, "plot", req.PlotIndex)

	response, err := h.farmSvc.Plant(r.Context(), req.Platform, req.PlatformID, req.Username, req.CropType, req.PlotIndex)
	if err != nil {
		log.Error("Plant failed", "error", err, "username", req.Username, "crop", req.CropType)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, response)
}

// Harvest handles the harvest endpoint
func (h *FarmHandler) Harvest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req HarvestRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Harvest"); err != nil {
		return
	}

	log.Info("Harvest request received", "username", req.Username, "platform", req.Platform, "plot", req.PlotIndex)

	response, err := h.farmSvc.Harvest(r.Context(), req.Platform, req.PlatformID, req.Username, req.PlotIndex)
	if err != nil {
		log.Error("Harvest failed", "error", err, "username", req.Username, "plot", req.PlotIndex)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Harvest successful", "username", req.Username, "crop", response.CropType)
	respondJSON(w, http.StatusOK, response)
}

// Status handles the farm status query endpoint
func (h *FarmHandler) Status(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	platform, ok := GetQueryParam(r, w, "platform")
	if !ok {
		return
	}
	platformID, ok := GetQueryParam(r, w, "platform_id")
	if !ok {
		return
	}
	username := GetOptionalQueryParam(r, "username", "")

	response, err := h.farmSvc.Status(r.Context(), platform, platformID, username)
	if err != nil {
		log.Error("Status failed", "error", err, "platform", platform)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, response)
}

// Ledger handles the ledger history query endpoint
func (h *FarmHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	platform, ok := GetQueryParam(r, w, "platform")
	if !ok {
		return
	}
	platformID, ok := GetQueryParam(r, w, "platform_id")
	if !ok {
		return
	}
	username := GetOptionalQueryParam(r, "username", "")

	limit := 0
	if raw := GetOptionalQueryParam(r, "limit", ""); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, ErrMsgInvalidLimit, http.StatusBadRequest)
			return
		}
		limit = n
	}

	entries, err := h.farmSvc.LedgerHistory(r.Context(), platform, platformID, username, limit)
	if err != nil {
		log.Error("Ledger query failed", "error", err, "platform", platform)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}
