package handler

import (
	"net/http"

	"github.com/tillerlane/CroftBot_Go/internal/farm"
	"github.com/tillerlane/CroftBot_Go/internal/logger"
)

// GrantRequest represents an admin request to credit a resource
type GrantRequest struct {
	Username     string `json:"username" validate:"required,max=100"`
	Platform     string `json:"platform" validate:"required,platform"`
	PlatformID   string `json:"platform_id" validate:"required"`
	ResourceType string `json:"resource_type" validate:"required,max=50"`
	Amount       int64  `json:"amount" validate:"required"`
}

// AdminHandler handles admin HTTP requests
type AdminHandler struct {
	farmSvc farm.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(farmSvc farm.Service) *AdminHandler {
	return &AdminHandler{
		farmSvc: farmSvc,
	}
}

// Grant handles the admin grant endpoint
func (h *AdminHandler) Grant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req GrantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Grant"); err != nil {
		return
	}

	if req.Amount <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgAmountMustBePositive)
		return
	}
	if req.Amount > MaxGrantAmount {
		respondError(w, http.StatusBadRequest, ErrMsgAmountExceedsMax)
		return
	}

	log.Info("Grant request received", "username", req.Username, "resource", req.ResourceType, "amount", req.Amount)

	response, err := h.farmSvc.Grant(r.Context(), req.Platform, req.PlatformID, req.Username, req.ResourceType, req.Amount)
	if err != nil {
		log.Error("Grant failed", "error", err, "username", req.Username)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, response)
}
