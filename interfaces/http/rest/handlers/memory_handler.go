package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"valet-backend/application/services"
	"valet-backend/domain/memory"
	"valet-backend/pkg/common"
	pkgerrors "valet-backend/pkg/errors"
	"valet-backend/pkg/utils"
)

// MemoryHandler handles remember, forget and memory read requests.
type MemoryHandler struct {
	memory *services.MemoryService
	logger *zap.Logger
}

// NewMemoryHandler creates a new memory handler.
func NewMemoryHandler(memory *services.MemoryService, logger *zap.Logger) *MemoryHandler {
	return &MemoryHandler{memory: memory, logger: logger}
}

// RememberRequest represents the request body for storing a memory.
// Content is deliberately not tagged required: empty content is acknowledged
// with a nothing_to_remember status, not rejected.
type RememberRequest struct {
	Content  string `json:"content"`
	Category string `json:"category,omitempty" validate:"omitempty,max=64"`
	Key      string `json:"key,omitempty" validate:"omitempty,max=128"`
	Score    *int   `json:"score,omitempty" validate:"omitempty,min=0"`
}

// ForgetRequest represents the request body for removing a memory.
type ForgetRequest struct {
	Category string `json:"category" validate:"required,max=64"`
	Key      string `json:"key,omitempty" validate:"omitempty,max=128"`
	Index    *int   `json:"index,omitempty"`
}

// Remember handles POST /remember.
func (h *MemoryHandler) Remember(w http.ResponseWriter, r *http.Request) {
	var req RememberRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	score := memory.DefaultScore
	if req.Score != nil {
		score = *req.Score
	}

	result, err := h.memory.Remember(r.Context(), req.Category, req.Key, req.Content, score)
	if err != nil {
		h.logger.Error("Remember failed", zap.Error(err))
		common.RespondError(w, pkgerrors.HTTPStatus(err), "Failed to store memory")
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// Forget handles POST /forget.
func (h *MemoryHandler) Forget(w http.ResponseWriter, r *http.Request) {
	var req ForgetRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.memory.Forget(r.Context(), req.Category, req.Key, req.Index)
	if err != nil {
		h.logger.Error("Forget failed", zap.Error(err))
		common.RespondError(w, pkgerrors.HTTPStatus(err), "Failed to forget memory")
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// GetMemory handles GET /memory.
func (h *MemoryHandler) GetMemory(w http.ResponseWriter, r *http.Request) {
	doc, err := h.memory.Snapshot(r.Context())
	if err != nil {
		h.logger.Error("Memory snapshot failed", zap.Error(err))
		common.RespondError(w, pkgerrors.HTTPStatus(err), "Failed to read memory")
		return
	}

	common.RespondJSON(w, http.StatusOK, doc)
}

// GetStats handles GET /memory/stats.
func (h *MemoryHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.memory.Stats(r.Context())
	if err != nil {
		h.logger.Error("Memory stats failed", zap.Error(err))
		common.RespondError(w, pkgerrors.HTTPStatus(err), "Failed to read memory stats")
		return
	}

	common.RespondJSON(w, http.StatusOK, stats)
}
