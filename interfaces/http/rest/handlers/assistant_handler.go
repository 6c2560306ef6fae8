package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"valet-backend/application/services"
	"valet-backend/pkg/common"
	pkgerrors "valet-backend/pkg/errors"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// AssistantHandler handles chat and ask requests.
type AssistantHandler struct {
	assistant *services.AssistantService
	logger    *zap.Logger
}

// NewAssistantHandler creates a new assistant handler.
func NewAssistantHandler(assistant *services.AssistantService, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{assistant: assistant, logger: logger}
}

// ChatRequest represents the request body for a chat turn.
type ChatRequest struct {
	Message string `json:"message"`
}

// AskRequest represents the request body for a one-off question.
type AskRequest struct {
	Prompt string `json:"prompt"`
}

// ReplyResponse carries the assistant's reply.
type ReplyResponse struct {
	Reply string `json:"reply"`
}

// Chat handles POST /chat.
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	h.answer(w, r, req.Message)
}

// Ask handles POST /ask.
func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	h.answer(w, r, req.Prompt)
}

func (h *AssistantHandler) answer(w http.ResponseWriter, r *http.Request, input string) {
	result, err := h.assistant.Answer(r.Context(), input)
	if err != nil {
		h.logger.Error("Chat turn failed", zap.Error(err))
		common.RespondError(w, pkgerrors.HTTPStatus(err), "Failed to produce a reply")
		return
	}

	// Upstream failures stay in the reply channel per the API contract; the
	// structured error is only logged.
	if result.Upstream != nil {
		h.logger.Warn("Upstream completion failure", zap.Error(result.Upstream))
	}

	common.RespondJSON(w, http.StatusOK, ReplyResponse{Reply: result.Reply})
}
