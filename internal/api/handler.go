package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	app_errors "device-compare/internal/errors"
	"device-compare/internal/interfaces"
	"device-compare/internal/model"
	"device-compare/internal/validation"
)

// maxBodyBytes caps request bodies; a chat request carries the whole comparison and history.
const maxBodyBytes = 1 << 20

// GeminiHandler dispatches the single comparison/chat endpoint.
type GeminiHandler struct {
	service interfaces.ComparisonService
}

func NewGeminiHandler(svc interfaces.ComparisonService) *GeminiHandler {
	return &GeminiHandler{service: svc}
}

// HandleGemini godoc
// @Summary      Compare devices or ask a follow-up
// @Description  With action "compare", returns a structured comparison of device1Name and device2Name.
// @Description  With action "chat", answers the last user message of chatHistory, grounded in chatContext.
// @Tags         Gemini
// @Accept       json
// @Produce      json
// @Param        request  body      ActionRequest  true  "Action and its parameters"
// @Success      200      {object}  model.ComparisonResult  "For action compare"
// @Success      200      {object}  model.ChatResponse      "For action chat"
// @Failure      400      {object}  ErrorResponse
// @Failure      405      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /api/gemini [post]
func (h *GeminiHandler) HandleGemini(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r)
		return
	}

	var req ActionRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrInputInvalid))
		return
	}

	switch req.Action {
	case ActionCompare:
		h.compare(w, r, &req)
	case ActionChat:
		h.chat(w, r, &req)
	default:
		respondWithError(w, fmt.Errorf("%w: invalid action specified: %q", app_errors.ErrInputInvalid, req.Action))
	}
}

func (h *GeminiHandler) compare(w http.ResponseWriter, r *http.Request, req *ActionRequest) {
	payload := compareRequest{
		Device1Name: strings.TrimSpace(req.Device1Name),
		Device2Name: strings.TrimSpace(req.Device2Name),
	}
	if err := validation.Struct(&payload, app_errors.ErrInputInvalid); err != nil {
		respondWithError(w, err)
		return
	}

	result, err := h.service.RequestComparison(r.Context(), payload.Device1Name, payload.Device2Name)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

func (h *GeminiHandler) chat(w http.ResponseWriter, r *http.Request, req *ActionRequest) {
	payload := chatRequest{ChatContext: req.ChatContext, ChatHistory: req.ChatHistory}
	if err := validation.Struct(&payload, app_errors.ErrInputInvalid); err != nil {
		respondWithError(w, err)
		return
	}

	answer, err := h.service.SendFollowUp(r.Context(), payload.ChatContext, payload.ChatHistory)
	if err != nil {
		if errors.Is(err, app_errors.ErrInvalidChatState) {
			slog.Info("Rejected chat request", "history_len", len(payload.ChatHistory), "error", err)
		}
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, model.ChatResponse{Response: answer})
}
