package handlers

import (
	"net/http"
	"strings"

	"virtuzen-backend/internal/gateway"
	"virtuzen-backend/internal/models"
)

const tutorPreamble = "You are Virtuzen Tutor, an expert educational AI. Provide detailed, step-by-step explanations for: "

// TutorHandler answers one-off study questions. It keeps no conversation state.
type TutorHandler struct {
	gateway *gateway.Gateway
	config  gateway.GenerationConfig
}

func NewTutorHandler(gw *gateway.Gateway, config gateway.GenerationConfig) *TutorHandler {
	return &TutorHandler{gateway: gw, config: config}
}

func (h *TutorHandler) Tutor(w http.ResponseWriter, r *http.Request) {
	var req models.TutorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorEnvelope{Error: msgInvalidBody, Details: err.Error()})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorEnvelope{Error: msgEmptyMessage})
		return
	}

	reply, err := h.gateway.Generate(r.Context(), nil, tutorPreamble+message, h.config, gateway.OneShot)
	if err != nil {
		handleGatewayError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewResponseEnvelope(reply))
}
