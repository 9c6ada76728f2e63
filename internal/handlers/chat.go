package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"virtuzen-backend/internal/gateway"
	"virtuzen-backend/internal/models"
)

const (
	ChatSystemPrompt = "You are Virtuzen AI, an advanced AI assistant. Respond in markdown when appropriate."
	// chatModelLabel is reported in the echoed context; it is not the model being called.
	chatModelLabel = "gemini-2.0-flash"
)

type ChatHandler struct {
	gateway *gateway.Gateway
	session *gateway.Session
	config  gateway.GenerationConfig
}

func NewChatHandler(gw *gateway.Gateway, session *gateway.Session, config gateway.GenerationConfig) *ChatHandler {
	return &ChatHandler{
		gateway: gw,
		session: session,
		config:  config,
	}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorEnvelope{Error: msgInvalidBody, Details: err.Error()})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorEnvelope{Error: msgEmptyMessage})
		return
	}

	history := req.Context
	if history == nil {
		history = []json.RawMessage{}
	}
	chatCtx := &models.ChatContext{
		SystemPrompt: ChatSystemPrompt,
		UserHistory:  history,
		CurrentModel: chatModelLabel,
	}

	prompt := chatCtx.SystemPrompt + "\n\nUser: " + message
	reply, err := h.gateway.Generate(r.Context(), h.session, prompt, h.config, gateway.Interactive)
	if err != nil {
		handleGatewayError(w, r, err)
		return
	}

	resp := models.NewResponseEnvelope(reply)
	resp.Context = chatCtx
	writeJSON(w, http.StatusOK, resp)
}
