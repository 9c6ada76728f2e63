package handlers

import (
	"errors"
	"log"
	"net/http"

	"virtuzen-backend/internal/gateway"
	"virtuzen-backend/internal/middleware"
	"virtuzen-backend/internal/models"
)

// normalizeGatewayError flattens every model failure into the same public envelope. The
// cause is kept in details for diagnostics.
func normalizeGatewayError(err error) (models.ErrorEnvelope, int) {
	return models.ErrorEnvelope{
		Error:   msgServiceUnavailable,
		Details: err.Error(),
	}, http.StatusServiceUnavailable
}

func handleGatewayError(w http.ResponseWriter, r *http.Request, err error) {
	kind, mode, model := gateway.KindUpstream, "", ""
	var gerr *gateway.Error
	if errors.As(err, &gerr) {
		kind, mode, model = gerr.Kind, gerr.Mode.String(), gerr.Model
	}
	log.Printf("Gemini API error: request=%s kind=%s mode=%s model=%s: %v",
		middleware.GetRequestID(r.Context()), kind, mode, model, err)

	body, status := normalizeGatewayError(err)
	writeJSON(w, status, body)
}
