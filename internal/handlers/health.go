package handlers

import (
	"net/http"

	"virtuzen-backend/internal/models"
)

const serviceVersion = "2.3.1"

var knownModels = []string{"gemini-pro", "gemini-1.5-flash"}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:  "online",
		Version: serviceVersion,
		Models:  knownModels,
	})
}
