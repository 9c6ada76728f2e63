package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"virtuzen-backend/internal/handlers"
	"virtuzen-backend/internal/middleware"
	"virtuzen-backend/internal/websocket"
)

// New builds the HTTP surface. wsHub may be nil, in which case /api/ws is not mounted.
func New(
	chatHandler *handlers.ChatHandler,
	tutorHandler *handlers.TutorHandler,
	wsHub *websocket.Hub,
	corsOrigins []string,
	maxBodyBytes int64,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CORS(corsOrigins))

		r.Get("/health", handlers.Health)

		r.Group(func(r chi.Router) {
			r.Use(chimiddleware.RequestSize(maxBodyBytes))
			r.Post("/chat", chatHandler.Chat)
			r.Post("/chat2", tutorHandler.Tutor)
		})

		// ──── Relay events ────
		if wsHub != nil {
			r.Get("/ws", wsHub.HandleWebSocket)
		}
	})

	return r
}
