package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"virtuzen-backend/internal/config"
	"virtuzen-backend/internal/events"
	"virtuzen-backend/internal/gateway"
	"virtuzen-backend/internal/handlers"
	"virtuzen-backend/internal/router"
	"virtuzen-backend/internal/websocket"
)

func main() {
	log.SetPrefix("[VirtuzenAI] ")
	log.Println("🚀 Starting Virtuzen Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")
	if cfg.Debug {
		log.Println("  Debug mode enabled")
	}

	// ──── Step 2: Initialize Relay Events (optional Redis) ────
	var (
		publisher events.Publisher = events.NopPublisher{}
		wsHub     *websocket.Hub
	)
	if cfg.RedisURL != "" {
		redisClient, err := events.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer redisClient.Close()

		publisher = events.NewRedisPublisher(redisClient, cfg.EventsChannel)
		wsHub = websocket.NewHub(redisClient, cfg.EventsChannel)
		log.Printf("✓ Redis connected, publishing relay events on %q", cfg.EventsChannel)
	} else {
		log.Println("✓ Redis not configured, relay events disabled")
	}

	// ──── Step 3: Initialize Gemini Client ────
	backend, err := gateway.NewGeminiBackend(context.Background(), cfg.GoogleAPIKey)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer backend.Close()
	gw := gateway.New(backend, publisher, cfg.Debug)
	log.Printf("✓ Gemini client initialized (chat: %s, tutor: %s)", cfg.ChatModel, cfg.TutorModel)

	// ──── Step 4: Conversation Session ────
	// One session backs /api/chat for the whole process lifetime.
	session := gateway.NewSession()

	// ──── Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(gw, session, gateway.ChatConfig(cfg.ChatModel))
	tutorHandler := handlers.NewTutorHandler(gw, gateway.TutorConfig(cfg.TutorModel))

	// ──── Step 5: Start HTTP Server ────
	r := router.New(chatHandler, tutorHandler, wsHub, cfg.CORSOrigins, cfg.MaxBodyBytes)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		if wsHub != nil {
			wsHub.Close()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Virtuzen Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)
	if wsHub != nil {
		log.Printf("  WS:  ws://localhost:%s/api/ws", cfg.Port)
	}

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
