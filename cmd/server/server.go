package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"slidechat/config"
	"slidechat/db"
	"slidechat/handlers"
	"slidechat/services"
	"slidechat/services/agent"
	"slidechat/services/content"
	"slidechat/services/events"
	"slidechat/services/presentation"
	"slidechat/services/router"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		log.Fatal("DB_URL environment variable is required")
	}

	if cfg.AnthropicAPIKey == "" {
		log.Fatal("ANTHROPIC_API_KEY environment variable is required")
	}

	if cfg.OpenAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable is required")
	}

	threadRepo, err := db.NewPostgresThreadRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize thread database: %v", err)
	}
	defer threadRepo.Close()

	bus := events.NewBus()
	defer bus.Close()

	store := content.NewStore()
	sessionService := services.NewSessionService(threadRepo, bus)
	presentationService := presentation.NewService(store, cfg.OpenAIAPIKey)
	turnRouter := router.New(store)

	agentService, err := agent.NewService(cfg.AnthropicAPIKey, store)
	if err != nil {
		log.Fatalf("Failed to initialize agent service: %v", err)
	}

	turnHandler := handlers.NewTurnHandler(sessionService, turnRouter, presentationService, agentService, cfg.SessionSecret)
	presentationHandler := handlers.NewPresentationHandler(turnHandler, store)
	eventsHandler := handlers.NewEventsHandler(bus, turnHandler)

	// Periodic reconciliation pass: force-refreshes stale assistant
	// messages independently of turn processing.
	go func() {
		ticker := time.NewTicker(cfg.RefreshInterval)
		defer ticker.Stop()
		for range ticker.C {
			sessionService.RefreshAll()
		}
	}()

	r := mux.NewRouter()

	r.Use(corsMiddleware)
	r.Use(jsonMiddleware)

	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("OPTIONS")

	turnHandler.RegisterRoutes(r)
	presentationHandler.RegisterRoutes(r)
	eventsHandler.RegisterRoutes(r)

	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	addr := ":" + cfg.Port
	fmt.Printf("Server starting on port %s\n", cfg.Port)

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/events/ws" {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}
