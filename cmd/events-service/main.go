package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/amokewustl/belong-chivent/internal/auth"
	"github.com/amokewustl/belong-chivent/internal/cache"
	"github.com/amokewustl/belong-chivent/internal/config"
	"github.com/amokewustl/belong-chivent/internal/events"
	"github.com/amokewustl/belong-chivent/internal/handlers"
	"github.com/amokewustl/belong-chivent/internal/metrics"
	"github.com/amokewustl/belong-chivent/internal/providers/ticketmaster"
	"github.com/amokewustl/belong-chivent/internal/store"
)

func main() {
	log.Println("Starting belong-chivent events service...")

	cfg := config.Load()

	// Connect to Postgres for curated events and users
	db, err := store.NewPostgres(cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("Failed to open Postgres: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Ping(ctx); err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to prepare schema: %v", err)
	}
	log.Println("Connected to Postgres")

	// Connect to Redis for the session denylist
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.URL,
		Password: cfg.Redis.Password,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Connected to Redis")

	// Event pipeline: upstream client -> aggregation -> shared result cache
	tmClient := ticketmaster.New()
	resultCache := cache.New(cache.DefaultTTL)
	eventsService := events.NewService(tmClient, resultCache)

	// Auth
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret)
	denylist := auth.NewRedisDenylist(redisClient)
	authenticator := handlers.NewAuthenticator(tokens, denylist, db)
	secureCookies := os.Getenv("ENV") == "production"

	// Handlers
	eventsHandler := handlers.NewEventsHandler(eventsService, db)
	adminEventsHandler := handlers.NewAdminEventsHandler(db)
	authHandler := handlers.NewAuthHandler(db, tokens, denylist, secureCookies)
	usersHandler := handlers.NewUsersHandler(db)
	healthHandler := handlers.NewHealthHandler(db)

	// Setup router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", healthHandler.HandleHealth)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Public events API
		r.Get("/events", metrics.Middleware("events", eventsHandler.HandleGetEvents))
		r.Get("/events/{eventID}", metrics.Middleware("event", eventsHandler.HandleGetEvent))

		// Auth
		r.Post("/login", authHandler.HandleLogin)
		r.Post("/logout", authHandler.HandleLogout)
		r.Post("/register", authHandler.HandleRegister)
		r.Post("/create-admin", authHandler.HandleCreateAdmin)
		r.With(authenticator.RequireUser).Get("/me", authHandler.HandleMe)

		// Admin panel
		r.Route("/admin/events", func(r chi.Router) {
			r.Use(authenticator.RequireAdmin)
			r.Get("/", adminEventsHandler.HandleListEvents)
			r.Post("/", adminEventsHandler.HandleCreateEvent)
			r.Get("/{eventID}", adminEventsHandler.HandleGetEvent)
			r.Put("/{eventID}", adminEventsHandler.HandleUpdateEvent)
			r.Delete("/{eventID}", adminEventsHandler.HandleDeleteEvent)
		})
		r.With(authenticator.RequireAdmin).Get("/users", usersHandler.HandleListUsers)
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s", cfg.Server.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatalf("Server error: %v", err)
	case sig := <-shutdown:
		log.Printf("Shutdown signal received: %v", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Graceful shutdown failed: %v", err)
			srv.Close()
		}
	}

	log.Println("Service stopped")
}
