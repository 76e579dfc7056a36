package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parkeo/internal/api"
	"parkeo/internal/auth"
	"parkeo/internal/config"
	"parkeo/internal/repository"
	"parkeo/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg := config.Load()

	lots := repository.NewLotRegistry(repository.DefaultLots())
	sessions := repository.NewSessionLedger()
	users := repository.NewUserStore(repository.DefaultUsers())

	parkingSvc := service.NewParkingService(lots, sessions)
	authSvc := service.NewAuthService(users, cfg.JWTSecret, cfg.JWTExpiry)
	jobSvc := service.NewJobService(parkingSvc, cfg.PendingRequestTTL)

	mw := auth.NewMiddleware(authSvc)
	parkingHandler := api.NewParkingHandler(parkingSvc)
	sessionHandler := api.NewSessionHandler(parkingSvc)
	adminHandler := api.NewAdminHandler(parkingSvc)
	authHandler := api.NewAuthHandler(authSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")

	// User endpoints (token required)
	user := r.PathPrefix("/api").Subrouter()
	user.Use(mw.RequireUser)
	user.HandleFunc("/parkings", parkingHandler.ListParkings).Methods("GET")
	user.HandleFunc("/parkings/code/{code}", parkingHandler.GetParkingByCode).Methods("GET")
	user.HandleFunc("/parkings/{id}", parkingHandler.GetParking).Methods("GET")
	user.HandleFunc("/sessions", sessionHandler.MySessions).Methods("GET")
	user.HandleFunc("/sessions/active", sessionHandler.ActiveSessions).Methods("GET")
	user.HandleFunc("/sessions/entry", sessionHandler.RequestEntry).Methods("POST")
	user.HandleFunc("/sessions/{id}/exit", sessionHandler.RequestExit).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(mw.RequireAdmin)
	admin.HandleFunc("/sessions/entry-requests", adminHandler.ListEntryRequests).Methods("GET")
	admin.HandleFunc("/sessions/exit-requests", adminHandler.ListExitRequests).Methods("GET")
	admin.HandleFunc("/sessions/{id}/entry/approve", adminHandler.ApproveEntry).Methods("POST")
	admin.HandleFunc("/sessions/{id}/entry/reject", adminHandler.RejectEntry).Methods("POST")
	admin.HandleFunc("/sessions/{id}/exit/approve", adminHandler.ApproveExit).Methods("POST")
	admin.HandleFunc("/sessions/{id}/exit/reject", adminHandler.RejectExit).Methods("POST")

	c := cron.New()
	if _, err := c.AddFunc(cfg.PendingSweepSpec, func() {
		if err := jobSvc.ExpirePendingEntryRequests(); err != nil {
			log.Printf("%v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule pending sweep: %v", err)
	}
	c.Start()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: handlers.LoggingHandler(os.Stdout, cors(r)),
	}

	go func() {
		log.Printf("Server running on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	<-c.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shut down: %v", err)
	}
	log.Println("Server stopped.")
}
