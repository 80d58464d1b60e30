package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-service/internal/api"
	"storefront-service/internal/auth"
	"storefront-service/internal/cart"
	"storefront-service/internal/catalog"
	"storefront-service/internal/checkout"
	"storefront-service/internal/config"
	"storefront-service/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const (
	defaultAppName = "StorefrontService"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("INFO: No .env file found or failed to load, relying on system environment")
	}
	logger := log.New(os.Stdout, fmt.Sprintf("[%s] ", defaultAppName), log.LstdFlags|log.Lshortfile|log.Lmicroseconds)
	logger.Println("INFO: Starting service...")

	// --- Configuration Loading ---
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("FATAL: Error loading configuration: %v", err)
	}
	logger.Printf("INFO: Configuration loaded for APP_ENV: %s, LogLevel: %s, StorageBackend: %s",
		cfg.AppEnv, cfg.LogLevel, cfg.Storage.Backend)

	// --- Session Storage Backend ---
	var sessions store.SessionStorer
	var db *sql.DB
	switch cfg.Storage.Backend {
	case "postgres":
		db, err = sql.Open("postgres", cfg.Storage.Postgres.DSN())
		if err != nil {
			logger.Fatalf("FATAL: Failed to initialize database connection: %v", err)
		}
		if err := db.PingContext(context.Background()); err != nil {
			logger.Fatalf("FATAL: Failed to ping database: %v", err)
		}
		logger.Println("INFO: Database connection established successfully.")
		sessions = store.NewPostgresStore(db)
	default:
		logger.Println("INFO: Running with in-memory session storage; carts will not survive restarts.")
		sessions = store.NewMemoryStore()
	}

	// --- Domain Wiring ---
	// The catalog is static, loaded once, and read-only for the life of
	// the process.
	cat := catalog.NewSeedCatalog()
	carts := cart.NewManager(sessions)
	checkoutSvc := checkout.NewService(sessions)
	authSvc := auth.NewService(sessions)

	httpAPIHandler := api.NewHTTPHandler(cat, carts, checkoutSvc, authSvc)

	// --- Setup & Start HTTP Server ---
	httpRouter := chi.NewRouter()
	setupBaseMiddleware(httpRouter, logger)
	registerHealthCheck(httpRouter, logger, db)
	httpAPIHandler.RegisterRoutes(httpRouter)

	httpServer := &http.Server{
		Addr:         ":" + cfg.HttpServer.Port,
		Handler:      httpRouter,
		ReadTimeout:  cfg.HttpServer.TimeoutRead,
		WriteTimeout: cfg.HttpServer.TimeoutWrite,
		IdleTimeout:  cfg.HttpServer.TimeoutIdle,
	}

	go func() {
		logger.Printf("INFO: HTTP server listening on port %s", cfg.HttpServer.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("FATAL: HTTP server ListenAndServe error: %v", err)
		}
		logger.Println("INFO: HTTP server has stopped.")
	}()

	// --- Setup & Start gRPC Server (health/reflection only) ---
	grpcServer := setupGRPCServer(logger)
	grpcListener, err := net.Listen("tcp", ":"+cfg.GrpcServer.Port)
	if err != nil {
		logger.Fatalf("FATAL: Failed to listen for gRPC on port %s: %v", cfg.GrpcServer.Port, err)
	}

	go func() {
		logger.Printf("INFO: gRPC server listening on port %s", cfg.GrpcServer.Port)
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			logger.Fatalf("FATAL: gRPC server Serve error: %v", err)
		}
		logger.Println("INFO: gRPC server has stopped.")
	}()

	// --- Graceful Shutdown ---
	shutdownComplete := make(chan struct{})
	go waitForShutdown(logger, httpServer, grpcServer, db, shutdownComplete)

	<-shutdownComplete
	logger.Println("INFO: Service shutdown sequence finished.")
}

func setupBaseMiddleware(router *chi.Mux, logger *log.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))
	logger.Println("INFO: Base HTTP middleware registered.")
}

func registerHealthCheck(router *chi.Mux, logger *log.Logger, db *sql.DB) {
	healthPath := "/api/v1/healthz"
	router.Get(healthPath, func(w http.ResponseWriter, r *http.Request) {
		dbStatus := "not-configured"
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			dbStatus = "healthy"
			if err := db.PingContext(ctx); err != nil {
				dbStatus = "unhealthy"
				logger.Printf("WARN: Health check DB ping failed: %v", err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":      "healthy",
			"serviceName": defaultAppName,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"database":    dbStatus,
		})
	})
	logger.Printf("INFO: HTTP health check registered at %s", healthPath)
}

func setupGRPCServer(logger *log.Logger) *grpc.Server {
	s := grpc.NewServer()

	// Register gRPC Health Checking Protocol service.
	grpc_health_v1.RegisterHealthServer(s, health.NewServer())
	logger.Println("INFO: gRPC health check service registered.")

	// Enable gRPC server reflection (useful for tools like grpcurl).
	reflection.Register(s)
	logger.Println("INFO: gRPC reflection service registered.")

	return s
}

func waitForShutdown(
	logger *log.Logger,
	httpServer *http.Server,
	grpcServer *grpc.Server,
	db *sql.DB,
	shutdownComplete chan struct{},
) {
	defer close(shutdownComplete)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-sigChan
	logger.Printf("INFO: Received signal: %s. Starting graceful shutdown...", receivedSignal)

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	logger.Println("INFO: Attempting to gracefully shut down gRPC server...")
	stoppedGrpc := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stoppedGrpc)
	}()

	logger.Println("INFO: Attempting to gracefully shut down HTTP server...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Printf("WARN: HTTP server graceful shutdown failed: %v", err)
	} else {
		logger.Println("INFO: HTTP server gracefully shut down.")
	}

	select {
	case <-stoppedGrpc:
		logger.Println("INFO: gRPC server gracefully shut down.")
	case <-shutdownCtx.Done():
		logger.Printf("WARN: gRPC server graceful shutdown timed out: %v", shutdownCtx.Err())
		grpcServer.Stop()
		logger.Println("INFO: gRPC server forced stop.")
	}

	if db != nil {
		if err := db.Close(); err != nil {
			logger.Printf("WARN: Error closing database connection: %v", err)
		}
	}

	logger.Println("INFO: Graceful shutdown sequence completed.")
}
