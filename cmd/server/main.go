package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/OmkarKashyap/Auto-Reason/internal/auth"
	"github.com/OmkarKashyap/Auto-Reason/internal/graph"
	"github.com/OmkarKashyap/Auto-Reason/internal/server"
	"github.com/OmkarKashyap/Auto-Reason/pkg/config"
	"github.com/OmkarKashyap/Auto-Reason/pkg/logger"
)

func main() {
	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}
	if err := logger.Init(env); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting HTTP API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx := context.Background()

	// Auth cannot degrade: without the identity provider every request
	// would fail anyway.
	firebaseClient, err := auth.NewFirebaseClient(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize Firebase client", zap.Error(err))
	}

	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
	)
	if err != nil {
		log.Fatal("Failed to create Neo4j driver", zap.Error(err))
	}

	store := graph.NewStore(driver, cfg.QueryTimeout)

	// A down database at boot is not fatal: graph endpoints report storage
	// errors per request until it comes back.
	if err := store.VerifyConnectivity(ctx); err != nil {
		log.Error("Failed to verify Neo4j connectivity", zap.Error(err))
	} else {
		log.Info("Neo4j connectivity verified")
	}

	srv := server.New(store, firebaseClient, firebaseClient, cfg)
	router := srv.SetupRouter()

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("port", cfg.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := store.Close(context.Background()); err != nil {
		log.Error("Failed to close graph store", zap.Error(err))
	}

	log.Info("Server exited")
}
