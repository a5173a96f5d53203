package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "flightfare/internal/config"
	router "flightfare/internal/http"
	"flightfare/internal/http/handlers"
	"flightfare/internal/model"
	"flightfare/internal/repositories"
	"flightfare/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	// The model is required; nothing is served without it.
	m, err := model.Load(env.ModelPath)
	if err != nil {
		log.Fatalf("fatal: %v", err)
	}
	if err := services.CheckModelSchema(m); err != nil {
		log.Fatalf("fatal: model %q does not match the encoder schema: %v", env.ModelPath, err)
	}
	log.Printf("model loaded: kind=%s version=%s features=%d", m.Kind(), m.Version(), m.NumFeatures())

	h := &handlers.Handler{Env: env, Model: m}

	if env.DBDSN != "" {
		db, err := intconfig.ConnectDB(env.DBDSN)
		if err != nil {
			log.Fatalf("fatal: %v", err)
		}
		defer db.Close()

		repo := repositories.PredictionRepository{DB: db}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = repo.EnsureTable(ctx)
		cancel()
		if err != nil {
			log.Fatalf("fatal: %v", err)
		}
		h.History = repo
	} else {
		log.Println("DB_DSN not set, prediction history disabled")
	}

	r := router.NewRouter(h)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown failed: %v", err)
		return
	}

	log.Println("server stopped")
}
