package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dom/hxh-catalog/internal/api"
	"github.com/dom/hxh-catalog/internal/config"
	"github.com/dom/hxh-catalog/internal/logging"
	"github.com/dom/hxh-catalog/internal/repository"
	"github.com/dom/hxh-catalog/internal/repository/mongodb"
	"github.com/dom/hxh-catalog/internal/repository/postgres"
	"github.com/dom/hxh-catalog/internal/service"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to configure logging: %v\n", err)
		os.Exit(1)
	}

	// Initialize storage; the handle lives for the whole process.
	repos, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.WithError(err).Error("failed to close database")
		}
	}()

	services := service.NewServices(repos)
	router := api.NewRouter(services, cfg.Backend, log.WithField("backend", cfg.Backend))

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{"port": cfg.Port, "backend": cfg.Backend}).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		log.WithError(err).Error("server failed")
		return
	case <-quit:
	}

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
		return
	}

	log.Info("server stopped")
}

// openStore connects to the configured backend and returns its repositories plus
// the matching release function.
func openStore(cfg *config.Config, log *logrus.Logger) (*repository.Repositories, func() error, error) {
	switch cfg.Backend {
	case config.BackendDocument:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
		defer cancel()

		client, err := mongodb.NewConnection(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		log.WithField("database", cfg.MongoDatabase).Info("mongodb connected")

		closeFn := func() error {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
			defer cancel()
			return client.Disconnect(ctx)
		}
		return mongodb.NewRepositories(client.Database(cfg.MongoDatabase), cfg.MongoCollection), closeFn, nil

	default:
		db, err := postgres.NewConnection(cfg.DatabaseURL, logging.GormLevel(log))
		if err != nil {
			return nil, nil, err
		}
		log.Info("postgresql table initialized")

		return postgres.NewRepositories(db), func() error { return postgres.Close(db) }, nil
	}
}
