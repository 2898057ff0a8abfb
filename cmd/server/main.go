package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"acadrec/internal/analytics"
	"acadrec/internal/auth"
	"acadrec/internal/config"
	"acadrec/internal/db"
	"acadrec/internal/graph"
	"acadrec/internal/repository"
	"acadrec/internal/router"
	"acadrec/internal/service"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		logger.WithError(err).Fatal("failed to open database")
	}
	logger.Info("connected to database")

	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)

	institutes := repository.NewInstituteRepository(gdb)
	students := repository.NewStudentRepository(gdb)
	courses := repository.NewCourseRepository(gdb)
	results := repository.NewResultRepository(gdb)
	users := repository.NewUserRepository(gdb)

	schema, err := graph.New(graph.Deps{
		Institutes: institutes,
		Students:   students,
		Courses:    courses,
		Results:    results,
		Users:      users,
		Analytics:  analytics.NewService(gdb),
		Auth:       service.NewAuthService(gdb, users, jwtService, cfg.BcryptCost, logger),
		Logger:     logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to build schema")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router.New(schema.GetSchema(), jwtService, logger, cfg.Environment != "production"),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.WithField("port", cfg.ServerPort).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
}
