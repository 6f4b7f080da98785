package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"smssync/internal/features"
	"smssync/internal/middleware"
	"smssync/internal/models"
	"smssync/internal/service"
	"smssync/internal/session"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Server struct {
	router   *mux.Router
	logger   *logrus.Logger
	cfg      *models.Config
	sessions *session.Manager
	auth     *service.Authenticator
	inbox    *service.InboxService
	server   *http.Server
}

func NewServer(cfg *models.Config, logger *logrus.Logger, sessions *session.Manager, auth *service.Authenticator, inbox *service.InboxService) *Server {
	s := &Server{
		router:   mux.NewRouter(),
		logger:   logger,
		cfg:      cfg,
		sessions: sessions,
		auth:     auth,
		inbox:    inbox,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.ObservabilityMiddleware(s.logger))

	// Health check
	s.router.HandleFunc("/health", s.handleHealth()).Methods(http.MethodGet)

	// Operational endpoints, toggleable at runtime
	if features.IsEnabled(features.FlagMetricsEndpoint) {
		s.router.HandleFunc("/metrics", s.handleMetrics()).Methods(http.MethodGet)
	}
	if features.IsEnabled(features.FlagVersionEndpoint) {
		s.router.HandleFunc("/version", s.handleVersion()).Methods(http.MethodGet)
	}

	// JSON API, dispatched on the request body "path" field
	s.router.HandleFunc("/api", s.handleAPI()).Methods(http.MethodPost)
}

func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(s.cfg.Server.WriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.Server.IdleTimeoutSec) * time.Second,
	}

	s.logger.Infof("Starting server on port %d", s.cfg.Server.Port)
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			s.logger.Warnf("Failed to write health response: %v", err)
		}
	}
}
