package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"drp/internal/api/handlers/http/admin"
	"drp/internal/api/handlers/http/public"
	"drp/internal/api/handlers/http/system"
	"drp/internal/config"
	"drp/internal/middleware"
	"drp/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, checks map[string]system.Pinger) *Server {
	adminHandler := admin.NewHandler(logger, svc.Incidents, svc.Shelters)
	publicHandler := public.NewHandler(logger, svc.Incidents, svc.Locations, svc.Tokens, svc.Shelters, svc.Routes, svc.Notifications)
	systemHandler := system.NewHandler(logger, checks)

	r := InitRouter(cfg, adminHandler, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, adminHandler *admin.Handler, publicHandler *public.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	// request_id must be set before chi's Logger runs
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Http.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.APIKeyHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Patch("/incidents/{id}/fake", adminHandler.AdminIncidentMarkFake)
			ar.Post("/shelters", adminHandler.AdminShelterCreate)
			ar.Delete("/shelters/{id}", adminHandler.AdminShelterDelete)
		})

		// PUBLIC
		api.Group(func(pr chi.Router) {
			pr.Use(middleware.Limit(cfg.Http.RateLimitRPS, cfg.Http.RateLimitBurst, 5*time.Minute, logger))

			pr.Route("/incidents", func(ir chi.Router) {
				ir.Post("/", publicHandler.IncidentCreate)
				ir.Get("/", publicHandler.IncidentList)
				ir.Get("/active", publicHandler.IncidentListActive)
				ir.Get("/near", publicHandler.IncidentListNear)
				ir.Get("/{id}", publicHandler.IncidentGet)
			})

			pr.Route("/locations", func(lr chi.Router) {
				lr.Post("/live", publicHandler.LocationLive)
				lr.Post("/guest", publicHandler.LocationGuest)
				lr.Post("/manual", publicHandler.LocationManual)
			})

			pr.Post("/push-tokens", publicHandler.PushTokenRegister)
			pr.Delete("/push-tokens/{deviceId}", publicHandler.PushTokenDelete)

			pr.Get("/notifications", publicHandler.NotificationList)
			pr.Get("/shelters", publicHandler.ShelterList)

			pr.Post("/routes/evacuation", publicHandler.RouteEvacuation)
			pr.Post("/routes/shelter", publicHandler.RouteShelter)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
		api.Get("/ready", systemHandler.SystemReady)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("🚀 Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("🛑 Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
