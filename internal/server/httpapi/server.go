// Package httpapi is the DevHub REST API server: routing, the
// authentication and role guards, and the JSON handlers over the service
// layer.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/devhub/backend/internal/logging"
	"github.com/devhub/backend/internal/server/auth"
	"github.com/devhub/backend/internal/server/config"
	"github.com/devhub/backend/internal/server/models"
	"github.com/devhub/backend/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server is the DevHub REST API server.
type Server struct {
	router    chi.Router
	logger    logging.Logger
	config    *config.Config
	jwtSecret []byte
	cookies   auth.CookieConfig
	users     *services.UserService
	tasks     *services.TaskService
	resources *services.ResourceService
	stats     *services.StatsService
}

// New creates a new Server with all routes registered.
func New(cfg *config.Config, logger logging.Logger,
	users *services.UserService, tasks *services.TaskService,
	resources *services.ResourceService, stats *services.StatsService) *Server {

	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger.With("component", "httpapi"),
		config:    cfg,
		jwtSecret: []byte(cfg.SecretKey),
		cookies:   auth.NewCookieConfig(cfg),
		users:     users,
		tasks:     tasks,
		resources: resources,
		stats:     stats,
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	// Cookie-based auth requires an exact origin echo with credentials
	// allowed; a wildcard origin is invalid for credentialed requests.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{s.config.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {

		r.Get("/health", s.handleHealth)

		r.Route("/auth", func(r chi.Router) {
			// Public routes
			r.Post("/register", s.handleRegister)
			r.Post("/login", s.handleLogin)

			// Protected routes
			r.Group(func(r chi.Router) {
				r.Use(s.authMiddleware)
				r.Post("/logout", s.handleLogout)
				r.Get("/profile", s.handleGetProfile)
				r.Patch("/profile", s.handleUpdateProfile)
			})
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Use(s.authMiddleware)
			r.Get("/stats", s.handleTaskStats)
			r.Get("/student/tasks", s.handleStudentTasks)
			r.Patch("/{id}/update", s.handleUpdateTaskStatus)
		})

		r.Route("/resources", func(r chi.Router) {
			r.Use(s.authMiddleware)
			r.Get("/", s.handleListResources)
			r.Patch("/{id}/status", s.handleUpdateResourceStatus)

			r.Group(func(r chi.Router) {
				r.Use(requireRole(models.RoleAdmin))
				r.Post("/add", s.handleCreateResource)
				r.Put("/{id}", s.handleUpdateResource)
				r.Delete("/{id}", s.handleDeleteResource)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.authMiddleware)
			r.Use(requireRole(models.RoleAdmin))

			r.Get("/dashboard", s.handleDashboard)
			r.Get("/stats", s.handleDashboard)

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", s.handleListTasks)
				r.Get("/stats", s.handleTaskStats)
				r.Post("/add", s.handleCreateTask)
				r.Delete("/{id}", s.handleDeleteTask)
			})
		})
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.config.EndpointAddrHTTP,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "listening", "addr", s.config.EndpointAddrHTTP)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
