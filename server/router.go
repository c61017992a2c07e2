// Package server assembles the HTTP surface: it builds the services on top of the
// chosen stores, mounts their handlers on a chi router with the shared middleware
// stack, and runs the http.Server until its context is cancelled.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/taskboard-go/apperror"
	"github.com/user/taskboard-go/auth"
	"github.com/user/taskboard-go/config"
	"github.com/user/taskboard-go/dashboard"
	_ "github.com/user/taskboard-go/docs" // Swagger spec registration
	"github.com/user/taskboard-go/logging"
	"github.com/user/taskboard-go/tasks"
	"github.com/user/taskboard-go/users"
)

// Stores are the persistence backends the application runs on.
type Stores struct {
	Users   users.Store
	Tasks   tasks.Store
	Metrics dashboard.Store
}

// Options carry the settings NewRouter needs. Now, when set, replaces time.Now in
// every service.
type Options struct {
	Auth   *config.AuthConfig
	Server *config.ServerConfig
	Logger logging.Logger
	Now    func() time.Time
}

// NewRouter wires services, handlers and middleware into a single http.Handler.
func NewRouter(stores Stores, opts Options) http.Handler {
	tokens := auth.NewTokenIssuer(opts.Auth.JWTSecret, opts.Auth.TokenDuration)
	gate := auth.NewGate(tokens, stores.Users)

	authHandlers := auth.NewHandlers(auth.NewService(stores.Users, auth.NewBcryptHasher(opts.Auth.BcryptCost), tokens))
	taskHandlers := tasks.NewHandlers(tasks.NewService(stores.Tasks, opts.Now))
	dashboardHandlers := dashboard.NewHandlers(dashboard.NewService(stores.Metrics, opts.Now))

	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID) // Add request ID to context
	r.Use(middleware.RealIP)    // Get real IP from proxy headers
	r.Use(requestLogger(logger))
	r.Use(recoverer)
	if opts.Server.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.Server.RequestTimeout)) // Timeout long-running requests
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		auth.WriteJSON(w, http.StatusOK, "Hello welcome.")
	})

	// Swagger UI endpoint, backed by the spec registered by the docs package.
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/auth", authHandlers.RegisterRoutes)

	r.Route("/tasks", func(r chi.Router) {
		r.Use(gate.Middleware)
		taskHandlers.RegisterRoutes(r)
	})

	r.Route("/dashboard", func(r chi.Router) {
		r.Use(gate.Middleware)
		dashboardHandlers.RegisterRoutes(r)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		auth.WriteJSON(w, http.StatusNotFound, apperror.ErrorResponse{Message: "Not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		auth.WriteJSON(w, http.StatusMethodNotAllowed, apperror.ErrorResponse{Message: "Method not allowed"})
	})

	return r
}
