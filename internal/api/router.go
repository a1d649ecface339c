package api

import (
	"net/http"

	"github.com/dom/hxh-catalog/internal/api/handlers"
	"github.com/dom/hxh-catalog/internal/api/middleware"
	"github.com/dom/hxh-catalog/internal/config"
	"github.com/dom/hxh-catalog/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// NewRouter serves the character contract over whichever backend the services were
// built on. The route table is identical for both backends.
func NewRouter(services *service.Services, backend config.Backend, log logrus.FieldLogger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RequestLogger(log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Get("/", handlers.Info(backend))

	characterHandler := handlers.NewCharacterHandler(services.Character, log)

	r.Route("/characters", func(r chi.Router) {
		r.Get("/", characterHandler.List)
		r.Post("/", characterHandler.Create)
		r.Get("/{id}", characterHandler.Get)
		r.Put("/{id}", characterHandler.Replace)
		r.Delete("/{id}", characterHandler.Delete)
	})

	return r
}
