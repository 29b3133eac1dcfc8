package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	core_port "github.com/Wilmaryucuma7/real-estate-api/internal/core/port"
)

// Server - наш REST API сервер.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewServer создает новый экземпляр сервера.
func NewServer(port string,
	allowedOrigins string,
	propertyHandler *PropertyHandler,
	ownerHandler *OwnerHandler,
	healthHandler *HealthHandler,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		// AllowedOrigins - список доменов, с которых разрешены запросы
		AllowedOrigins: strings.Split(allowedOrigins, ","),

		// Сервис только читает, мутаций через REST нет
		AllowedMethods: []string{"GET", "OPTIONS"},

		AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
	}))
	r.Use(LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Get("/health", healthHandler.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/properties", propertyHandler.FindProperties)
		r.Get("/properties/slug/{slug}/traces", propertyHandler.GetPropertyTraces)
		r.Get("/properties/slug/{slug}", propertyHandler.GetPropertyBySlug)
		r.Get("/properties/{propertyID}", propertyHandler.GetPropertyDetails)

		r.Get("/owners", ownerHandler.ListOwners)
		r.Get("/owners/{ownerID}/properties", ownerHandler.GetOwnerProperties)
		r.Get("/owners/{ownerID}", ownerHandler.GetOwner)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
