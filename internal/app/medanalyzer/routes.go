// Package medanalyzer предоставляет маршруты приложения.
package medanalyzer

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/medanalyzer/internal/http/handlers/analysis/analyze"
	analysislist "github.com/magabrotheeeer/medanalyzer/internal/http/handlers/analysis/list"
	analysisread "github.com/magabrotheeeer/medanalyzer/internal/http/handlers/analysis/read"
	"github.com/magabrotheeeer/medanalyzer/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/medanalyzer/internal/http/handlers/auth/register"
	dashboardhandler "github.com/magabrotheeeer/medanalyzer/internal/http/handlers/dashboard"
	"github.com/magabrotheeeer/medanalyzer/internal/http/handlers/health"
	"github.com/magabrotheeeer/medanalyzer/internal/http/middlewarectx"
	analysisservice "github.com/magabrotheeeer/medanalyzer/internal/services/analysis"
	authservice "github.com/magabrotheeeer/medanalyzer/internal/services/auth"
	dashboardservice "github.com/magabrotheeeer/medanalyzer/internal/services/dashboard"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authSvc *authservice.Service,
	analysisSvc *analysisservice.Service,
	dashboardSvc *dashboardservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health.New(logger).ServeHTTP)
		r.Post("/register", register.New(logger, authSvc).ServeHTTP)
		r.Post("/login", login.New(logger, authSvc).ServeHTTP)

		// Группа с ограничением потока запросов
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger, rate.Limit(10), 20))
			r.Post("/analyze", analyze.New(logger, analysisSvc).ServeHTTP)
			r.Get("/analysis/{analysisID}", analysisread.New(logger, analysisSvc).ServeHTTP)
			r.Get("/user/{userID}/analyses", analysislist.New(logger, analysisSvc).ServeHTTP)
			r.Get("/user/{userID}/dashboard", dashboardhandler.New(logger, dashboardSvc).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
