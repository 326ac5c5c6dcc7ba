// Package httpcontroller serves the recommendation API over HTTP.
package httpcontroller

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/voyago/voyago/internal/ai"
	"github.com/voyago/voyago/internal/conf"
	"github.com/voyago/voyago/internal/datastore"
	"github.com/voyago/voyago/internal/logging"
	"github.com/voyago/voyago/internal/model"
)

// RecommendationGenerator produces recommendation records. Implemented by
// *ai.Generator; faked in tests.
type RecommendationGenerator interface {
	DestinationRecommendations(ctx context.Context, profile *ai.Profile) []*model.DestinationRecommendation
	ActivityRecommendations(ctx context.Context, destination, tripType string, duration int) []*model.ActivityRecommendation
}

// Enricher fills image fields on recommendation records.
type Enricher interface {
	EnrichDestinations(ctx context.Context, recs []*model.DestinationRecommendation, imagesPerRecord int) []*model.DestinationRecommendation
	EnrichActivities(ctx context.Context, acts []*model.ActivityRecommendation, imagesPerActivity int) []*model.ActivityRecommendation
}

// Server encapsulates the Echo server and its collaborators.
type Server struct {
	Echo      *echo.Echo
	DS        datastore.Interface
	Settings  *conf.Settings
	Generator RecommendationGenerator
	Enricher  Enricher

	registry *prometheus.Registry
	log      *slog.Logger

	webLogger      *slog.Logger // request log, file-backed when enabled
	webLoggerClose func() error
}

// New wires the HTTP server over the given collaborators. registry may be
// nil; the /metrics endpoint is then omitted.
func New(settings *conf.Settings, ds datastore.Interface, gen RecommendationGenerator, enricher Enricher, registry *prometheus.Registry) *Server {
	s := &Server{
		Echo:      echo.New(),
		DS:        ds,
		Settings:  settings,
		Generator: gen,
		Enricher:  enricher,
		registry:  registry,
		log:       logging.ForService("http"),
	}

	s.Echo.HideBanner = true
	s.Echo.IPExtractor = echo.ExtractIPFromXFFHeader()
	s.Echo.Use(middleware.Recover())

	if settings.Main.Log.Enabled {
		webLogger, closeFn, err := logging.NewFileLogger(settings.Main.Log.Path, "http", slog.LevelInfo)
		if err != nil {
			s.log.Warn("Failed to open request log file, request logging disabled",
				"path", settings.Main.Log.Path,
				"error", err)
		} else {
			s.webLogger = webLogger
			s.webLoggerClose = closeFn
			s.Echo.Use(s.requestLogger)
		}
	}

	s.initRoutes()
	return s
}

// requestLogger writes one line per request to the file-backed web logger.
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		s.webLogger.Info("Request handled",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"remote_ip", c.RealIP(),
			"latency_ms", time.Since(start).Milliseconds())
		return err
	}
}

func (s *Server) initRoutes() {
	s.Echo.GET("/healthz", s.handleHealthz)
	if s.registry != nil {
		s.Echo.GET("/metrics", echo.WrapHandler(
			promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	}

	v1 := s.Echo.Group("/api/v1")
	v1.POST("/recommendations/destinations", s.handleDestinationRecommendations)
	v1.POST("/recommendations/activities", s.handleActivityRecommendations)
	v1.GET("/recommendations", s.handleListRecommendations)
}

// Start blocks serving HTTP until Shutdown or a listener error.
func (s *Server) Start() error {
	addr := net.JoinHostPort(s.Settings.Server.Host, s.Settings.Server.Port)
	s.log.Info("HTTP server starting", "addr", addr)
	return s.Echo.Start(addr)
}

// Shutdown stops the server gracefully and closes the request log.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.Echo.Shutdown(ctx)
	if s.webLoggerClose != nil {
		if closeErr := s.webLoggerClose(); closeErr != nil {
			s.log.Warn("Failed to close request log", "error", closeErr)
		}
	}
	return err
}
