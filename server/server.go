// Package server exposes the route planner over HTTP with gin.
//
// Endpoints:
//
//	GET  /healthz          - liveness
//	GET  /v1/regions       - regions, nodes and hub links
//	POST /v1/routes        - plan one route
//	POST /v1/routes/batch  - plan up to 64 routes concurrently
//	GET  /metrics          - Prometheus exposition
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Neha3-ai/final-ip-project/planner"
)

// ShutdownTimeout bounds graceful shutdown in Run.
const ShutdownTimeout = 5 * time.Second

// Option configures a Server.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	corsOrigins []string
}

// WithLogger sets the request logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("server: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// WithCORSOrigins allows browser renderers served from origins to call the
// API. "*" allows any origin. No origins disables CORS handling.
func WithCORSOrigins(origins ...string) Option {
	return func(o *options) { o.corsOrigins = origins }
}

// Server wires a planner to a gin engine.
type Server struct {
	planner *planner.Planner
	logger  *slog.Logger
	engine  *gin.Engine
}

// New builds the router. It does not start listening.
func New(p *planner.Planner, opts ...Option) *Server {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Server{planner: p, logger: o.logger, engine: gin.New()}
	s.engine.Use(gin.Recovery(), s.requestLogger())
	if len(o.corsOrigins) > 0 {
		s.engine.Use(cors.New(corsConfig(o.corsOrigins)))
	}
	s.routes()

	return s
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cfg
}

func (s *Server) routes() {
	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.engine.Group("/v1")
	v1.GET("/regions", s.handleRegions)
	v1.POST("/routes", s.handleRoute)
	v1.POST("/routes/batch", s.handleBatch)
}

// Handler returns the HTTP handler, for tests and custom listeners.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// requestLogger logs one line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("took", time.Since(start)),
		)
	}
}
