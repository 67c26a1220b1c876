// SPDX-License-Identifier: MIT

// Package server exposes a road network over a small JSON HTTP API.
//
// Endpoints:
//
//	GET  /health                   liveness and graph size
//	GET  /nodes                    municipality catalog
//	POST /nodes                    add or rename a municipality
//	GET  /nodes/:id/neighbors      adjacency of one node
//	POST /roads                    add a road (condition tag validated here)
//	GET  /matrix                   adjacency matrix with degrees
//	GET  /bfs/:origin              breadth-first traversal
//	GET  /dfs/:origin              depth-first traversal with path trace
//	GET  /routes/:origin           shortest route to every node (?penalized=)
//	GET  /route?from=&to=          one shortest route (?penalized=)
//	GET  /compare?from=&to=        raw versus penalized route
//	GET  /connected                connectivity summary
//	GET  /critical                 articulation points and bridges
//	GET  /hub                      all-pairs eccentricity and center (?penalized=)
//	GET  /backbone                 minimum spanning tree (?penalized=&method=)
//	GET  /redundancy?from=&to=     road-disjoint routes and minimum cut (?method=)
//	GET  /metrics                  Prometheus metrics
//
// Every response carries an X-Request-ID header, echoed from the request
// when present.
//
// Errors are returned as {"error": "..."} with 400 for malformed input, 404
// for unknown nodes and 422 when the network has no spanning tree.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/roadnet/core"
)

// Server serves one graph. mu makes each request atomic: POST handlers hold
// it exclusively, every GET handler shares it, so a report never mixes
// state from before and after a write.
type Server struct {
	mu        sync.RWMutex
	graph     *core.Graph
	penalties core.Penalties
	logger    *slog.Logger
	metrics   *metrics
	engine    *gin.Engine
}

// requestIDHeader carries the per-request correlation id.
const requestIDHeader = "X-Request-ID"

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and lifecycle logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPenalties sets the condition multipliers used for penalized queries.
func WithPenalties(p core.Penalties) Option {
	return func(s *Server) {
		if len(p) > 0 {
			s.penalties = p
		}
	}
}

// New builds a Server for g and registers every route.
func New(g *core.Graph, opts ...Option) *Server {
	s := &Server{
		graph:     g,
		penalties: core.DefaultPenalties(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.metrics = newMetrics(g)
	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), requestID(), s.requestLogger(), s.metrics.middleware())
	s.registerRoutes(s.engine)

	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		s.logger.Info("server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	})

	return eg.Wait()
}

func (s *Server) registerRoutes(r gin.IRouter) {
	r.GET("/health", s.read(s.handleHealth))
	r.GET("/metrics", s.metrics.handler())

	r.GET("/nodes", s.read(s.handleNodes))
	r.POST("/nodes", s.write(s.handleAddNode))
	r.GET("/nodes/:id/neighbors", s.read(s.handleNeighbors))
	r.POST("/roads", s.write(s.handleAddRoad))
	r.GET("/matrix", s.read(s.handleMatrix))

	r.GET("/bfs/:origin", s.read(s.handleBFS))
	r.GET("/dfs/:origin", s.read(s.handleDFS))

	r.GET("/routes/:origin", s.read(s.handleRoutes))
	r.GET("/route", s.read(s.handleRoute))
	r.GET("/compare", s.read(s.handleCompare))

	r.GET("/connected", s.read(s.handleConnected))
	r.GET("/critical", s.read(s.handleCritical))
	r.GET("/hub", s.read(s.handleHub))
	r.GET("/backbone", s.read(s.handleBackbone))
	r.GET("/redundancy", s.read(s.handleRedundancy))
}

// read runs h under the shared request lock.
func (s *Server) read(h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		h(c)
	}
}

// write runs h under the exclusive request lock.
func (s *Server) write(h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		h(c)
	}
}

// requestLogger logs one line per request at Debug, or Warn for 4xx/5xx.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelDebug
		if status >= http.StatusBadRequest {
			level = slog.LevelWarn
		}
		s.logger.LogAttrs(c.Request.Context(), level, "http request",
			slog.String("request_id", c.GetString(requestIDHeader)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

// requestID assigns each request a correlation id, reusing the caller's.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
