// Package server serves generated mock responses over HTTP.
//
// Each Route maps "METHOD /path" to a named schema. Requests may pass
// excludeOptional and delay in the query string; the response body is the
// generated value as JSON, or YAML when the Accept header asks for it.
//
// Two built-in endpoints are always present:
//
//	GET /__schemas          summaries of every loaded schema
//	GET /__generate/{name}  one value for any loaded schema
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/getmockd/shapemock/internal/ordered"
	"github.com/getmockd/shapemock/pkg/config"
	"github.com/getmockd/shapemock/pkg/generator"
	"github.com/getmockd/shapemock/pkg/httputil"
	"github.com/getmockd/shapemock/pkg/logging"
	"github.com/getmockd/shapemock/pkg/mocker"
)

// RequestIDHeader carries the per-request ID on every response.
const RequestIDHeader = "X-Request-ID"

// Server is an http.Handler serving mock responses.
type Server struct {
	set     *config.Set
	routes  []Route
	mockers map[string]*mocker.Mocker
	mux     *http.ServeMux
	logger  *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// New builds a server for the given routes. Every route must name a schema
// in set and no two routes may share a method and path.
func New(set *config.Set, routes []Route, opts ...Option) (*Server, error) {
	if set == nil {
		return nil, errors.New("schema set cannot be nil")
	}
	s := &Server{
		set:     set,
		routes:  routes,
		mockers: make(map[string]*mocker.Mocker, set.Len()),
		mux:     http.NewServeMux(),
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, name := range set.Names() {
		sch, _ := set.Get(name)
		s.mockers[name] = mocker.New(sch, generator.WithLogger(s.logger))
	}

	seen := make(map[string]bool, len(routes))
	for _, r := range routes {
		m, ok := s.mockers[r.Schema]
		if !ok {
			return nil, fmt.Errorf("route %s: unknown schema %q", r.Pattern(), r.Schema)
		}
		if seen[r.Pattern()] {
			return nil, fmt.Errorf("duplicate route %s", r.Pattern())
		}
		seen[r.Pattern()] = true
		s.mux.HandleFunc(r.Pattern(), s.mockHandler(r, m))
	}

	s.mux.HandleFunc("GET /__schemas", s.handleSchemas)
	s.mux.HandleFunc("GET /__generate/{name}", s.handleGenerate)
	return s, nil
}

// Routes returns the configured routes.
func (s *Server) Routes() []Route {
	out := make([]Route, len(s.routes))
	copy(out, s.routes)
	return out
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(RequestIDHeader, uuid.NewString())
	s.mux.ServeHTTP(w, r)
}

func (s *Server) mockHandler(route Route, m *mocker.Mocker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, r, route.Schema, route.Status, route.Delay, m)
	}
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	m, ok := s.mockers[name]
	if !ok {
		httputil.WriteNotFound(w, "unknown_schema", fmt.Sprintf("no schema named %q", name))
		return
	}
	s.respond(w, r, name, http.StatusOK, 0, m)
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, name string, status int, delay time.Duration, m *mocker.Mocker) {
	start := time.Now()
	log := s.logger.With(
		"requestId", w.Header().Get(RequestIDHeader),
		"method", r.Method,
		"path", r.URL.Path,
		"schema", name,
	)

	opts, err := parseOptions(r.URL.Query(), delay)
	if err != nil {
		log.Warn("bad mock options", "error", err)
		httputil.WriteBadRequest(w, "invalid_options", err.Error())
		return
	}

	v, err := m.Response(r.Context(), opts)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			log.Info("client went away during delay", "error", err)
			return
		}
		log.Error("generation failed", "error", err)
		httputil.WriteInternalError(w, "generation_failed", err.Error())
		return
	}

	httputil.WriteNegotiated(w, r, status, v)
	log.Info("mock response",
		"status", status,
		"excludeOptional", opts.ExcludeOptional,
		"delay", opts.Delay,
		"duration", time.Since(start),
	)
}

func (s *Server) handleSchemas(w http.ResponseWriter, r *http.Request) {
	out := ordered.New(s.set.Len())
	for _, name := range s.set.Names() {
		sch, _ := s.set.Get(name)
		out.Set(name, sch.Summary())
	}
	httputil.WriteNegotiated(w, r, http.StatusOK, out)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving mocks", "addr", addr, "routes", len(s.routes))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
