// Package server exposes the geometry operations over HTTP for tools that do
// not link Go code. Every endpoint takes and returns JSON.
//
//	POST /v1/curve     smooth a list of control points
//	POST /v1/contains  hit-test points against a polygon
//	POST /v1/scale     scale a list of points
//	GET  /healthz
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/osuushi/polygeom/internal/config"
	"github.com/pkg/errors"
)

const RequestIDHeader = "X-Request-ID"

type Server struct {
	cfg    config.Config
	logger *slog.Logger
	router *mux.Router

	curve    *Validator
	contains *Validator
	scale    *Validator
}

func New(cfg config.Config, logger *slog.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		router:   mux.NewRouter(),
		curve:    mustValidator(curveSchema),
		contains: mustValidator(containsSchema),
		scale:    mustValidator(scaleSchema),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(s.requestID)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	// Registered on the top level router so a wrong method gets a 405
	s.router.HandleFunc("/v1/curve", s.handleCurve).Methods(http.MethodPost)
	s.router.HandleFunc("/v1/contains", s.handleContains).Methods(http.MethodPost)
	s.router.HandleFunc("/v1/scale", s.handleScale).Methods(http.MethodPost)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe runs until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server starting", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "http server")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "http server shutdown")
	}
	s.logger.Info("http server stopped")
	return nil
}

type ctxKey struct{}

// requestID tags every request with an id, reusing the caller's if given, and
// logs the request once it is done.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))

		s.logger.Debug("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// RequestID returns the id assigned to the request, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
