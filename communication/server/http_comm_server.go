package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"blokus/communication"
	"blokus/searcher"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

const maxBodyBytes = 1 << 20

// Server hosts the move search over HTTP. Every request gets its own Master,
// so requests never share a board or a random source.
type Server struct {
	maxCandidates int
	seed          uint64

	srvMu sync.Mutex
	srv   *http.Server
}

// NewServer returns a host whose searches look at no more than maxCandidates
// candidates per ply (0 for all of them). A non-zero seed makes every search
// reproducible.
func NewServer(maxCandidates int, seed uint64) *Server {
	return &Server{maxCandidates: maxCandidates, seed: seed}
}

// Listen serves until Close is called.
func (s *Server) Listen(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	s.srvMu.Lock()
	s.srv = srv
	s.srvMu.Unlock()
	defer func() {
		s.srvMu.Lock()
		s.srv = nil
		s.srvMu.Unlock()
	}()

	log.Info().Str("addr", addr).Msg("http listening")
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close(ctx context.Context) error {
	s.srvMu.Lock()
	srv := s.srv
	s.srvMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Hello!"))
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Post("/api/computer/master", s.handleMaster)
	return r
}

func (s *Server) handleMaster(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req communication.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("failed to decode request: %w", err))
		return
	}
	board, err := req.Board()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	options := []searcher.Option{
		searcher.WithGenerator(searcher.Capped(searcher.Exhaustive, s.maxCandidates)),
		searcher.WithMetrics(),
	}
	if s.seed != 0 {
		options = append(options, searcher.WithSeed(s.seed))
	}
	master := searcher.NewMaster(req.Owner, options...)

	candidate, ok, metric := master.Search(board, req.Pieces)
	log.Info().
		Str("request_id", middleware.GetReqID(r.Context())).
		Str("player", req.Owner.String()).
		Bool("passed", !ok).
		Int("first_ply", metric.FirstPly).
		Int("second_ply", metric.SecondPly).
		Dur("took", metric.Duration).
		Msg("master search")

	if !ok {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, communication.NewResponse(candidate))
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			log.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("took", time.Since(start)).
				Msg("http request")
		}()
		next.ServeHTTP(ww, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
