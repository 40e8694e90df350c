package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lightsout/internal/log"
	"github.com/katalvlaran/lightsout/worker"
)

// Server routes HTTP and websocket traffic to a Dispatcher.
type Server struct {
	dispatcher *worker.Dispatcher
	opts       options
	mux        *http.ServeMux
}

// New returns a Server answering with d.
func New(d *worker.Dispatcher, opts ...Option) *Server {
	s := &Server{
		dispatcher: d,
		opts:       gatherOptions(opts),
		mux:        http.NewServeMux(),
	}
	s.mux.HandleFunc("POST /v1/jobs", s.handleJob)
	s.mux.HandleFunc("GET /v1/ws", s.handleWS)
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(s.opts.gatherer, promhttp.HandlerOpts{}))
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})

	return s
}

func (s *Server) logger() log.Logger {
	if s.opts.logger != nil {
		return s.opts.logger
	}

	return log.Root()
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run serves on the configured address until ctx is done, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.opts.addr,
		Handler: s.mux,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger().Info(log.Server, "listening", "addr", s.opts.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err, ok := <-errc:
		if ok {
			return fmt.Errorf("server: listen %s: %w", s.opts.addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	s.logger().Info(log.Server, "stopped")

	return nil
}

func (s *Server) handleJob(w http.ResponseWriter, r *http.Request) {
	var req worker.Request
	body := http.MaxBytesReader(w, r.Body, s.opts.maxRequestBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, worker.Response{Error: "invalid request: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, s.dispatcher.Do(r.Context(), req))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
