// Package server is the wwn preview server: it serves a directory of
// generated pages and tells open pages to reload when files change.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Config holds server configuration.
type Config struct {
	Port     int
	Dir      string // directory of generated pages
	AllowAll bool   // allow all CORS origins
	Watch    bool   // reload open pages when files under Dir change
	// Debounce coalesces bursts of file events into one reload.
	Debounce time.Duration
}

// Server is the preview server.
type Server struct {
	cfg        Config
	log        *slog.Logger
	hub        *Hub
	router     chi.Router
	httpServer *http.Server
}

// New creates a preview server for cfg.Dir.
func New(cfg Config, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		cfg: cfg,
		log: log,
		hub: NewHub(log),
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// The reload socket is long-lived, so it stays outside the timeout.
	r.Get("/ws/reload", s.hub.ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Logger)
		r.Use(middleware.Timeout(60 * time.Second))
		r.Handle("/*", newStaticHandler(s.cfg.Dir, s.cfg.Watch))
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Hub returns the live-reload hub.
func (s *Server) Hub() *Hub { return s.hub }

// URL returns the address pages are served at.
func (s *Server) URL() string { return fmt.Sprintf("http://localhost:%d", s.cfg.Port) }

// Start serves until ctx is cancelled, watching cfg.Dir when configured.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	watchErr := make(chan error, 1)
	if s.cfg.Watch {
		go func() {
			err := s.watch(ctx)
			if err != nil {
				s.log.Error("live reload disabled", "dir", s.cfg.Dir, "err", err)
			}
			watchErr <- err
		}()
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		s.Shutdown(shutdownCtx)
	}()

	s.log.Info("serving pages", "url", s.URL(), "dir", s.cfg.Dir, "watch", s.cfg.Watch)
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	cancel()
	if s.cfg.Watch {
		if werr := <-watchErr; werr != nil && err == nil {
			err = werr
		}
	}
	return err
}

// Shutdown gracefully shuts down the server and closes reload sockets.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
