package preview

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"mdpad/internal/export"
	"mdpad/internal/logging"
)

type ServerConfig struct {
	Addr   string
	Hub    *Hub
	Export export.Options
	Title  string
	Logger logging.Logger
}

// Server serves the live HTML preview of the current document.
type Server struct {
	cfg    ServerConfig
	hub    *Hub
	log    logging.Logger
	router chi.Router
}

func NewServer(cfg ServerConfig) (*Server, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil, errors.New("preview: missing addr")
	}
	if cfg.Hub == nil {
		cfg.Hub = NewHub()
	}
	if strings.TrimSpace(cfg.Title) == "" {
		cfg.Title = "mdpad preview"
	}
	cfg.Export = cfg.Export.Normalize()
	s := &Server{cfg: cfg, hub: cfg.Hub, log: logging.OrNoOp(cfg.Logger)}
	s.router = s.buildRouter()
	return s, nil
}

func (s *Server) Addr() string { return strings.TrimSpace(s.cfg.Addr) }
func (s *Server) Hub() *Hub    { return s.hub }

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		MaxAge:         300,
	}))

	r.Get("/", s.handleIndex)
	r.Get("/render", s.handleRender)
	r.Get("/export", s.handleExport)
	r.Get("/ws", s.handleWS)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	vm := pageVM{Title: s.cfg.Title, Body: template.HTML(s.hub.Current())}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, vm); err != nil {
		s.log.Error("render preview page", "error", err)
		_, _ = io.WriteString(w, err.Error())
	}
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = io.WriteString(w, s.hub.Current())
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	opts := s.cfg.Export
	body := export.Render(s.hub.Current(), opts)
	w.Header().Set("Content-Type", opts.MediaType)
	w.Header().Set("Content-Disposition", export.ContentDisposition(opts))
	w.Header().Set("Content-Length", fmt.Sprint(len(body)))
	_, _ = w.Write(body)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("preview: listen %s: %w", s.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.log.Info("preview listening", "addr", ln.Addr().String())

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.hub.Close()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("preview: shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func requestLogger(l logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			l.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).String(),
			)
		})
	}
}
