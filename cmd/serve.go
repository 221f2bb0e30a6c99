package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/sells-group/agency-dashboard/internal/config"
	"github.com/sells-group/agency-dashboard/internal/dashboard"
	"github.com/sells-group/agency-dashboard/internal/web"
)

var servePort int

// pageBuilder builds one dashboard page per call.
type pageBuilder interface {
	Build(ctx context.Context) (*dashboard.Page, error)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if servePort != 0 {
			cfg.Server.Port = servePort
		}
		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		renderer, err := web.NewRenderer()
		if err != nil {
			return err
		}
		d := dashboard.New(dashboard.OptionsFromConfig(cfg))

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:           buildRouter(d, renderer, cfg.Server),
			ReadHeaderTimeout: 5 * time.Second,
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			zap.L().Info("starting server", zap.Int("port", cfg.Server.Port))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return eris.Wrap(err, "server listen")
			}
			return nil
		})
		// Graceful shutdown
		g.Go(func() error {
			<-gctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return eris.Wrap(err, "server shutdown")
			}
			return nil
		})

		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

// buildRouter wires the dashboard page, the JSON views and the health check.
func buildRouter(b pageBuilder, renderer *web.Renderer, sc config.ServerConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		if sc.RateLimit > 0 {
			r.Use(rateLimit(rate.NewLimiter(rate.Limit(sc.RateLimit), sc.RateBurst)))
		}

		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			page, ok := buildPage(w, req, b)
			if !ok {
				return
			}
			var buf bytes.Buffer
			if err := renderer.Render(&buf, page); err != nil {
				zap.L().Error("dashboard render failed", zap.String("build_id", page.BuildID), zap.Error(err))
				http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = buf.WriteTo(w)
		})

		r.Route("/api", func(r chi.Router) {
			origins := sc.CORSOrigins
			if len(origins) == 0 {
				origins = []string{"*"}
			}
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: origins,
				AllowedMethods: []string{http.MethodGet, http.MethodOptions},
				AllowedHeaders: []string{"Accept", "Content-Type"},
				MaxAge:         300,
			}))

			r.Get("/agencies", pageJSON(b, func(p *dashboard.Page) any { return p.Agencies }))
			r.Get("/table", pageJSON(b, func(p *dashboard.Page) any { return p.Table }))
			r.Get("/chart", pageJSON(b, func(p *dashboard.Page) any { return p.Chart }))
			r.Get("/map", pageJSON(b, func(p *dashboard.Page) any { return p.Map }))
		})
	})

	return r
}

// buildPage runs the pipeline for one request and answers 500 on failure.
func buildPage(w http.ResponseWriter, r *http.Request, b pageBuilder) (*dashboard.Page, bool) {
	if b == nil {
		http.Error(w, "dashboard not configured", http.StatusServiceUnavailable)
		return nil, false
	}
	page, err := b.Build(r.Context())
	if err != nil {
		zap.L().Error("dashboard build failed",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		http.Error(w, "failed to build dashboard", http.StatusInternalServerError)
		return nil, false
	}
	return page, true
}

func pageJSON(b pageBuilder, view func(*dashboard.Page) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := buildPage(w, r, b)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, view(page))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("write json response", zap.Error(err))
	}
}

func rateLimit(l *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		zap.L().Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
