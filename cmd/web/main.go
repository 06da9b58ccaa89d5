// cmd/web/main.go
//
// Product form server – HTTP entry point.
//
// Start-up
// --------
//
//  1. Load env vars (system-wide file → .env fallback).
//
//  2. Load configuration (conf/global.yaml + PRODUCTFORM_* overrides).
//
//  3. Start daily rotating logger (tees to console when running in a TTY).
//
//  4. Build the product list and, when api.preload is set, seed it from
//     FetchProducts.
//
//  5. Choose the submitter: the API client when api.base_url is set,
//     otherwise local-only mode.
//
//  6. Build the session store (one SchemaForm + one ManualForm per visitor).
//
//  7. Router: request info → security headers → optional HTTPS redirect →
//     components, plus Prometheus /metrics.
//
//  8. Serve until SIGINT/SIGTERM, then shut down gracefully.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	productcomp "github.com/yanizio/productform/components/product"
	"github.com/yanizio/productform/internal/catalog"
	"github.com/yanizio/productform/internal/component"
	"github.com/yanizio/productform/internal/config"
	"github.com/yanizio/productform/internal/form"
	"github.com/yanizio/productform/internal/logger"
	"github.com/yanizio/productform/internal/middleware"
	"github.com/yanizio/productform/internal/productapi"
	"github.com/yanizio/productform/internal/requestinfo"
	"github.com/yanizio/productform/internal/server"
	"github.com/yanizio/productform/internal/session"
)

const (
	serverEnvPath   = "/usr/local/etc/productform/global.env"
	shutdownTimeout = 10 * time.Second
)

// loadEnv prefers the system-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	logger.Console("info") // bootstrap until the file logger is up

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logOut, err := logger.New(cfg.LogDir(), cfg.Log.Level, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer func() { _ = logOut.Sync() }()

	if cfg.HTTP.CSRFKey != "" {
		if err := form.SetCSRFKey(cfg.HTTP.CSRFKey); err != nil {
			logOut.Fatalf("csrf key: %v", err)
		}
	}
	if err := form.RegisterForms([]string{cfg.Paths.Root}); err != nil {
		logOut.Fatalf("load form definitions: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//
	// ── 1.  Product list and submitter ──────────────────────────────────
	//
	list := catalog.New()
	var sub form.Submitter = &productcomp.LocalSubmitter{List: list}

	if cfg.API.BaseURL != "" {
		var apiOpts []productapi.Option
		if cfg.API.Timeout > 0 {
			apiOpts = append(apiOpts, productapi.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}))
		}
		client, err := productapi.New(cfg.API.BaseURL, apiOpts...)
		if err != nil {
			logOut.Fatalf("product api: %v", err)
		}
		sub = &productcomp.APISubmitter{API: client, List: list}

		if cfg.API.Preload {
			res := client.FetchProducts(ctx)
			if res.Success {
				list.Seed(res.Data)
				logOut.Infow("product list preloaded", "count", len(res.Data))
			} else {
				logOut.Warnw("product list preload failed", "error", res.Error)
			}
		}
	} else {
		logOut.Infow("api.base_url not set, running in local-only mode")
	}

	//
	// ── 2.  Sessions and components ─────────────────────────────────────
	//
	opts := form.Options{ResetDelay: cfg.Form.ResetDelay}
	sessions := session.New(cfg.Session.Capacity, productcomp.NewWorkspace(sub, opts))
	component.Register(productcomp.New(sessions, list, cfg.Form.ResetDelay))

	//
	// ── 3.  Router ──────────────────────────────────────────────────────
	//
	r := chi.NewRouter()
	r.Use(requestinfo.Enrich)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Security)
	r.Use(middleware.ForceHTTPS(cfg.HTTP.ForceHTTPS))
	r.Handle("/metrics", promhttp.Handler())
	if err := component.MountAll(r); err != nil {
		logOut.Fatalf("mount components: %v", err)
	}

	//
	// ── 4.  Serve until signalled ───────────────────────────────────────
	//
	srv := server.New(cfg.HTTP, r)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logOut.Infow("shutting down")
		return srv.Shutdown(shutCtx)
	})

	if err := g.Wait(); err != nil {
		logOut.Fatalf("http server: %v", err)
	}
	logOut.Infow("stopped")
}
