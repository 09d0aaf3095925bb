// Package docsite is a documentation site engine built with Go, Echo, and templ.
// It serves a landing page, markdown docs, a sitemap and robots.txt, and
// exports the same pages as a static site.
//
// Page markup comes from the views package by default; callers can swap any
// page through ViewFuncs while docsite keeps routing, caching and the build
// pipeline.
package docsite

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"

	"github.com/eringen/docsite/log"
	"github.com/eringen/docsite/views"
)

// ViewFuncs holds the page components the engine calls when rendering.
type ViewFuncs struct {
	Home        func(cfg views.SiteConfig) templ.Component
	Doc         func(cfg views.SiteConfig, doc views.Doc, sidebar []views.Doc) templ.Component
	NotFound    func(cfg views.SiteConfig) templ.Component
	ServerError func(cfg views.SiteConfig) templ.Component
}

// DefaultViews returns the components of the views package.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:        views.Home,
		Doc:         views.DocPage,
		NotFound:    views.NotFound,
		ServerError: views.ServerError,
	}
}

// App is the central docsite application. It wires together the doc cache,
// handlers, middleware, metrics and page components.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Cache  *DocCache
	Views  ViewFuncs

	fs           afero.Fs
	registry     *prometheus.Registry
	docsLoaded   prometheus.Gauge
	watcher      *Watcher
	customRoutes []func(*App)

	initOnce sync.Once
	initErr  error
}

// New creates a new docsite App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:   cfg,
		Echo:     echo.New(),
		Views:    DefaultViews(),
		fs:       afero.NewOsFs(),
		registry: prometheus.NewRegistry(),
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	a.docsLoaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "docsite",
		Name:      "docs_loaded",
		Help:      "Number of docs in the most recent load.",
	})
	a.registry.MustRegister(a.docsLoaded)
	a.Cache = NewDocCache(a.loadDocs, a.Config.DocCacheTTL)
	return a
}

func (a *App) loadDocs() ([]views.Doc, error) {
	start := time.Now()
	docs, err := LoadDocs(a.fs, a.Config.DocsDir)
	if err != nil {
		return nil, err
	}
	a.docsLoaded.Set(float64(len(docs)))
	log.S().Debugw("docs loaded", "count", len(docs), "took", time.Since(start))
	return docs, nil
}

// view is the configuration handed to page components.
func (a *App) view() views.SiteConfig {
	return a.Config.View()
}

// Registry exposes the app's metrics registry.
func (a *App) Registry() *prometheus.Registry {
	return a.registry
}

func (a *App) init() error {
	a.initOnce.Do(func() {
		if err := a.Config.Validate(); err != nil {
			a.initErr = err
			return
		}
		a.setupMiddleware()
		a.setupRoutes()
		for _, fn := range a.customRoutes {
			fn(a)
		}
	})
	return a.initErr
}

// Handler returns the fully wired HTTP handler.
func (a *App) Handler() (http.Handler, error) {
	if err := a.init(); err != nil {
		return nil, err
	}
	return a.Echo, nil
}

// Watch invalidates the doc cache whenever a file below the docs directory
// changes on disk. dir is the OS path of the docs directory.
func (a *App) Watch(ctx context.Context, dir string) error {
	w, err := NewWatcher(dir, a.Cache)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		w.Close()
		return err
	}
	a.watcher = w
	return nil
}

// Start serves HTTP on Config.Addr until ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	if err := a.init(); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.S().Infow("starting server", "addr", a.Config.Addr, "base_url", a.Config.BaseURL)
		errCh <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("docsite: serve: %w", err)
	case <-ctx.Done():
		log.S().Info("stopping server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return a.Echo.Shutdown(shutdownCtx)
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}

// basePrefix is BaseURL without its trailing slash, suitable for echo groups.
func (a *App) basePrefix() string {
	return strings.TrimSuffix(a.Config.BaseURL, "/")
}
