// Package landing serves the FashFlow marketing site with Echo. Pages are
// built with gomponents, rendered through templ's Component interface, and
// cached in memory with strong ETags.
//
// Callers may replace any template through ViewFuncs; the App owns routing,
// middleware, static assets and the generated Open Graph image.
package landing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/fashflow/landing/views"
)

// ViewFuncs holds the templates the App calls when rendering pages.
type ViewFuncs struct {
	Home        func(p views.Page) templ.Component
	NotFound    func(p views.Page) templ.Component
	ServerError func(p views.Page) templ.Component
}

// DefaultViews returns the built-in landing page templates.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:        func(p views.Page) templ.Component { return Component(views.HomePage(p)) },
		NotFound:    func(p views.Page) templ.Component { return Component(views.NotFound(p)) },
		ServerError: func(p views.Page) templ.Component { return Component(views.ServerError(p)) },
	}
}

// App is the central landing application. It wires together the page
// cache, asset manifest, handlers, middleware and templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Cache  *PageCache
	Assets *Manifest
	Views  ViewFuncs
	Meta   views.Metadata

	limiter      *RequestLimiter
	customRoutes []func(*App)
	ready        bool
}

// New creates an App with the given configuration. Defaults are applied to
// empty config fields.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Cache:  NewPageCache(cfg.PageCacheTTL),
		Assets: NewManifest(cfg.StaticDir, embeddedAssets()),
		Views:  DefaultViews(),
		Meta:   views.DefaultMetadata(cfg.URL),
	}
	a.Meta.OpenGraph.SiteName = cfg.Name
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Setup validates the config, hashes assets and mounts middleware and
// routes. Start calls it; tests call it directly and drive a.Echo.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if err := a.Config.Validate(); err != nil {
		return err
	}
	a.Echo.Logger.SetLevel(logLevel(a.Config.LogLevel))
	if err := a.Assets.Build(); err != nil {
		return err
	}
	if a.Config.RateLimit > 0 {
		a.limiter = NewRequestLimiter(a.Config.RateLimit, a.Config.RateWindow)
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start sets the App up and serves until ctx is cancelled, then shuts the
// server down gracefully.
func (a *App) Start(ctx context.Context) error {
	if err := a.Setup(); err != nil {
		return err
	}
	if a.Config.WatchAssets {
		if err := a.watchAssets(ctx); err != nil {
			return err
		}
	}

	errc := make(chan error, 1)
	go func() {
		a.Echo.Logger.Infof("serving %s on %s", a.Config.URL, a.Config.Addr)
		errc <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("landing: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("landing: shutdown: %w", err)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	getHead := []string{http.MethodGet, http.MethodHead}
	e.Match(getHead, "/public/*", a.handleAsset)
	e.Match(getHead, "/favicon.ico", a.handleFavicon)
	e.Match(getHead, "/og.png", a.handleOGImage)
	e.Match(getHead, "/robots.txt", a.handleRobots)
	e.Match(getHead, "/sitemap.xml", a.handleSitemap)
	e.Match(getHead, "/healthz", handleHealth)
	e.Match(getHead, "/", a.handleHome)

	if a.Config.Profiling {
		pprof.Register(e)
	}
}

// Page returns the view model shared by every full-document template.
func (a *App) Page() views.Page {
	return views.Page{Meta: a.Meta, Asset: a.Assets.URL, Has: a.Assets.Has}
}

// Close releases background resources.
func (a *App) Close() error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	return nil
}

func logLevel(s string) log.Lvl {
	switch s {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
