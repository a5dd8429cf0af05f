// Package plume is a personal blog and feed engine built with Go and Echo.
// Posts live on disk as markdown files with YAML front matter, one directory
// per post. plume serves the page shell, Atom/RSS/JSON feeds, a sitemap,
// Open Graph cards, and optional SQLite-backed pageview counts.
//
// There is no admin surface and no post database: the posts directory is the
// source of truth and every request re-reads it.
package plume

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/rlevack/plume/analytics"
)

// App is the central plume application. It wires together the config,
// Echo instance, middleware, routes, and the optional analytics store.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo

	analyticsStore *analytics.Store
	customRoutes   []func(*App)
	staticDir      string
}

// New creates a new plume App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the analytics store, middleware, and routes, then starts
// the server. It blocks until the server stops.
func (a *App) Start() error {
	if _, err := os.Stat(a.Config.PostsDir); err != nil {
		return fmt.Errorf("plume: posts dir: %w", err)
	}

	if a.Config.AnalyticsEnabled {
		store, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("plume: init analytics: %w", err)
		}
		a.analyticsStore = store
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded framework assets (style.css, beacon.js) are served under
	// /public/ and fall through to the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/style.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/beacon.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	// User's static assets
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Feeds and sitemap
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/rss.xml", a.handleRSS)
	e.GET("/atom.xml", a.handleAtom)
	e.GET("/feed.json", a.handleJSONFeed)

	// Open Graph cards
	e.GET("/og/:name", a.handleOGCard)

	// Analytics
	if a.Config.AnalyticsEnabled {
		e.POST("/stats/beacon", a.handleBeacon)
		e.GET("/stats.json", a.handleStats)
	}

	// Pages
	e.GET("/", a.handleHome)
	e.GET("/:slug/", a.handlePost)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.analyticsStore != nil {
		return a.analyticsStore.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("plume: required environment variable %s is not set", key)
	}
	return v
}
