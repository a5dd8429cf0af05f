package plume

// SiteConfig holds all configuration for a plume site.
type SiteConfig struct {
	Title       string // Site title (default "Blog")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for feeds and meta tags
	Author      string // Author name for feeds and JSON-LD
	AuthorLink  string // Author homepage, used in feeds and the footer

	OpenGraphTitle string // og:title for the home page; falls back to Title
	FaviconURL     string // Absolute favicon URL (default <URL>/favicon.svg)
	ImageURL       string // Site image for feed readers (default <URL>/og/site.png)
	Generator      string // Feed generator label (default "plume")

	Addr     string // Listen address (default ":3000")
	PostsDir string // Posts root, one subdirectory per post (default "posts")

	// SkipBrokenPosts switches the loader from abort-all to skip-and-continue
	// when a single post is unreadable or fails validation.
	SkipBrokenPosts bool

	AnalyticsEnabled      bool   // Enable pageview analytics
	AnalyticsDatabasePath string // Analytics SQLite path (default "data/analytics.db")
}

func (c *SiteConfig) setDefaults() {
	if c.Title == "" {
		c.Title = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.PostsDir == "" {
		c.PostsDir = "posts"
	}
	if c.Generator == "" {
		c.Generator = "plume"
	}
	if c.FaviconURL == "" {
		c.FaviconURL = FileURL(c.URL, "favicon.svg")
	}
	if c.ImageURL == "" {
		c.ImageURL = FileURL(c.URL, "og/site.png")
	}
	if c.AnalyticsDatabasePath == "" {
		c.AnalyticsDatabasePath = "data/analytics.db"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}
