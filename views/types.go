package views

// Site holds site-wide settings the templates consume. The engine maps its
// SiteConfig onto this so views never import the root package.
type Site struct {
	Title          string
	Description    string
	Author         string
	AuthorLink     string
	URL            string // canonical base URL, trailing slash
	OpenGraphTitle string // og:title for the home page
	FaviconURL     string
	ImageURL       string // site-level og:image
	Generator      string // engine label for the generator meta tag
	RSSURL         string
	AtomURL        string
	JSONFeedURL    string
	Analytics      bool // include the pageview beacon script
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	OGTitle     string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	OGImage     string
}

// Post is the view model for a single post.
type Post struct {
	Slug      string
	Title     string
	Date      string // display form, e.g. "June 1, 2024"
	DateISO   string // machine form for JSON-LD and <time datetime>
	Spoiler   string
	YouTube   string // optional embed id or URL
	Bluesky   string // optional discussion reference
	Body      string // raw markdown
	Permalink string
	OGImage   string
}
