package plume

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rlevack/plume/views"
)

// loadPosts re-reads the posts directory. Every handler that needs posts
// calls this fresh; results are never cached between requests.
func (a *App) loadPosts() ([]Post, error) {
	return LoadPosts(a.Config.PostsDir, !a.Config.SkipBrokenPosts)
}

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.loadPosts()
	if err != nil {
		return err
	}
	return Render(c, views.Home(a.viewSite(), a.viewPosts(posts)))
}

func (a *App) handlePost(c echo.Context) error {
	posts, err := a.loadPosts()
	if err != nil {
		return err
	}
	post, ok := FindPost(posts, c.Param("slug"))
	if !ok {
		return RenderStatus(c, http.StatusNotFound, views.NotFound(a.viewSite()))
	}
	return Render(c, views.Article(a.viewSite(), a.viewPost(post)))
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.loadPosts()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleOGCard(c echo.Context) error {
	raw := c.Param("name")
	if !strings.HasSuffix(raw, ".png") {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	name := strings.TrimSuffix(raw, ".png")
	if name == "" {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	title, subtitle := a.Config.Title, a.Config.Description
	if name != "site" {
		posts, err := a.loadPosts()
		if err != nil {
			return err
		}
		post, ok := FindPost(posts, name)
		if !ok {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		title, subtitle = post.Title, a.Config.Title
	}

	data, err := RenderOGCard(title, subtitle)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", data)
}

func (a *App) handleBeacon(c echo.Context) error {
	path := c.FormValue("path")
	if !strings.HasPrefix(path, "/") || strings.Contains(path, "..") {
		return c.NoContent(http.StatusBadRequest)
	}
	if err := a.analyticsStore.RecordOnce(c.RealIP(), path); err != nil {
		c.Logger().Errorf("record pageview: %v", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (a *App) handleStats(c echo.Context) error {
	totals, err := a.analyticsStore.Totals()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, totals)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.viewSite()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.viewSite()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// viewSite maps the engine config onto the view model the templates consume.
func (a *App) viewSite() views.Site {
	cfg := a.Config
	rss, atom, jsonFeed := FeedLinks(cfg)
	ogTitle := cfg.OpenGraphTitle
	if ogTitle == "" {
		ogTitle = cfg.Title
	}
	return views.Site{
		Title:          cfg.Title,
		Description:    cfg.Description,
		Author:         cfg.Author,
		AuthorLink:     cfg.AuthorLink,
		URL:            BuildURL(cfg.URL),
		OpenGraphTitle: ogTitle,
		FaviconURL:     cfg.FaviconURL,
		ImageURL:       cfg.ImageURL,
		Generator:      cfg.Generator,
		RSSURL:         rss,
		AtomURL:        atom,
		JSONFeedURL:    jsonFeed,
		Analytics:      cfg.AnalyticsEnabled,
	}
}

func (a *App) viewPost(p Post) views.Post {
	date, dateISO := p.Date, p.Date
	if !p.Published.IsZero() {
		date = p.Published.Format("January 2, 2006")
		dateISO = p.Published.Format("2006-01-02")
	}
	return views.Post{
		Slug:      p.Slug,
		Title:     p.Title,
		Date:      date,
		DateISO:   dateISO,
		Spoiler:   p.Spoiler,
		YouTube:   p.YouTube,
		Bluesky:   p.Bluesky,
		Body:      p.Body,
		Permalink: BuildURL(a.Config.URL, p.Slug),
		OGImage:   FileURL(a.Config.URL, "og/"+p.Slug+".png"),
	}
}

func (a *App) viewPosts(posts []Post) []views.Post {
	out := make([]views.Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, a.viewPost(p))
	}
	return out
}
