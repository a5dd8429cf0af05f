package plume

import (
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/labstack/echo/v4"
)

// FeedLinks returns the canonical URL of each feed serialization:
// <base>rss.xml, <base>atom.xml and <base>feed.json.
func FeedLinks(cfg SiteConfig) (rss, atom, json string) {
	return FileURL(cfg.URL, "rss.xml"),
		FileURL(cfg.URL, "atom.xml"),
		FileURL(cfg.URL, "feed.json")
}

// BuildFeed assembles a syndication feed from the site identity and an
// already-sorted post list. One entry per post, full history, no caps.
// An empty post list yields a valid feed with zero entries.
func BuildFeed(cfg SiteConfig, posts []Post) *feeds.Feed {
	base := BuildURL(cfg.URL)
	feed := &feeds.Feed{
		Title:       cfg.Title,
		Link:        &feeds.Link{Href: base},
		Description: cfg.Description,
		Author:      &feeds.Author{Name: cfg.Author},
		Image:       &feeds.Image{Url: cfg.ImageURL, Title: cfg.Title, Link: base},
		Copyright:   "All rights reserved " + time.Now().UTC().Format("2006") + ", " + cfg.Author,
		Created:     time.Now().UTC(),
	}
	if len(posts) > 0 {
		// Posts arrive newest-first, so the feed timestamp is the latest post.
		feed.Updated = posts[0].Published
	}

	for _, p := range posts {
		postURL := BuildURL(cfg.URL, p.Slug)
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          postURL,
			Title:       p.Title,
			Link:        &feeds.Link{Href: postURL},
			Description: p.Spoiler,
			Author:      &feeds.Author{Name: cfg.Author},
			Created:     p.Published,
		})
	}
	return feed
}

func (a *App) handleRSS(c echo.Context) error {
	feed, err := a.buildFeed()
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return feed.WriteRss(c.Response())
}

func (a *App) handleAtom(c echo.Context) error {
	feed, err := a.buildFeed()
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/atom+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return feed.WriteAtom(c.Response())
}

func (a *App) handleJSONFeed(c echo.Context) error {
	feed, err := a.buildFeed()
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/feed+json; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return feed.WriteJSON(c.Response())
}

// buildFeed re-reads the posts directory on every call. Feeds are
// request-scoped by design: no cache, no shared state between requests.
func (a *App) buildFeed() (*feeds.Feed, error) {
	posts, err := a.loadPosts()
	if err != nil {
		return nil, err
	}
	return BuildFeed(a.Config, posts), nil
}
