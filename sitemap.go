package plume

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func buildSitemap(cfg SiteConfig, posts []Post) sitemapURLSet {
	urls := []sitemapURL{
		{Loc: BuildURL(cfg.URL)},
	}
	for _, p := range posts {
		lastMod := ""
		if !p.Published.IsZero() {
			lastMod = p.Published.Format("2006-01-02")
		}
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(cfg.URL, p.Slug),
			LastMod: lastMod,
		})
	}
	return sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
}

func (a *App) renderSitemap(c echo.Context, posts []Post) error {
	sitemap := buildSitemap(a.Config, posts)
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
