package views

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// page wraps a body-writing function in the shared HTML shell.
func page(site Site, meta PageMeta, body func(b *strings.Builder) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeHead(&b, site, meta)
		writeHeader(&b, site)
		if err := body(&b); err != nil {
			return err
		}
		writeFooter(&b, site)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Home renders the post index.
func Home(site Site, posts []Post) templ.Component {
	meta := PageMeta{
		Title:       site.Title,
		OGTitle:     site.OpenGraphTitle,
		Description: site.Description,
		URL:         site.URL,
		OGType:      "website",
		OGImage:     site.ImageURL,
	}
	return page(site, meta, func(b *strings.Builder) error {
		b.WriteString("<main>")
		for _, p := range posts {
			b.WriteString(`<article class="summary"><h2><a href="` + html.EscapeString(p.Permalink) + `">` + html.EscapeString(p.Title) + `</a></h2>`)
			fmt.Fprintf(b, `<time class="date" datetime="%s">%s</time>`, html.EscapeString(p.DateISO), html.EscapeString(p.Date))
			b.WriteString(`<p class="spoiler">` + html.EscapeString(p.Spoiler) + `</p></article>`)
		}
		b.WriteString("</main>")
		writeJsonLD(b, WebsiteJsonLD(site))
		return nil
	})
}

// Article renders a single post page.
func Article(site Site, post Post) templ.Component {
	meta := PageMeta{
		Title:       post.Title + " — " + site.Title,
		OGTitle:     post.Title,
		Description: post.Spoiler,
		URL:         post.Permalink,
		OGType:      "article",
		OGImage:     post.OGImage,
	}
	return page(site, meta, func(b *strings.Builder) error {
		b.WriteString(`<main><article class="post"><h1>` + html.EscapeString(post.Title) + `</h1>`)
		fmt.Fprintf(b, `<time class="date" datetime="%s">%s</time>`, html.EscapeString(post.DateISO), html.EscapeString(post.Date))
		if err := renderMarkdown(b, post.Body); err != nil {
			return err
		}
		if post.YouTube != "" {
			b.WriteString(`<div class="embed"><iframe src="` + html.EscapeString(YouTubeEmbedURL(post.YouTube)) + `" title="YouTube video" allowfullscreen loading="lazy"></iframe></div>`)
		}
		if post.Bluesky != "" {
			b.WriteString(`<p class="discuss"><a href="` + html.EscapeString(BlueskyURL(post.Bluesky)) + `" rel="noopener noreferrer">Discuss on Bluesky</a></p>`)
		}
		b.WriteString("</article></main>")
		writeJsonLD(b, BlogPostingJsonLD(site, post))
		return nil
	})
}

// NotFound renders the 404 page.
func NotFound(site Site) templ.Component {
	meta := PageMeta{Title: "Not found — " + site.Title, URL: site.URL, OGType: "website"}
	return page(site, meta, func(b *strings.Builder) error {
		b.WriteString(`<main><h1>Not found</h1><p>That page doesn’t exist. <a href="/">Back to the front page.</a></p></main>`)
		return nil
	})
}

// ServerError renders the 500 page.
func ServerError(site Site) templ.Component {
	meta := PageMeta{Title: "Something broke — " + site.Title, URL: site.URL, OGType: "website"}
	return page(site, meta, func(b *strings.Builder) error {
		b.WriteString(`<main><h1>Something broke</h1><p>Try again in a moment.</p></main>`)
		return nil
	})
}

func writeHead(b *strings.Builder, site Site, meta PageMeta) {
	esc := html.EscapeString
	b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
	if site.Generator != "" {
		b.WriteString(`<meta name="generator" content="` + esc(site.Generator) + `"/>`)
	}
	b.WriteString(`<title>` + esc(meta.Title) + `</title>`)
	if meta.Description != "" {
		b.WriteString(`<meta name="description" content="` + esc(meta.Description) + `"/>`)
	}
	b.WriteString(`<link rel="canonical" href="` + esc(meta.URL) + `"/>`)
	b.WriteString(`<link rel="icon" href="` + esc(site.FaviconURL) + `"/>`)
	b.WriteString(`<link rel="stylesheet" href="/public/style.css"/>`)
	b.WriteString(`<link rel="alternate" type="application/rss+xml" title="RSS" href="` + esc(site.RSSURL) + `"/>`)
	b.WriteString(`<link rel="alternate" type="application/atom+xml" title="Atom" href="` + esc(site.AtomURL) + `"/>`)
	b.WriteString(`<link rel="alternate" type="application/feed+json" title="JSON Feed" href="` + esc(site.JSONFeedURL) + `"/>`)
	ogTitle := meta.OGTitle
	if ogTitle == "" {
		ogTitle = meta.Title
	}
	b.WriteString(`<meta property="og:title" content="` + esc(ogTitle) + `"/>`)
	if meta.Description != "" {
		b.WriteString(`<meta property="og:description" content="` + esc(meta.Description) + `"/>`)
	}
	b.WriteString(`<meta property="og:url" content="` + esc(meta.URL) + `"/>`)
	b.WriteString(`<meta property="og:type" content="` + esc(meta.OGType) + `"/>`)
	if meta.OGImage != "" {
		b.WriteString(`<meta property="og:image" content="` + esc(meta.OGImage) + `"/>`)
		b.WriteString(`<meta name="twitter:card" content="summary_large_image"/>`)
	}
	if site.Analytics {
		b.WriteString(`<script src="/public/beacon.js" defer></script>`)
	}
	b.WriteString(`</head><body>`)
}

func writeHeader(b *strings.Builder, site Site) {
	b.WriteString(`<header class="site"><h1><a href="/">` + html.EscapeString(site.Title) + `</a></h1></header>`)
}

func writeFooter(b *strings.Builder, site Site) {
	b.WriteString(`<footer class="site"><p>`)
	if site.Author != "" {
		if site.AuthorLink != "" {
			b.WriteString(`<a href="` + html.EscapeString(site.AuthorLink) + `">` + html.EscapeString(site.Author) + `</a>`)
		} else {
			b.WriteString(html.EscapeString(site.Author))
		}
		b.WriteString(` — `)
	}
	b.WriteString(`<a href="` + html.EscapeString(site.RSSURL) + `">rss</a> · <a href="` + html.EscapeString(site.AtomURL) + `">atom</a> · <a href="` + html.EscapeString(site.JSONFeedURL) + `">json</a>`)
	b.WriteString(`</p></footer></body></html>`)
}

func writeJsonLD(b *strings.Builder, jsonLD string) {
	b.WriteString(`<script type="application/ld+json">` + jsonLD + `</script>`)
}
