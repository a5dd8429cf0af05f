package views

import (
	"encoding/json"
	"strings"
)

// YouTubeEmbedURL resolves a youtube front-matter value to an embeddable URL.
// Accepts either a bare video id or a full URL.
func YouTubeEmbedURL(v string) string {
	if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
		return v
	}
	return "https://www.youtube.com/embed/" + v
}

// BlueskyURL resolves a bluesky front-matter value to a discussion URL.
// Accepts either a full URL or a profile/post path.
func BlueskyURL(v string) string {
	if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
		return v
	}
	return "https://bsky.app/profile/" + strings.TrimPrefix(v, "/")
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block for the home page.
func WebsiteJsonLD(site Site) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.Title,
		"url":      site.URL,
	}
	if site.Description != "" {
		data["description"] = site.Description
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD produces a Schema.org BlogPosting JSON-LD block for a post.
func BlogPostingJsonLD(site Site, post Post) string {
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.Spoiler,
		"datePublished": post.DateISO,
		"url":           post.Permalink,
		"image":         post.OGImage,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   post.Permalink,
		},
	}
	if site.Author != "" {
		author := map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
		if site.AuthorLink != "" {
			author["url"] = site.AuthorLink
		}
		data["author"] = author
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
