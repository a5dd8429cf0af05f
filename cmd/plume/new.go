package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/rlevack/plume"
)

// postTemplate is the front-matter skeleton written for new posts.
const postTemplate = `---
title: {{.Title}}
date: {{.Date}}
spoiler: TODO write a one-line teaser
---

Write the post here.
`

// postData holds the template variables for a scaffolded post.
type postData struct {
	Title string
	Date  string
}

func runNew(name string) error {
	slug := plume.Slugify(name)
	if slug == "" {
		return fmt.Errorf("cannot derive a slug from %q", name)
	}

	postsDir := plume.EnvOr("POSTS_DIR", "posts")
	dir := filepath.Join(postsDir, slug)
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("post %q already exists", slug)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data := postData{
		Title: toTitle(slug),
		Date:  time.Now().Format("2006-01-02"),
	}

	tmpl, err := template.New("post").Parse(postTemplate)
	if err != nil {
		return fmt.Errorf("parse post template: %w", err)
	}

	outPath := filepath.Join(dir, "index.md")
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("execute post template: %w", err)
	}

	fmt.Printf("created %s\n", outPath)
	return nil
}

// toTitle converts a hyphenated slug to a title-case string.
// e.g. "my-first-post" -> "My First Post"
func toTitle(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
