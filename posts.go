package plume

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/araddon/dateparse"
)

// ErrBadFrontmatter is returned when a post's front-matter block cannot be parsed.
var ErrBadFrontmatter = errors.New("malformed front matter")

// ErrInvalidPost is returned when a required front-matter field is missing.
var ErrInvalidPost = errors.New("missing required front-matter field")

// LoadPosts reads every post under dir (one subdirectory per post, each
// containing an index.md) and returns them sorted newest-first.
//
// With strict set, a single unreadable or invalid post fails the whole load;
// otherwise the offending slug is skipped and the rest are returned.
//
// Sort order is deterministic: posts are compared by parsed date descending,
// posts whose date does not parse sort last, and ties keep the directory-scan
// order of os.ReadDir (lexical by slug).
func LoadPosts(dir string, strict bool) ([]Post, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("plume: read posts dir %q: %w", dir, err)
	}

	var posts []Post
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		post, err := readPost(dir, entry.Name())
		if err != nil {
			if strict {
				return nil, err
			}
			continue
		}
		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Published.After(posts[j].Published)
	})
	return posts, nil
}

// readPost reads and validates a single post. The returned errors always
// carry the slug so the caller can report which post broke the load.
func readPost(dir, slug string) (Post, error) {
	raw, err := os.ReadFile(filepath.Join(dir, slug, "index.md"))
	if err != nil {
		return Post{}, fmt.Errorf("plume: read post %q: %w", slug, err)
	}

	var post Post
	body, err := frontmatter.Parse(bytes.NewReader(raw), &post)
	if err != nil {
		return Post{}, fmt.Errorf("plume: post %q: %w: %v", slug, ErrBadFrontmatter, err)
	}
	post.Slug = slug
	post.Body = string(body)

	required := []struct{ name, value string }{
		{"title", post.Title},
		{"date", post.Date},
		{"spoiler", post.Spoiler},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return Post{}, fmt.Errorf("plume: post %q: %w: %s", slug, ErrInvalidPost, f.name)
		}
	}

	// An unparsable date is not an error: the post still loads, it just
	// sorts last. Only ordering depends on this value.
	if t, err := dateparse.ParseAny(post.Date); err == nil {
		post.Published = t.UTC()
	}
	return post, nil
}

// FindPost returns the post with the given slug from an already-loaded list.
func FindPost(posts []Post, slug string) (Post, bool) {
	for _, p := range posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}
