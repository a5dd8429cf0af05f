package plume

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writePost(t *testing.T, dir, slug, content string) {
	t.Helper()
	postDir := filepath.Join(dir, slug)
	if err := os.MkdirAll(postDir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", postDir, err)
	}
	if err := os.WriteFile(filepath.Join(postDir, "index.md"), []byte(content), 0o644); err != nil {
		t.Fatalf("write index.md: %v", err)
	}
}

func frontMatter(title, date, spoiler string) string {
	return "---\ntitle: " + title + "\ndate: " + date + "\nspoiler: " + spoiler + "\n---\n\nBody text.\n"
}

func TestLoadPostsOrdering(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "middle", frontMatter("Middle", "2023-01-01", "m"))
	writePost(t, dir, "newest", frontMatter("Newest", "2024-06-01", "n"))
	writePost(t, dir, "oldest", frontMatter("Oldest", "2022-05-05", "o"))

	posts, err := LoadPosts(dir, true)
	if err != nil {
		t.Fatalf("LoadPosts failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("got %d posts, want 3", len(posts))
	}
	for i := 0; i < len(posts)-1; i++ {
		if posts[i].Published.Before(posts[i+1].Published) {
			t.Errorf("posts[%d] (%s) is older than posts[%d] (%s)",
				i, posts[i].Date, i+1, posts[i+1].Date)
		}
	}
	if posts[0].Slug != "newest" || posts[2].Slug != "oldest" {
		t.Errorf("order = [%s %s %s], want [newest middle oldest]",
			posts[0].Slug, posts[1].Slug, posts[2].Slug)
	}
}

func TestLoadPostsTwoPostScenario(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "old", frontMatter("Old", "2023-01-01", "s"))
	writePost(t, dir, "new", frontMatter("New", "2024-06-01", "s"))

	posts, err := LoadPosts(dir, true)
	if err != nil {
		t.Fatalf("LoadPosts failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}
	if posts[0].Slug != "new" || posts[1].Slug != "old" {
		t.Errorf("order = [%s %s], want [new old]", posts[0].Slug, posts[1].Slug)
	}
}

func TestLoadPostsFieldMapping(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "a", "---\ntitle: A\ndate: 2024-01-01\nspoiler: S\nyoutube: dQw4w9WgXcQ\nbluesky: jane.example.com/post/abc\n---\n\nBody text.\n")

	posts, err := LoadPosts(dir, true)
	if err != nil {
		t.Fatalf("LoadPosts failed: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(posts))
	}
	p := posts[0]
	if p.Slug != "a" {
		t.Errorf("Slug = %q, want %q", p.Slug, "a")
	}
	if p.Title != "A" || p.Spoiler != "S" {
		t.Errorf("Title/Spoiler = %q/%q, want A/S", p.Title, p.Spoiler)
	}
	if p.YouTube != "dQw4w9WgXcQ" {
		t.Errorf("YouTube = %q", p.YouTube)
	}
	if p.Bluesky != "jane.example.com/post/abc" {
		t.Errorf("Bluesky = %q", p.Bluesky)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !p.Published.Equal(want) {
		t.Errorf("Published = %v, want %v", p.Published, want)
	}
	if !strings.Contains(p.Body, "Body text.") {
		t.Errorf("Body = %q, want it to contain the markdown body", p.Body)
	}
}

func TestLoadPostsEmptyDir(t *testing.T) {
	posts, err := LoadPosts(t.TempDir(), true)
	if err != nil {
		t.Fatalf("LoadPosts failed: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("got %d posts, want 0", len(posts))
	}
}

func TestLoadPostsIgnoresPlainFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatalf("write stray file: %v", err)
	}
	writePost(t, dir, "a", frontMatter("A", "2024-01-01", "s"))

	posts, err := LoadPosts(dir, true)
	if err != nil {
		t.Fatalf("LoadPosts failed: %v", err)
	}
	if len(posts) != 1 {
		t.Errorf("got %d posts, want 1", len(posts))
	}
}

func TestLoadPostsMissingIndexStrict(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "good", frontMatter("Good", "2024-01-01", "s"))
	if err := os.MkdirAll(filepath.Join(dir, "broken"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, err := LoadPosts(dir, true)
	if err == nil {
		t.Fatal("expected error for missing index.md in strict mode")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadPostsMissingIndexSkipped(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "good", frontMatter("Good", "2024-01-01", "s"))
	if err := os.MkdirAll(filepath.Join(dir, "broken"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	posts, err := LoadPosts(dir, false)
	if err != nil {
		t.Fatalf("LoadPosts failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "good" {
		t.Errorf("got %v, want just the good post", posts)
	}
}

func TestLoadPostsMissingRequiredField(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no title", "---\ndate: 2024-01-01\nspoiler: s\n---\nbody\n"},
		{"no date", "---\ntitle: T\nspoiler: s\n---\nbody\n"},
		{"no spoiler", "---\ntitle: T\ndate: 2024-01-01\n---\nbody\n"},
		{"no front matter at all", "just a body\n"},
	}
	for _, tt := range tests {
		dir := t.TempDir()
		writePost(t, dir, "p", tt.content)
		_, err := LoadPosts(dir, true)
		if !errors.Is(err, ErrInvalidPost) {
			t.Errorf("%s: got %v, want ErrInvalidPost", tt.name, err)
		}
	}
}

func TestLoadPostsBadFrontmatter(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "p", "---\ntitle: [broken\n---\nbody\n")

	_, err := LoadPosts(dir, true)
	if !errors.Is(err, ErrBadFrontmatter) {
		t.Errorf("got %v, want ErrBadFrontmatter", err)
	}
}

func TestLoadPostsUnparsableDateSortsLast(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "dated", frontMatter("Dated", "2020-01-01", "s"))
	writePost(t, dir, "undated", frontMatter("Undated", "someday", "s"))

	posts, err := LoadPosts(dir, true)
	if err != nil {
		t.Fatalf("LoadPosts failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}
	if posts[1].Slug != "undated" {
		t.Errorf("unparsable date should sort last, got order [%s %s]",
			posts[0].Slug, posts[1].Slug)
	}
	if !posts[1].Published.IsZero() {
		t.Errorf("Published for unparsable date should be zero, got %v", posts[1].Published)
	}
}

func TestLoadPostsTieKeepsScanOrder(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "alpha", frontMatter("Alpha", "2024-01-01", "s"))
	writePost(t, dir, "beta", frontMatter("Beta", "2024-01-01", "s"))

	posts, err := LoadPosts(dir, true)
	if err != nil {
		t.Fatalf("LoadPosts failed: %v", err)
	}
	if posts[0].Slug != "alpha" || posts[1].Slug != "beta" {
		t.Errorf("ties should keep directory-scan order, got [%s %s]",
			posts[0].Slug, posts[1].Slug)
	}
}

func TestLoadPostsSlugsAreUnique(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "a", frontMatter("A", "2024-01-01", "s"))
	writePost(t, dir, "b", frontMatter("B", "2024-01-02", "s"))
	writePost(t, dir, "c", frontMatter("C", "2024-01-03", "s"))

	posts, err := LoadPosts(dir, true)
	if err != nil {
		t.Fatalf("LoadPosts failed: %v", err)
	}
	seen := make(map[string]bool)
	for _, p := range posts {
		if seen[p.Slug] {
			t.Errorf("duplicate slug %q", p.Slug)
		}
		seen[p.Slug] = true
	}
}

func TestFindPost(t *testing.T) {
	posts := []Post{{Slug: "a"}, {Slug: "b"}}
	if p, ok := FindPost(posts, "b"); !ok || p.Slug != "b" {
		t.Errorf("FindPost(b) = %v, %v", p, ok)
	}
	if _, ok := FindPost(posts, "zzz"); ok {
		t.Error("FindPost(zzz) should not be found")
	}
}
