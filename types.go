package plume

import "time"

// Post is a single blog post loaded from the posts directory. The slug comes
// from the post's containing directory name; everything else comes from the
// YAML front matter at the top of index.md, except Body (the raw markdown
// after the front matter) and Published (the parsed Date).
type Post struct {
	Title   string `yaml:"title"`
	Date    string `yaml:"date"`
	Spoiler string `yaml:"spoiler"`
	YouTube string `yaml:"youtube"`
	Bluesky string `yaml:"bluesky"`

	Slug      string    `yaml:"-"`
	Body      string    `yaml:"-"`
	Published time.Time `yaml:"-"` // zero when Date does not parse
}
