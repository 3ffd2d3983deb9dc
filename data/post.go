package data

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Frontmatter is the metadata block at the top of a post.
type Frontmatter struct {
	Title       string
	Author      string
	Datetime    time.Time
	Slug        string
	Featured    bool
	Draft       bool
	Tags        []string
	OGImage     string
	Description string
}

type Post struct {
	ID          uuid.UUID // From frontmatter guid or derived from the path
	Path        string    // File system path, empty for posts built in memory
	Frontmatter Frontmatter
	Content     string
}

// VisibleIn reports whether the post is listed in the given environment.
func (p Post) VisibleIn(env Environment) bool {
	return env.ShowDrafts() || !p.Frontmatter.Draft
}

// HasTag reports whether one of the post's tags has the same slug as name.
func (p Post) HasTag(name string) bool {
	return p.hasTagSlug(Slugify(name))
}

func (p Post) hasTagSlug(slug string) bool {
	return slices.Contains(SlugifyAll(p.Frontmatter.Tags), slug)
}
