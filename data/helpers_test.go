package data

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()

	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}

	return ts
}

func newPost(t *testing.T, title, datetime string, draft bool, tags ...string) Post {
	t.Helper()

	return Post{
		Frontmatter: Frontmatter{
			Title:    title,
			Datetime: mustTime(t, datetime),
			Slug:     Slugify(title),
			Draft:    draft,
			Tags:     tags,
		},
	}
}

func titles(posts []Post) []string {
	result := make([]string, len(posts))
	for i, p := range posts {
		result[i] = p.Frontmatter.Title
	}

	return result
}
