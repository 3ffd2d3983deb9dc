package data

import (
	"cmp"
	"slices"
)

// SortedPosts returns the listed posts ordered by publication time, most
// recent first. Times are compared in whole seconds; posts published in
// the same second keep their input order.
func SortedPosts(posts []Post, env Environment) []Post {
	sorted := make([]Post, 0, len(posts))
	for _, post := range posts {
		if post.VisibleIn(env) {
			sorted = append(sorted, post)
		}
	}

	slices.SortStableFunc(sorted, func(a, b Post) int {
		return cmp.Compare(
			b.Frontmatter.Datetime.Unix(),
			a.Frontmatter.Datetime.Unix(),
		)
	})

	return sorted
}
