package data

import "sort"

// PostsByTag returns, in input order, the posts listed under tag. Tags
// are compared by their slugs. Drafts are kept only in development.
func PostsByTag(posts []Post, tag string, env Environment) []Post {
	slug := Slugify(tag)

	result := make([]Post, 0)
	for _, post := range posts {
		if !post.VisibleIn(env) {
			continue
		}

		if post.hasTagSlug(slug) {
			result = append(result, post)
		}
	}

	return result
}

// FeaturedPosts returns the featured posts, most recent first.
func FeaturedPosts(posts []Post, env Environment) []Post {
	result := make([]Post, 0)
	for _, post := range SortedPosts(posts, env) {
		if post.Frontmatter.Featured {
			result = append(result, post)
		}
	}

	return result
}

// UniqueTags collects the distinct tags of all listed posts ordered by
// slug. The first spelling encountered for a slug is kept.
func UniqueTags(posts []Post, env Environment) []Tag {
	seen := make(map[string]bool)

	var tags []Tag
	for _, post := range posts {
		if !post.VisibleIn(env) {
			continue
		}

		for _, raw := range post.Frontmatter.Tags {
			tag := Tag{Raw: raw}
			slug := tag.Normalize()
			if slug == "" || seen[slug] {
				continue
			}

			seen[slug] = true
			tags = append(tags, tag)
		}
	}

	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].Normalize() < tags[j].Normalize()
	})

	return tags
}
