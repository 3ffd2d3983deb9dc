package listing

import (
	"time"

	"github.com/sethmckilla/mckilla/data"
	"github.com/sethmckilla/mckilla/util/dates"
)

// PostGroup collects consecutive posts published in the same month.
type PostGroup struct {
	Posts []data.Post
	Date  time.Time
}

// MakePostGroups groups already sorted posts by month. A month that shows
// up again after another month starts a new group.
func MakePostGroups(posts []data.Post) []PostGroup {
	if len(posts) == 0 {
		return nil
	}

	groups := []PostGroup{
		{
			Date: dates.FirstDayOfMonth(posts[0].Frontmatter.Datetime),
		},
	}

	ci := 0
	for _, post := range posts {
		if !dates.EqualMonth(post.Frontmatter.Datetime, groups[ci].Date) {
			groups = append(
				groups,
				PostGroup{
					Date: dates.FirstDayOfMonth(post.Frontmatter.Datetime),
				},
			)
			ci++
		}

		groups[ci].Posts = append(groups[ci].Posts, post)
	}

	return groups
}
