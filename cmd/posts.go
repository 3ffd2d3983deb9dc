package cmd

import (
	"fmt"
	"os"

	"github.com/sethmckilla/mckilla/data"
	"github.com/sethmckilla/mckilla/listing"
	"github.com/spf13/cobra"
)

// postsCmd represents the posts command
var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List posts, most recent first",
	Long: `List all posts grouped by month, most recent first. Drafts are only
listed in development mode. With --page the list is cut into pages of
the configured postPerPage size.`,
	Args: cobra.NoArgs,
	RunE: runPosts,
}

var (
	postsPage     int
	postsFeatured bool
)

func init() {
	rootCmd.AddCommand(postsCmd)

	postsCmd.Flags().IntVarP(&postsPage, "page", "p", 0, "Only list the given page (1-based)")
	postsCmd.Flags().BoolVarP(&postsFeatured, "featured", "f", false, "Only list featured posts")
}

func runPosts(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	var posts []data.Post
	if postsFeatured {
		posts = data.FeaturedPosts(s.store.Posts(), s.env)
	} else {
		posts = data.SortedPosts(s.store.Posts(), s.env)
	}

	f := listing.NewFormatter(os.Stdout, s.site.Locale)

	if postsPage == 0 {
		if len(posts) == 0 {
			fmt.Println("no posts found")
			return nil
		}

		return f.WriteGroups(listing.MakePostGroups(posts))
	}

	page, err := data.Paginate(posts, s.site.PostPerPage, postsPage)
	if err != nil {
		return fmt.Errorf("page %d: %w", postsPage, err)
	}

	if err := f.WriteGroups(listing.MakePostGroups(page.Posts)); err != nil {
		return err
	}

	return f.WritePageFooter(page)
}
