package cmd

import (
	"fmt"
	"os"

	"github.com/sethmckilla/mckilla/data"
	"github.com/sethmckilla/mckilla/listing"
	"github.com/spf13/cobra"
)

// tagCmd represents the tag command
var tagCmd = &cobra.Command{
	Use:   "tag NAME",
	Short: "List the posts of a tag, most recent first",
	Long: `List the posts carrying a tag. Tags are compared by their slug, so
"Web Dev", "web-dev" and "web dev!" all name the same tag.`,
	Args: cobra.ExactArgs(1),
	RunE: runTag,
}

func init() {
	rootCmd.AddCommand(tagCmd)
}

func runTag(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	name := args[0]

	posts := data.SortedPosts(data.PostsByTag(s.store.Posts(), name, s.env), s.env)
	if len(posts) == 0 {
		fmt.Printf("no posts found for tag '%s'\n", data.Slugify(name))
		return nil
	}

	if tag, ok := s.store.TagByName(name); ok {
		logger.Debug("resolved tag", "name", name, "tag", tag.Raw, "slug", tag.Normalize())
	}

	return listing.NewFormatter(os.Stdout, s.site.Locale).WritePosts(posts)
}
