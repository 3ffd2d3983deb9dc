package cmd

import (
	"fmt"
	"os"

	"github.com/sethmckilla/mckilla/data"
	"github.com/sethmckilla/mckilla/listing"
	"github.com/spf13/cobra"
)

// tagsCmd represents the tags command
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags with their number of posts",
	Args:  cobra.NoArgs,
	RunE:  runTags,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	posts := s.store.Posts()

	tags := data.UniqueTags(posts, s.env)
	if len(tags) == 0 {
		fmt.Println("no tags found")
		return nil
	}

	counts := listing.CountTags(posts, tags, s.env)

	return listing.NewFormatter(os.Stdout, s.site.Locale).WriteTags(counts)
}
