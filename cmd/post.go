package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sethmckilla/mckilla/data"
	"github.com/sethmckilla/mckilla/listing"
	"github.com/spf13/cobra"
)

// postCmd represents the post command
var postCmd = &cobra.Command{
	Use:   "post SLUG|ID",
	Short: "Show a single post",
	Long: `Show a single post by its slug or by its ID. Drafts are only shown in
development mode.`,
	Args: cobra.ExactArgs(1),
	RunE: runPost,
}

func init() {
	rootCmd.AddCommand(postCmd)
}

func runPost(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	post, ok := findPost(s.store, args[0])
	if !ok || !post.VisibleIn(s.env) {
		return fmt.Errorf("no post '%s'", args[0])
	}

	return listing.NewFormatter(os.Stdout, s.site.Locale).WritePost(post)
}

func findPost(store *data.Store, ref string) (data.Post, bool) {
	if id, err := uuid.Parse(ref); err == nil {
		return store.PostByID(id)
	}

	return store.PostBySlug(ref)
}
