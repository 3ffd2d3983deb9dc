package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/sethmckilla/mckilla/cmd/tools"
	"github.com/sethmckilla/mckilla/config"
	"github.com/sethmckilla/mckilla/data"
	"github.com/sethmckilla/mckilla/filesystem"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Interactive process to scaffold a new draft post",
	Args:  cobra.NoArgs,
	RunE:  runNewPost,
}

var newNoEdit bool

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().BoolVar(&newNoEdit, "no-edit", false, "Do not open the new post in an editor")
}

func runNewPost(cmd *cobra.Command, args []string) error {
	cfg, err := loadSiteConfig()
	if err != nil {
		return err
	}

	// Read title
	title := ""
	{
		prompt := survey.Input{
			Message: "Title",
		}
		err := survey.AskOne(
			&prompt,
			&title,
			survey.WithValidator(survey.Required),
			survey.WithValidator(
				func(ans interface{}) error {
					if data.Slugify(ans.(string)) == "" {
						return fmt.Errorf("empty slug, try letters and digits")
					}
					return nil
				},
			),
		)
		exitOnInterrupt(err)
	}

	var description string
	{
		prompt := survey.Input{
			Message: "Description (optional)",
		}

		err := survey.AskOne(&prompt, &description)
		exitOnInterrupt(err)

		description = strings.TrimSpace(description)
	}

	var tags []string
	{
		prompt := survey.Input{
			Message: "Tag",
		}
		for {
			tag := ""
			err := survey.AskOne(&prompt, &tag)
			exitOnInterrupt(err)

			tag = strings.TrimSpace(tag)
			if len(tag) > 0 {
				tags = append(tags, tag)
				continue
			}

			break
		}
	}

	author := cfg.Author
	{
		prompt := survey.Input{
			Message: "Author",
			Default: author,
		}
		err := survey.AskOne(&prompt, &author)
		exitOnInterrupt(err)
	}

	slug := data.Slugify(title)
	contentDir := config.ContentDirectory()
	postFile := filepath.Join(contentDir, slug+config.DefaultPostExtension())

	exists, err := filesystem.FileExists(postFile)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("post '%s' already exists", postFile)
	}

	frontMatter := data.FrontMatter{
		Title:       title,
		Author:      author,
		Datetime:    data.YamlDatetime(time.Now().Truncate(time.Second)),
		Slug:        slug,
		Draft:       true,
		Tags:        data.TagList(tags),
		Description: description,
	}

	// Review front matter
	{
		err := writeFrontMatter(os.Stdout, frontMatter)
		if err != nil {
			return err
		}

		isConfirmed := true

		prompt := &survey.Confirm{
			Message: "Proceed",
			Default: isConfirmed,
		}

		err = survey.AskOne(prompt, &isConfirmed)
		exitOnInterrupt(err)

		if !isConfirmed {
			return nil
		}
	}

	if err := filesystem.CreateDirectoryIfNotExists(contentDir); err != nil {
		return fmt.Errorf("could not ensure content directory: %w", err)
	}

	if err := createPostFile(postFile, frontMatter); err != nil {
		return err
	}

	logger.Info("created draft post", "path", postFile)

	if newNoEdit {
		return nil
	}

	return tools.RunEditor(postFile)
}

func createPostFile(path string, fm data.FrontMatter) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	defer f.Close()

	if err := writeFrontMatter(f, fm); err != nil {
		return fmt.Errorf("write front matter: %w", err)
	}

	return nil
}

func writeFrontMatter(f io.Writer, fm data.FrontMatter) error {
	if _, err := fmt.Fprintln(f, "---"); err != nil {
		return err
	}

	enc := yaml.NewEncoder(f)
	err := enc.Encode(fm)
	if err != nil {
		return err
	}

	if err := enc.Close(); err != nil {
		return err
	}

	_, err = fmt.Fprintln(f, "---")
	return err
}

func exitOnInterrupt(err error) {
	if err == terminal.InterruptErr {
		os.Exit(1)
	}
}
