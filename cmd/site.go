package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// siteCmd represents the site command
var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Print and validate the site configuration",
	Args:  cobra.NoArgs,
	RunE:  runSite,
}

func init() {
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, err := loadSiteConfig()
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(map[string]interface{}{"site": cfg}); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid site configuration:\n%w", err)
	}

	for _, s := range cfg.ActiveSocials() {
		logger.Debug("social link", "name", s.Name, "title", cfg.ExpandLinkTitle(s))
	}

	logger.Info("site configuration is valid")

	return nil
}
