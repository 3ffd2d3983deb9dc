package cmd

import (
	"fmt"

	"github.com/sethmckilla/mckilla/config"
	"github.com/sethmckilla/mckilla/data"
	"github.com/sethmckilla/mckilla/filesystem"
	"github.com/sethmckilla/mckilla/site"
	"github.com/spf13/viper"
)

// session bundles what every listing command needs: the site config, the
// environment resolved for this run and the loaded posts.
type session struct {
	site  site.SiteConfig
	env   data.Environment
	store *data.Store
}

func loadSiteConfig() (site.SiteConfig, error) {
	return site.Load(viper.GetViper())
}

func openSession() (*session, error) {
	cfg, err := loadSiteConfig()
	if err != nil {
		return nil, err
	}

	dir := config.ContentDirectory()
	if !config.HasContentDirectory() {
		logger.Debug("no content directory configured, using default", "directory", dir)
	}

	if !filesystem.IsDirectory(dir) {
		return nil, fmt.Errorf("content directory '%s' is not a directory", dir)
	}

	store, err := data.NewStore(dir, &data.StoreOptions{
		DefaultAuthor: cfg.Author,
	})
	if err != nil {
		return nil, err
	}

	env, err := config.Environment()
	if err != nil {
		return nil, err
	}

	logger.Debug("loaded posts", "directory", dir, "count", store.Len(), "environment", env)

	return &session{
		site:  cfg,
		env:   env,
		store: store,
	}, nil
}
