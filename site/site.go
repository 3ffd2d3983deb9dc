// Package site describes the static metadata of the blog: title, author,
// logo and social links. The values are read by the page templates and
// never change while a build runs.
package site

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goodsign/monday"
	"github.com/spf13/viper"
)

// TitlePlaceholder in a social link title is replaced by the site title.
const TitlePlaceholder = "{{title}}"

const keySite = "site"

type SiteConfig struct {
	Website          string    `mapstructure:"website" yaml:"website"`
	Author           string    `mapstructure:"author" yaml:"author"`
	Description      string    `mapstructure:"desc" yaml:"desc"`
	Title            string    `mapstructure:"title" yaml:"title"`
	OGImage          string    `mapstructure:"ogImage" yaml:"ogImage"`
	LightAndDarkMode bool      `mapstructure:"lightAndDarkMode" yaml:"lightAndDarkMode"`
	PostPerPage      int       `mapstructure:"postPerPage" yaml:"postPerPage"`
	Locale           string    `mapstructure:"locale" yaml:"locale"`
	Logo             LogoImage `mapstructure:"logo" yaml:"logo"`
	Socials          []Social  `mapstructure:"socials" yaml:"socials"`
}

type LogoImage struct {
	Enable bool `mapstructure:"enable" yaml:"enable"`
	SVG    bool `mapstructure:"svg" yaml:"svg"`
	Width  int  `mapstructure:"width" yaml:"width"`
	Height int  `mapstructure:"height" yaml:"height"`
}

type Social struct {
	Name      string `mapstructure:"name" yaml:"name"`
	Href      string `mapstructure:"href" yaml:"href"`
	LinkTitle string `mapstructure:"linkTitle" yaml:"linkTitle"`
	Active    bool   `mapstructure:"active" yaml:"active"`
}

// Default returns the configuration the site ships with.
func Default() SiteConfig {
	return SiteConfig{
		Website:          "https://mckilla.dev/",
		Author:           "Seth McCullough",
		Description:      "The musings of a full stack Typescript developer with a passion for SaaS.",
		Title:            "mckilla.dev",
		OGImage:          "astropaper-og.jpg",
		LightAndDarkMode: true,
		PostPerPage:      3,
		Locale:           string(monday.LocaleEnUS),
		Logo: LogoImage{
			Enable: false,
			SVG:    true,
			Width:  216,
			Height: 46,
		},
		Socials: []Social{
			{
				Name:      "Twitter",
				Href:      "https://twitter.com/sethmckilla",
				LinkTitle: TitlePlaceholder + " on Twitter",
				Active:    true,
			},
			{
				Name:      "Github",
				Href:      "https://github.com/Seth-McKilla",
				LinkTitle: TitlePlaceholder + " on Github",
				Active:    true,
			},
			{
				Name:      "Mail",
				Href:      "mailto:seth@mckilla.dev",
				LinkTitle: "Send an email to " + TitlePlaceholder,
				Active:    true,
			},
			{
				Name:      "YouTube",
				Href:      "https://youtube.com/",
				LinkTitle: TitlePlaceholder + " on YouTube",
				Active:    false,
			},
		},
	}
}

// Load overlays the "site" section of v onto Default. A configured social
// list replaces the default one instead of being merged into it.
func Load(v *viper.Viper) (SiteConfig, error) {
	cfg := Default()

	if !v.IsSet(keySite) {
		return cfg, nil
	}

	if v.IsSet(keySite + ".socials") {
		cfg.Socials = nil
	}

	if err := v.UnmarshalKey(keySite, &cfg); err != nil {
		return cfg, fmt.Errorf("decode site config: %w", err)
	}

	return cfg, nil
}

// ActiveSocials returns the social links shown on the site.
func (c SiteConfig) ActiveSocials() []Social {
	var socials []Social
	for _, s := range c.Socials {
		if s.Active {
			socials = append(socials, s)
		}
	}

	return socials
}

// ExpandLinkTitle returns the link title of s with the site title filled in.
func (c SiteConfig) ExpandLinkTitle(s Social) string {
	return strings.TrimSpace(strings.ReplaceAll(s.LinkTitle, TitlePlaceholder, c.Title))
}

// Validate checks the shape of the configuration and reports every
// problem found.
func (c SiteConfig) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, errors.New("title is empty"))
	}

	if strings.TrimSpace(c.Author) == "" {
		errs = append(errs, errors.New("author is empty"))
	}

	if u, err := url.Parse(c.Website); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("website '%s' is not an absolute http(s) URL", c.Website))
	}

	if c.PostPerPage < 1 {
		errs = append(errs, fmt.Errorf("postPerPage must be at least 1, got %d", c.PostPerPage))
	}

	if c.Locale != "" && !isKnownLocale(c.Locale) {
		errs = append(errs, fmt.Errorf("unknown locale '%s'", c.Locale))
	}

	if c.Logo.Enable && (c.Logo.Width <= 0 || c.Logo.Height <= 0) {
		errs = append(errs, fmt.Errorf("logo size %dx%d is not positive", c.Logo.Width, c.Logo.Height))
	}

	names := make(map[string]bool)
	for i, s := range c.Socials {
		if strings.TrimSpace(s.Name) == "" {
			errs = append(errs, fmt.Errorf("social #%d has no name", i+1))
		} else if key := strings.ToLower(s.Name); names[key] {
			errs = append(errs, fmt.Errorf("social '%s' listed twice", s.Name))
		} else {
			names[key] = true
		}

		if u, err := url.Parse(s.Href); err != nil || u.Scheme == "" {
			errs = append(errs, fmt.Errorf("social '%s': href '%s' has no scheme", s.Name, s.Href))
		}
	}

	return errors.Join(errs...)
}

func isKnownLocale(locale string) bool {
	for _, l := range monday.ListLocales() {
		if string(l) == locale {
			return true
		}
	}

	return false
}
