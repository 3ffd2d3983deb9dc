package config

import (
	"fmt"
	"strings"

	"github.com/sethmckilla/mckilla/data"
	"github.com/spf13/viper"
)

const EnvPrefix = "mckilla"

var (
	KeyContentDirectory = "content.directory"
	KeyDevelopment      = "dev"
	KeyVerbose          = "verbose"
	KeyEditor           = "tools.editor"
)

// BindEnvironment lets MCKILLA_* variables override config file values,
// e.g. MCKILLA_CONTENT_DIRECTORY for content.directory.
func BindEnvironment(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

func HasContentDirectory() bool {
	return viper.IsSet(KeyContentDirectory)
}

// ContentDirectory falls back to the default location of blog posts
// relative to the working directory.
func ContentDirectory() string {
	if dir := viper.GetString(KeyContentDirectory); dir != "" {
		return dir
	}

	return DefaultContentDirectory()
}

// Environment resolves the `dev` key from flag, environment variable or
// config file, in that order of precedence. Both environment names and
// boolean values are accepted.
func Environment() (data.Environment, error) {
	return environmentFrom(viper.GetViper())
}

func environmentFrom(v *viper.Viper) (data.Environment, error) {
	env, err := data.ParseEnvironment(v.GetString(KeyDevelopment))
	if err != nil {
		return data.Production, fmt.Errorf("config '%s': %w", KeyDevelopment, err)
	}

	return env, nil
}

func Verbose() bool {
	return viper.GetBool(KeyVerbose)
}

// Editor returns the configured editor command, if any.
func Editor() (string, bool) {
	editor := strings.TrimSpace(viper.GetString(KeyEditor))
	return editor, editor != ""
}

func DefaultContentDirectory() string {
	return "src/content/blog"
}

func DefaultPostExtension() string {
	return ".md"
}
