package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/sethmckilla/mckilla/config"
	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mckilla",
	Short: "List, filter and scaffold the posts of the mckilla.dev blog",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if config.Verbose() {
			logger.SetLevel(log.DebugLevel)
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mckilla.yaml)")

	rootCmd.PersistentFlags().StringP("content-dir", "c", "", "Directory containing the blog posts")
	rootCmd.PersistentFlags().Bool("dev", false, "Development mode, lists draft posts")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose logging")

	mustBindPFlag(config.KeyContentDirectory, "content-dir")
	mustBindPFlag(config.KeyDevelopment, "dev")
	mustBindPFlag(config.KeyVerbose, "verbose")
}

func mustBindPFlag(key, flag string) {
	err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
	if err != nil {
		panic(err)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in the working and home directory with name ".mckilla" (without extension).
		if dir, err := os.Getwd(); err == nil {
			viper.AddConfigPath(dir)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".mckilla")
	}

	config.BindEnvironment(viper.GetViper()) // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}
