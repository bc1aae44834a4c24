package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/moviekit/tmdb-client/cmd/tmdb/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "tmdb",
	Short: "TMDB API CLI",
	Long: `A command-line interface for The Movie Database (TMDB) API.

Browse movies, TV series and people, search the catalog, inspect
trending titles and discover content by filters. Requests authenticate
with a v3 API key or a v4 read access token.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.tmdb/config.yml)")
	rootCmd.PersistentFlags().StringP("api-key", "k", "", "TMDB v3 API key")
	rootCmd.PersistentFlags().StringP("bearer-token", "t", "", "TMDB v4 read access token")
	rootCmd.PersistentFlags().StringP("language", "l", "", "language for translated fields (e.g. en-US)")
	rootCmd.PersistentFlags().String("region", "", "region for release dates (e.g. US)")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("api-key", rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag("bearer-token", rootCmd.PersistentFlags().Lookup("bearer-token"))
	_ = viper.BindPFlag("language", rootCmd.PersistentFlags().Lookup("language"))
	_ = viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewMovieCommand())
	rootCmd.AddCommand(commands.NewTVCommand())
	rootCmd.AddCommand(commands.NewPersonCommand())
	rootCmd.AddCommand(commands.NewTrendingCommand())
	rootCmd.AddCommand(commands.NewDiscoverCommand())
	rootCmd.AddCommand(commands.NewGenresCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.tmdb/config.yml
		viper.AddConfigPath(filepath.Join(home, ".tmdb"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// TMDB_API_KEY maps onto the api-key flag
	viper.SetEnvPrefix("TMDB")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
