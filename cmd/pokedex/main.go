// Pokedex is a terminal browser for the PokeAPI catalog.
//
// It pages through the catalog, looks entries up by name or number, and
// filters by type, either interactively or as one-shot commands that print
// their results.
//
// Usage:
//
//	pokedex [command] [flags]
//
// Running without arguments launches the interactive browser.
// See 'pokedex --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/pokedex/internal/config"
	"github.com/muurk/pokedex/internal/logging"
	"github.com/muurk/pokedex/internal/ui"
	"github.com/muurk/pokedex/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		if ui.IsTerminal() {
			fmt.Fprintln(os.Stderr, ui.RenderError(err, ui.GetTerminalWidth()))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	apiURL     string
	logLevel   string
	logFile    string
)

// cfg is the effective configuration, resolved before any command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "Terminal browser for the PokeAPI catalog",
	Long: `Browse the PokeAPI catalog from the terminal.

Page through entries, look one up by name or number, or filter by type.

If no command is specified, the interactive browser will launch automatically.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runBrowse,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is the user config dir)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Catalog API root URL")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(versionCmd)
}

// loadConfig layers defaults, the config file, .env and environment
// variables, then flags, and initializes logging from the result.
func loadConfig(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := loaded.ApplyEnv(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		loaded.APIURL = apiURL
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if flags.Changed("log-file") {
		loaded.LogFile = logFile
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	if err := logging.InitializeWithOptions(logging.Options{
		Level:      loaded.LogLevel,
		OutputPath: loaded.LogFile,
	}); err != nil {
		return err
	}
	logging.Debug("Configuration loaded")

	cfg = loaded
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// Skip config loading so a broken config file cannot hide the version.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pokedex %s\n", version.Full())
	},
}
