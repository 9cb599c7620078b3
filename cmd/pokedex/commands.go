package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/pokedex/internal/browser"
	"github.com/muurk/pokedex/internal/catalog"
	"github.com/muurk/pokedex/internal/config"
	"github.com/muurk/pokedex/internal/logging"
	"github.com/muurk/pokedex/internal/tui"
	"github.com/muurk/pokedex/internal/ui"
	"github.com/muurk/pokedex/internal/urls"
)

// Command flags
var (
	listOffset  int
	listLimit   int
	typeLimit   int
	forceConfig bool
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(typeCmd)
	rootCmd.AddCommand(configCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !ui.IsTerminal() {
		return errors.New("the interactive browser needs a terminal; try 'pokedex list' instead")
	}

	// Logs written to stderr would draw over the screen.
	if cfg.LogLevel != "" && cfg.LogFile == "" {
		dir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		if err := logging.InitializeWithOptions(logging.Options{
			Level:      cfg.LogLevel,
			OutputPath: filepath.Join(dir, "pokedex.log"),
		}); err != nil {
			return err
		}
	}

	if err := tui.Run(cfg.NewClient(), cfg.BrowserOptions()); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}

// newPrinterBrowser wires a Printer to a browser for one-shot commands.
func newPrinterBrowser(cmd *cobra.Command, opts browser.Options) (*browser.Browser, *ui.Printer) {
	printer := ui.NewPrinter(cmd.OutOrStdout())
	return browser.New(cfg.NewClient(), printer, opts), printer
}

// failIfMessages turns a fixed failure message shown by the controllers
// into a command error so the exit status reflects it. The API error behind
// the message stays in the chain for RenderError.
func failIfMessages(b *browser.Browser, printer *ui.Printer) error {
	msgs := printer.Messages()
	if len(msgs) == 0 {
		return nil
	}
	msg := strings.Join(msgs, "; ")
	if cause := b.LastError(); cause != nil {
		return fmt.Errorf("%s: %w", msg, cause)
	}
	return errors.New(msg)
}

// listCmd prints one page of the catalog
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List one page of the catalog",
	Long: `Print one page of the catalog in index order.

Each entry is fetched in turn and printed as soon as it arrives. If a
request fails part way through, the entries already printed are kept.`,
	Example: `  # First page
  pokedex list

  # Entries 41 to 60
  pokedex list --offset 40 --limit 20`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "Index of the first entry")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Entries per page (default from config)")
}

func runList(cmd *cobra.Command, args []string) error {
	limit := listLimit
	if limit == 0 {
		limit = cfg.PageSize
	}
	window := catalog.PageWindow{Offset: listOffset, Limit: limit}
	if err := window.Validate(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.NewHeader("List", "pokedex list",
		ui.Param{Key: "Offset", Value: strconv.Itoa(window.Offset)},
		ui.Param{Key: "Limit", Value: strconv.Itoa(window.Limit)},
	))

	b, printer := newPrinterBrowser(cmd, cfg.BrowserOptions())
	defer b.Close()
	b.LoadPage(window)

	if err := failIfMessages(b, printer); err != nil {
		return err
	}
	if printer.Cards() == 0 {
		printer.Hint("No entries at offset %d.", window.Offset)
		return nil
	}
	if printer.LoadMoreVisible() && printer.Cards() == window.Limit {
		next := window.Next()
		printer.Hint("Next page: pokedex list --offset %d --limit %d", next.Offset, next.Limit)
	}
	return nil
}

// showCmd prints the detail of one entry
var showCmd = &cobra.Command{
	Use:   "show <name|number>",
	Short: "Show the details of one entry",
	Long: `Look up a single entry by exact name or catalog number and print its
details: height, weight, base experience, types and sprite URL.

Field reference: ` + urls.PokemonResource,
	Example: `  pokedex show pikachu
  pokedex show 25`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	b, printer := newPrinterBrowser(cmd, cfg.BrowserOptions())
	defer b.Close()

	b.SearchNow(args[0])
	if err := failIfMessages(b, printer); err != nil {
		return err
	}

	card, ok := printer.LastCard()
	if !ok {
		return fmt.Errorf("no entry matches %q", args[0])
	}
	card.Select()
	return nil
}

// typeCmd lists entries of one category
var typeCmd = &cobra.Command{
	Use:   "type <category>",
	Short: "List entries of one type",
	Long: `Print the first entries tagged with a category, in the order the API
lists them. Valid categories:

  ` + strings.Join(catalog.Categories, ", ") + `

See ` + urls.TypeResource + ` for what each type means.`,
	Example: `  pokedex type fire
  pokedex type dragon --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runType,
}

func init() {
	typeCmd.Flags().IntVar(&typeLimit, "limit", 0, "Maximum entries to show (default from config)")
}

func runType(cmd *cobra.Command, args []string) error {
	category := strings.ToLower(args[0])
	if !catalog.IsCategory(category) {
		return fmt.Errorf("unknown type %q (valid: %s)", args[0], strings.Join(catalog.Categories, ", "))
	}

	opts := cfg.BrowserOptions()
	if typeLimit > 0 {
		opts.TypeLimit = typeLimit
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.NewHeader("Type", "pokedex type",
		ui.Param{Key: "Type", Value: category},
		ui.Param{Key: "Limit", Value: strconv.Itoa(opts.TypeLimit)},
	))

	b, printer := newPrinterBrowser(cmd, opts)
	defer b.Close()
	b.FilterByType(category)

	return failIfMessages(b, printer)
}

// configCmd groups config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with default values",
	Args:  cobra.NoArgs,
	// Skip loading so init works even when the current file is invalid.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			p, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			path = p
		}
		if _, err := os.Stat(path); err == nil && !forceConfig {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.Default().Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the config file, .env, environment
variables and flags have all been applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceConfig, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
