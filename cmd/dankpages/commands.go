package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AvengeMedia/dankpages/internal/config"
	"github.com/AvengeMedia/dankpages/internal/log"
	"github.com/AvengeMedia/dankpages/internal/pages"
	"github.com/AvengeMedia/dankpages/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	configPath string
	layoutFlag string
	themeFlag  string
	strictFlag bool
)

var rootCmd = &cobra.Command{
	Use:           "dankpages",
	Short:         "Multi-page form demo",
	Long:          "Dank Pages\n\nA small multi-page form in the terminal: a counter, a progress slider,\na name input and a theme picker. Tab and Shift+Tab move between pages.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInteractiveMode,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run:   runVersion,
}

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List the preset page layouts",
	Run: func(cmd *cobra.Command, args []string) {
		printLayouts(cmd.OutOrStdout())
	},
}

var replayCmd = &cobra.Command{
	Use:   "replay <event>...",
	Short: "Apply events without a terminal and print the result",
	Long: "Apply a sequence of events to a fresh session and print the resulting page.\n\n" +
		"Events: next, prev, inc, dec, progress=<0-100>, name=<text>, theme=<light|dark>",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		return replay(cmd.OutOrStdout(), cfg, args)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		return initConfig(cmd, force)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := config.NewLoader()
		_, path, err := loader.Load(configPath)
		if err != nil {
			return err
		}
		if path == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (not present, using defaults)\n", loader.DefaultPath())
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// loadSettings layers command line flags over the config file.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	cfg, path, err := config.NewLoader().Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if path != "" {
		log.Debug("loaded config", "path", path)
	}

	flags := cmd.Flags()
	if flags.Changed("layout") {
		cfg.Layout = layoutFlag
		cfg.Pages = nil
	}
	if flags.Changed("theme") {
		cfg.Theme = themeFlag
	}
	if flags.Changed("strict") {
		cfg.StrictPages = strictFlag
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newController(cfg config.Config) (*pages.Controller, error) {
	layout, err := cfg.PageLayout()
	if err != nil {
		return nil, err
	}
	theme, err := cfg.InitialTheme()
	if err != nil {
		return nil, err
	}

	session := pages.DefaultSession(len(layout))
	session.Theme = theme

	opts := []pages.Option{pages.WithSession(session)}
	if cfg.StrictPages {
		opts = append(opts, pages.WithStrictPages())
	}
	return pages.New(layout, opts...)
}

func runInteractiveMode(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	closer, err := log.Configure(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer closer.Close()
	defer log.SetOutput(os.Stderr)

	controller, err := newController(cfg)
	if err != nil {
		return err
	}
	log.Info("starting", "version", Version, "layout", controller.Layout().String(), "theme", controller.Session().Theme)

	model := tui.NewModel(controller, tui.Options{
		AppName:      cfg.AppName,
		Version:      Version,
		ProgressStep: cfg.ProgressStep,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Fprintf(cmd.OutOrStdout(), "Dank Pages %s\n", Version)
}

func initConfig(cmd *cobra.Command, force bool) error {
	loader := config.NewLoader()
	path := configPath
	if path == "" {
		path = loader.DefaultPath()
	}

	logChan := make(chan string, 8)
	deployer := config.NewConfigDeployer(afero.NewOsFs(), logChan)
	result, err := deployer.Deploy(context.Background(), path, force)
	close(logChan)
	for msg := range logChan {
		log.Info(msg)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !result.Deployed {
		fmt.Fprintf(out, "%s already exists; use --force to replace it\n", path)
		return nil
	}
	if result.BackupPath != "" {
		fmt.Fprintf(out, "Previous config saved to %s\n", result.BackupPath)
	}
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}

func printLayouts(w io.Writer) {
	for _, name := range pages.LayoutNames() {
		layout, _ := pages.LayoutByName(name)
		names := make([]string, len(layout))
		for i, p := range layout {
			names[i] = p.String()
		}
		marker := " "
		if name == pages.DefaultLayoutName {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-6s %d pages: %s\n", marker, name, len(layout), strings.Join(names, " → "))
	}
}
