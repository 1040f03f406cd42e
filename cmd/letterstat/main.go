// Package main provides the CLI entrypoint for letterstat.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/letterstat/internal/config"
	"github.com/verte-zerg/letterstat/internal/console"
	"github.com/verte-zerg/letterstat/internal/letters"
	"github.com/verte-zerg/letterstat/internal/model"
	"github.com/verte-zerg/letterstat/internal/stats"
	"github.com/verte-zerg/letterstat/internal/statsui"
)

const (
	defaultFormat      = stats.FormatPlain
	defaultDropLetters = "vowel"
	defaultDropPairs   = "consonant"
)

// ErrArguments reports that fewer than two file paths were given.
var ErrArguments = errors.New("paths to two files are required")

var (
	reportFormat string
	reportPause  bool
	reportTUI    bool
	dropLetters  string
	dropPairs    string
	verbose      bool
	configPath   string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "letterstat <letters-file> <pairs-file>",
		Short: "Count letters in one file and doubled letters in another",
		Long: `letterstat counts every letter of the first file (case-sensitive) and every
pair of identical adjacent letters of the second file (case-insensitive).
Vowels are dropped from the letter counts and consonants from the pair counts.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          requireTwoPaths,
		RunE:          runReportCmd,
	}

	rootCmd.Flags().StringVar(&reportFormat, "format", defaultFormat, "output format: plain or table")
	rootCmd.Flags().BoolVar(&reportPause, "pause", false, "wait for a key press before exiting")
	rootCmd.Flags().BoolVar(&reportTUI, "tui", false, "browse the results in an interactive viewer")
	rootCmd.Flags().StringVar(&dropLetters, "drop-letters", defaultDropLetters, "letter class removed from single-letter stats (vowel, consonant, none)")
	rootCmd.Flags().StringVar(&dropPairs, "drop-pairs", defaultDropPairs, "letter class removed from pair stats (vowel, consonant, none)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/letterstat/config.toml)")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func requireTwoPaths(_ *cobra.Command, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w (got %d)", ErrArguments, len(args))
	}
	return nil
}

func runReportCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(resolveConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "format", &reportFormat, fileCfg.Report.Format)
	applyBoolConfig(cmd, "pause", &reportPause, fileCfg.Report.Pause)
	applyBoolConfig(cmd, "tui", &reportTUI, fileCfg.Report.TUI)
	applyStringConfig(cmd, "drop-letters", &dropLetters, fileCfg.Filter.Letters)
	applyStringConfig(cmd, "drop-pairs", &dropPairs, fileCfg.Filter.Pairs)

	cfg := model.Config{
		LettersPath: args[0],
		PairsPath:   args[1],
		Format:      reportFormat,
		Pause:       reportPause,
		TUI:         reportTUI,
		DropLetters: dropLetters,
		DropPairs:   dropPairs,
	}
	opts, err := validateConfig(cfg)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), verbose)
	if len(args) > 2 {
		logger.Warn("ignoring extra arguments", "args", args[2:])
	}

	report, err := stats.BuildReport(cmd.Context(), cfg.LettersPath, cfg.PairsPath, opts, logger)
	if err != nil {
		return err
	}

	if cfg.TUI {
		if console.IsTerminal(cmd.OutOrStdout()) {
			program := tea.NewProgram(statsui.NewModel(report), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("failed to run stats TUI: %w", err)
			}
			return nil
		}
		logErrln("stdout is not a terminal; printing the report instead")
	}

	if err := report.Write(cmd.OutOrStdout(), cfg.Format); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if cfg.Pause {
		if err := console.WaitForKey(cmd.InOrStdin(), cmd.ErrOrStderr(), console.PausePrompt); err != nil {
			return err
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := resolveConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// ensureConfigFile writes the commented template unless path already exists.
func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# letterstat configuration
# Uncomment a value to enable it. CLI flags override config values.

[report]
# format = %q          # Output format: plain or table
# pause = false            # Wait for a key press before exiting
# tui = false              # Open the interactive viewer

[filter]
# letters = %q         # Class removed from single-letter stats
# pairs = %q       # Class removed from pair stats
`,
		defaultFormat,
		defaultDropLetters,
		defaultDropPairs,
	)
}

func validateConfig(cfg model.Config) (stats.Options, error) {
	switch cfg.Format {
	case stats.FormatPlain, stats.FormatTable:
	default:
		return stats.Options{}, fmt.Errorf("--format must be %q or %q", stats.FormatPlain, stats.FormatTable)
	}
	fromLetters, err := letters.ParseClass(cfg.DropLetters)
	if err != nil {
		return stats.Options{}, fmt.Errorf("--drop-letters: %w", err)
	}
	fromPairs, err := letters.ParseClass(cfg.DropPairs)
	if err != nil {
		return stats.Options{}, fmt.Errorf("--drop-pairs: %w", err)
	}
	return stats.Options{DropFromLetters: fromLetters, DropFromPairs: fromPairs}, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
