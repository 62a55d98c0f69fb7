// Package cmd wires the scriptforge command line.
package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"scriptforge/internal/config"
	"scriptforge/internal/generator"
	"scriptforge/internal/logging"
	"scriptforge/internal/script"
	"scriptforge/ui/tui"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "scriptforge",
	Short: "Turn a story idea into a screenplay",
	Long: `Scriptforge sends a short story idea to Gemini and renders the
screenplay it returns: title, characters, plot outline in English and
Hindi, a detailed synopsis and numbered scenes with dialogue.

Run without a subcommand to open the interactive terminal UI.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

var cfgFile string

// newGenerator builds the generation backend. Tests replace it.
var newGenerator = func(ctx context.Context, cfg config.Config, logger *slog.Logger) (generator.Service, error) {
	return generator.NewGemini(ctx, generator.Config{
		APIKey:   cfg.Gemini.APIKey,
		ModelKey: cfg.Gemini.Model,
	}, logger)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/scriptforge/config.yaml)")
}

func loadConfig() (config.Config, error) {
	return config.Load(viper.New(), cfgFile)
}

// closeGenerator releases clients held by gen.
func closeGenerator(gen generator.Service) {
	if c, ok := gen.(interface{ Close() error }); ok {
		_ = c.Close()
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := logging.OpenFile(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info("starting tui",
		"model", cfg.Gemini.Model,
		"api_key", logging.SanitizeKey(cfg.Gemini.APIKey),
	)

	gen, err := newGenerator(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer closeGenerator(gen)

	length, _ := script.ParseLength(cfg.TUI.DefaultLength)
	if err := tui.Start(gen, tui.Options{
		TickInterval: cfg.TUI.TickInterval,
		DarkMode:     cfg.DarkMode(lipgloss.HasDarkBackground),
		Length:       length,
		Logger:       logger,
	}); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
