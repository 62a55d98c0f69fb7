package cmd

import (
	"errors"
	"os"
	"strings"

	"scriptforge/internal/generator"
	"scriptforge/internal/logging"
	"scriptforge/internal/script"
	"scriptforge/ui/console"
	"scriptforge/ui/tui/state"

	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print [idea]",
	Short: "Generate a script and print it to stdout",
	Long: `Generate a screenplay without the interactive UI and print it as
plain text.

Examples:
  # Balanced script
  scriptforge print "A high-stakes heist in a floating city"

  # Short script without colors
  scriptforge print --length concise --no-color "Two rival chefs"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPrint,
}

var (
	printLength  string
	printNoColor bool
)

func init() {
	rootCmd.AddCommand(printCmd)

	printCmd.Flags().StringVarP(&printLength, "length", "l", "", "Script length: concise, standard or extended (default from config)")
	printCmd.Flags().BoolVar(&printNoColor, "no-color", false, "Disable ANSI colors")
}

func runPrint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lengthName := cfg.TUI.DefaultLength
	if printLength != "" {
		lengthName = printLength
	}
	length, err := script.ParseLength(lengthName)
	if err != nil {
		return err
	}

	prompt := strings.Join(args, " ")
	if strings.TrimSpace(prompt) == "" {
		return errors.New("idea must not be empty")
	}

	logger := logging.NewLogger(cmd.ErrOrStderr(), cfg.Logging.Level)
	gen, err := newGenerator(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer closeGenerator(gen)

	result, err := gen.Generate(cmd.Context(), prompt, length)
	if err == nil && result == nil {
		err = generator.ErrEmptyResponse
	}
	if err != nil {
		logger.Error("generation failed", "error", err)
		return errors.New(state.FailureMessage(err))
	}

	console.Print(cmd.OutOrStdout(), result, !printNoColor && cmd.OutOrStdout() == os.Stdout)
	return nil
}
