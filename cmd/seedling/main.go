package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/seedlinghq/seedling"
	"github.com/seedlinghq/seedling/internal/config"
	"github.com/seedlinghq/seedling/internal/logger"
	"github.com/seedlinghq/seedling/internal/tui/theme"
)

const (
	logoText1 = "█▀ █▀▀ █▀▀ █▀▄ █   ▀ █▄ █ █▀▀"
	logoText2 = "▄█ ██▄ ██▄ █▄▀ █▄▄ █ █ ▀█ █▄█"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seedling",
	Short: "A tiny Go starter template with a greeting and an adder",
	RunE:  runDemo,
}

// runDemo prints the template's demo output: a greeting followed by a
// sum. This is what a fresh clone produces before any customization.
func runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, seedling.Greet("Python Developer"))

	a, b := 10.0, 5.0
	fmt.Fprintf(out, "%g + %g = %.1f\n", a, b, seedling.Add(a, b))
	return nil
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

// loadConfig loads the layered configuration and applies its logging
// settings. Commands that honor config call this instead of
// config.Load directly.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := logger.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	return cfg, nil
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

seedling is a minimal Go project template: a library exposing two small
functions (Greet and Add), a CLI that exercises them, layered YAML
configuration, a setup form, and an MCP tool server. Clone it, rename
the module, and grow your own tool out of it.

Run seedling with no arguments to print the demo output.`

	rootCmd.AddCommand(greetCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(mcpCmd)
}
