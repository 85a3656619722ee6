package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seedlinghq/seedling/internal/config"
	"github.com/seedlinghq/seedling/internal/tui/setup"
)

var setupFlags struct {
	project bool
	force   bool
	yes     bool
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create seedling configuration file",
	Long: `Create a seedling configuration file.

Opens a short form to pick the default greeting name and the number of
decimal places for sums, then writes a global config at
~/.config/seedling/seedling.yml. Use --project to write a project-local
config in the current directory instead, and --yes to skip the form and
write the current values as-is.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVarP(&setupFlags.project, "project", "p", false, "Create config in current directory instead of global location")
	setupCmd.Flags().BoolVarP(&setupFlags.force, "force", "f", false, "Overwrite existing config file")
	setupCmd.Flags().BoolVarP(&setupFlags.yes, "yes", "y", false, "Skip the form and write current values")
}

func runSetup(cmd *cobra.Command, args []string) error {
	// Determine target path
	targetPath := config.GlobalPath()
	if setupFlags.project {
		targetPath = config.ProjectPath()
	}

	// Check if config already exists
	if !setupFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	// Prefill from the layered config so re-running setup starts from
	// the current values.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if !setupFlags.yes {
		result, err := setup.Run(cfg, setupFlags.project)
		if err != nil {
			return fmt.Errorf("setup form failed: %w", err)
		}
		if result == nil {
			fmt.Println("Setup cancelled, no config written.")
			return nil
		}
		cfg.Name = result.Name
		cfg.Precision = result.Precision
	}

	// Write config to target location
	if setupFlags.project {
		err = config.WriteProject(cfg)
	} else {
		err = config.WriteGlobal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	// Print success message
	fmt.Printf("Config written to: %s\n\n", targetPath)
	fmt.Println("Run 'seedling greet' to try it out.")

	return nil
}

// fileExists checks if a file exists (helper for setup command).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
