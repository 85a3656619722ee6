package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seedlinghq/seedling"
)

var greetCmd = &cobra.Command{
	Use:   "greet [name]",
	Short: "Print a greeting",
	Long: `Print a greeting for the given name.

Without an argument the configured default name is used. Change it with
'seedling setup' or the SEEDLING_NAME environment variable.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGreet,
}

func runGreet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	name := cfg.Name
	if len(args) > 0 {
		name = args[0]
	}

	fmt.Fprintln(cmd.OutOrStdout(), seedling.Greet(name))
	return nil
}
