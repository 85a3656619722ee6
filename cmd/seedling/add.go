package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/seedlinghq/seedling"
)

var addCmd = &cobra.Command{
	Use:   "add <a> <b>",
	Short: "Add two numbers",
	Long: `Add two numbers and print the sum.

The number of decimal places in the result comes from the configured
precision. Negative numbers need a leading '--' so they are not parsed
as flags, e.g. 'seedling add -- -5 -3'.`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", args[0])
	}
	b, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", args[1])
	}

	sum := seedling.Add(a, b)
	fmt.Fprintf(cmd.OutOrStdout(), "%s + %s = %.*f\n", args[0], args[1], cfg.Precision, sum)
	return nil
}
