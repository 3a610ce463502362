package main

import (
	"github.com/spf13/cobra"
)

// profileEnv names the default profile file for --file.
const profileEnv = "MACROPLAN_PROFILE"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "macroplan",
		Short:        "Plan a week of macros around high and low calorie days",
		SilenceUsage: true,
	}

	cmd.AddCommand(baselineCmd())
	cmd.AddCommand(weekCmd())
	return cmd
}
