package main

import (
	"github.com/fbkclanna/pmguard/internal/manifest"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pmguard",
		Short:   "Package manager wrapper for projects with guardrail validators",
		Version: version,
	}

	cmd.PersistentFlags().String("manifest", manifest.Filename, "Path to the project manifest")

	cmd.AddCommand(
		newInitCmd(),
		newConfigureCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newSyncCmd(),
		newGuardrailsCmd(),
	)
	cmd.AddCommand(newForwardCmds()...)

	return cmd
}

// splitDashArgs separates command arguments from passthrough arguments
// given after "--".
func splitDashArgs(cmd *cobra.Command, args []string) (own, extra []string) {
	if i := cmd.ArgsLenAtDash(); i >= 0 {
		return args[:i], args[i:]
	}
	return args, nil
}

// stripDashDash drops a leading "--" from raw (unparsed) arguments.
func stripDashDash(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		return args[1:]
	}
	return args
}
