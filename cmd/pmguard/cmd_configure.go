package main

import (
	"github.com/fbkclanna/pmguard/internal/guardhub"
	"github.com/fbkclanna/pmguard/internal/ui"
	"github.com/spf13/cobra"
)

func newConfigureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure [guardhub args...]",
		Short: "Configure guardrail hub access",
		Long: `Configure guardrail hub access.

All arguments are passed through to 'guardhub configure'; see
'guardhub configure --help' for the available options.`,
		DisableFlagParsing: true,
		RunE:               runConfigure,
	}
}

func runConfigure(cmd *cobra.Command, args []string) error {
	if err := guardhub.Configure(stripDashDash(args)...); err != nil {
		return err
	}
	ui.Success(cmd.OutOrStdout(), "Guardrail hub successfully configured.")
	return nil
}
