package main

import (
	"fmt"

	"github.com/fbkclanna/pmguard/internal/pm"
	"github.com/fbkclanna/pmguard/internal/ui"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [pm args...]",
		Short: "Create a new project",
		Long: `Create a new project.

All arguments are passed through to 'pm init'; see 'pm init --help'
for the available options.`,
		DisableFlagParsing: true,
		RunE:               runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	if !pm.IsInstalled() {
		return fmt.Errorf("pm is not installed or not on PATH")
	}

	if err := pm.Init(stripDashDash(args)...); err != nil {
		return err
	}

	// Base library so projects can execute installed guardrails. Added
	// without index flags: a fresh project has no hub token yet.
	if err := pm.Add([]string{"guardhub-core"}, false); err != nil {
		return err
	}

	ui.Success(cmd.OutOrStdout(), "Project successfully initialized.")
	return nil
}
