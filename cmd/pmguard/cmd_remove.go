package main

import (
	"fmt"

	"github.com/fbkclanna/pmguard/internal/auth"
	"github.com/fbkclanna/pmguard/internal/guardhub"
	"github.com/fbkclanna/pmguard/internal/hub"
	"github.com/fbkclanna/pmguard/internal/manifest"
	"github.com/fbkclanna/pmguard/internal/pm"
	"github.com/fbkclanna/pmguard/internal/ui"
	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <package ...> [-- pm args...]",
		Short: "Remove dependencies from the project (packages or hub:// guardrail URIs)",
		Long: `Remove dependencies from the project. Works for both ordinary packages
and hub:// guardrail URIs. Guardrails run their guardhub pre-uninstall
hook before the underlying packages are removed, then leave the
manifest.

Arguments after '--' are passed through to 'pm remove'.`,
		RunE: runRemove,
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
	manifestPath, _ := cmd.Flags().GetString("manifest")
	packages, extra := splitDashArgs(cmd, args)

	if len(packages) == 0 {
		return fmt.Errorf("no packages specified")
	}

	if _, err := auth.ResolveToken(); err != nil {
		return err
	}

	uris := hubURIs(packages)
	if len(uris) > 0 {
		progress := ui.NewProgress(cmd.ErrOrStderr(), "Uninstalling guardrails", len(uris))
		for _, uri := range uris {
			if err := guardhub.Uninstall(uri); err != nil {
				return fmt.Errorf("uninstalling %s: %w", uri, err)
			}
			progress.Done(uri)
		}
	}

	names := make([]string, 0, len(packages))
	for _, pkg := range packages {
		name, err := hub.ResolvePackageName(pkg)
		if err != nil {
			return err
		}
		names = append(names, name)
	}
	if err := pm.Remove(names, extra...); err != nil {
		return err
	}

	err := manifest.Update(manifestPath, func(p *manifest.Project) error {
		for _, uri := range uris {
			if err := p.RemoveGuardrail(uri); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	ui.Success(cmd.OutOrStdout(), "Packages successfully removed.")
	return nil
}
