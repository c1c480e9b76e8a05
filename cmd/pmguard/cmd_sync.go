package main

import (
	"github.com/fbkclanna/pmguard/internal/auth"
	"github.com/fbkclanna/pmguard/internal/manifest"
	"github.com/fbkclanna/pmguard/internal/pm"
	"github.com/fbkclanna/pmguard/internal/ui"
	"github.com/fbkclanna/pmguard/internal/workspace"
	"github.com/spf13/cobra"
)

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync [-- pm args...]",
		Short: "Update the project's environment",
		Long: `Update the project's environment. Guardrails declared across the
workspace are aggregated under the same filters that 'pm sync' applies
to packages, and each one runs its guardhub post-install hook after
the sync.

Arguments after '--' are passed through to 'pm sync'.`,
		RunE: runSync,
	}
	cmd.Flags().Bool("all-packages", false, "Sync all packages in the workspace")
	cmd.Flags().StringSlice("package", nil, "Sync for specific packages in the workspace")
	cmd.Flags().Bool("no-install-project", false, "Do not install the current project")
	cmd.Flags().Bool("no-install-workspace", false, "Do not install any workspace members, including the root project")
	cmd.Flags().StringSlice("no-install-package", nil, "Do not install the given package(s)")
	return cmd
}

func runSync(cmd *cobra.Command, args []string) error {
	manifestPath, _ := cmd.Flags().GetString("manifest")
	allPackages, _ := cmd.Flags().GetBool("all-packages")
	pkgs, _ := cmd.Flags().GetStringSlice("package")
	noInstallProject, _ := cmd.Flags().GetBool("no-install-project")
	noInstallWorkspace, _ := cmd.Flags().GetBool("no-install-workspace")
	skip, _ := cmd.Flags().GetStringSlice("no-install-package")

	_, extra := splitDashArgs(cmd, args)

	pmArgs := append([]string{}, extra...)
	if allPackages {
		pmArgs = append(pmArgs, "--all-packages")
	}
	if noInstallProject {
		pmArgs = append(pmArgs, "--no-install-project")
	}
	if noInstallWorkspace {
		pmArgs = append(pmArgs, "--no-install-workspace")
	}
	for _, p := range pkgs {
		pmArgs = append(pmArgs, "--package", p)
	}
	for _, p := range skip {
		pmArgs = append(pmArgs, "--no-install-package", p)
	}

	if _, err := auth.ResolveToken(); err != nil {
		return err
	}

	// --no-install-workspace only affects pm; the guardrail filter
	// mirrors the package selection flags.
	filter := workspace.NewFilter(allPackages, pkgs, skip, !noInstallProject)

	var uris []string
	err := manifest.View(manifestPath, func(p *manifest.Project) error {
		var aggErr error
		uris, aggErr = workspace.Guardrails(p, filter)
		return aggErr
	})
	if err != nil {
		return err
	}

	if err := pm.Sync(pmArgs...); err != nil {
		return err
	}

	if err := installGuardrails(cmd, uris); err != nil {
		return err
	}

	ui.Success(cmd.OutOrStdout(), "Packages successfully synced.")
	return nil
}
