package main

import (
	"fmt"
	"os"

	"github.com/fbkclanna/pmguard/internal/auth"
	"github.com/fbkclanna/pmguard/internal/guardhub"
	"github.com/fbkclanna/pmguard/internal/hub"
	"github.com/fbkclanna/pmguard/internal/manifest"
	"github.com/fbkclanna/pmguard/internal/pm"
	"github.com/fbkclanna/pmguard/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [package ...] [-- pm args...]",
		Short: "Add dependencies to the project (packages or hub:// guardrail URIs)",
		Long: `Add dependencies to the project. Works for both ordinary packages and
hub:// guardrail URIs. Guardrails are recorded in the project manifest,
resolved to installable package names for 'pm add', and installed with
their guardhub post-install hook.

Arguments after '--' are passed through to 'pm add'.`,
		RunE: runAdd,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	manifestPath, _ := cmd.Flags().GetString("manifest")
	packages, extra := splitDashArgs(cmd, args)

	if len(packages) == 0 {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("no packages provided and stdin is not a TTY; pass packages as arguments")
		}
		var err error
		packages, err = interactiveAddPackages()
		if err != nil {
			return fmt.Errorf("interactive add: %w", err)
		}
		if len(packages) == 0 {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No packages added.")
			return nil
		}
	}

	if _, err := auth.ResolveToken(); err != nil {
		return err
	}

	// Record guardrails in the manifest first. Entries already pinned
	// in the manifest win over unpinned inputs, so the effective URIs
	// are what gets resolved and installed.
	effective := make([]string, len(packages))
	err := manifest.Update(manifestPath, func(p *manifest.Project) error {
		for i, pkg := range packages {
			if !hub.IsHubURI(pkg) {
				effective[i] = pkg
				continue
			}
			uri, err := p.AddGuardrail(pkg)
			if err != nil {
				return err
			}
			effective[i] = uri
		}
		return nil
	})
	if err != nil {
		return err
	}

	names := make([]string, 0, len(effective)+1)
	names = append(names, "guardhub-core")
	for _, pkg := range effective {
		name, err := hub.ResolvePackageName(pkg)
		if err != nil {
			return err
		}
		names = append(names, name)
	}
	if err := pm.Add(names, true, extra...); err != nil {
		return err
	}

	if err := installGuardrails(cmd, hubURIs(effective)); err != nil {
		return err
	}

	ui.Success(cmd.OutOrStdout(), "Packages successfully added.")
	return nil
}

// hubURIs filters a package list down to its guardrail URIs.
func hubURIs(packages []string) []string {
	var uris []string
	for _, pkg := range packages {
		if hub.IsHubURI(pkg) {
			uris = append(uris, pkg)
		}
	}
	return uris
}

// installGuardrails runs the guardhub post-install hook once per URI.
func installGuardrails(cmd *cobra.Command, uris []string) error {
	if len(uris) == 0 {
		return nil
	}
	progress := ui.NewProgress(cmd.ErrOrStderr(), "Running guardrail post-install", len(uris))
	for _, uri := range uris {
		if err := guardhub.Install(uri); err != nil {
			return fmt.Errorf("installing %s: %w", uri, err)
		}
		progress.Done(uri)
	}
	return nil
}
