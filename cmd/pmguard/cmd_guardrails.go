package main

import (
	"encoding/json"

	"github.com/fbkclanna/pmguard/internal/hub"
	"github.com/fbkclanna/pmguard/internal/manifest"
	"github.com/fbkclanna/pmguard/internal/ui"
	"github.com/fbkclanna/pmguard/internal/workspace"
	"github.com/spf13/cobra"
)

func newGuardrailsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guardrails",
		Short: "List guardrails declared across the workspace",
		RunE:  runGuardrails,
	}
	cmd.Flags().Bool("all-packages", false, "Include all workspace members")
	cmd.Flags().StringSlice("package", nil, "Include specific workspace members")
	cmd.Flags().StringSlice("exclude-package", nil, "Exclude the given package(s)")
	cmd.Flags().Bool("no-project", false, "Exclude the root project's own guardrails")
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type guardrailInfo struct {
	URI     string `json:"uri"`
	ID      string `json:"id"`
	Version string `json:"version,omitempty"`
}

func runGuardrails(cmd *cobra.Command, _ []string) error {
	manifestPath, _ := cmd.Flags().GetString("manifest")
	allPackages, _ := cmd.Flags().GetBool("all-packages")
	pkgs, _ := cmd.Flags().GetStringSlice("package")
	skip, _ := cmd.Flags().GetStringSlice("exclude-package")
	noProject, _ := cmd.Flags().GetBool("no-project")
	asJSON, _ := cmd.Flags().GetBool("json")

	filter := workspace.NewFilter(allPackages, pkgs, skip, !noProject)

	var uris []string
	err := manifest.View(manifestPath, func(p *manifest.Project) error {
		var aggErr error
		uris, aggErr = workspace.Guardrails(p, filter)
		return aggErr
	})
	if err != nil {
		return err
	}

	infos := make([]guardrailInfo, 0, len(uris))
	for _, uri := range uris {
		ref, err := hub.ParseURI(uri)
		if err != nil {
			return err
		}
		infos = append(infos, guardrailInfo{URI: uri, ID: ref.ID, Version: ref.Spec})
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	if len(infos) == 0 {
		ui.Warn(out, "No guardrails declared.")
		return nil
	}

	tbl := ui.NewTable(out, "URI", "ID", "VERSION")
	for _, info := range infos {
		version := info.Version
		if version == "" {
			version = "(unpinned)"
		}
		tbl.Row(info.URI, info.ID, version)
	}
	return tbl.Flush()
}
