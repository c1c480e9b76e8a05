package main

import (
	"github.com/fbkclanna/pmguard/internal/pm"
	"github.com/spf13/cobra"
)

// Commands pmguard does not reimplement forward to pm verbatim.
var forwardedCommands = []struct {
	name  string
	short string
}{
	{"auth", "Manage package manager authentication"},
	{"lock", "Update the project's lockfile"},
	{"export", "Export the lockfile to an alternate format"},
	{"tree", "Display the project's dependency tree"},
	{"tool", "Run and install commands provided by packages"},
	{"run", "Run a command in the project environment"},
	{"env", "Manage project environments"},
	{"build", "Build distributable artifacts"},
	{"publish", "Upload distributions to an index"},
	{"cache", "Manage the package manager cache"},
	{"self", "Manage the pm executable"},
}

func newForwardCmds() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(forwardedCommands))
	for _, fc := range forwardedCommands {
		name := fc.name
		cmds = append(cmds, &cobra.Command{
			Use:                name,
			Short:              fc.short,
			Long:               fc.short + ".\n\nForwarded to pm; see 'pm " + name + " --help' for details.",
			DisableFlagParsing: true,
			RunE: func(_ *cobra.Command, args []string) error {
				return pm.Call(name, stripDashDash(args)...)
			},
		})
	}
	return cmds
}
