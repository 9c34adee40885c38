//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package main

import (
	"os"

	_ "waben/cmd/waben/dataset"
	_ "waben/cmd/waben/doctor"
	cmdflags "waben/cmd/waben/flags"
	"waben/cmd/waben/validate"
	"waben/pkg/events"
	"waben/pkg/registry"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "waben",
	Short:             "Find and fix duplicate hexes in the national dataset",
	Long:              "waben finds rows sharing an H3 hex id in the national dataset, merges them, and checks the native build environment the postgres tooling needs.",
	PersistentPreRunE: registry.PreRunE,
	RunE:              validate.SubCommandExists,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&registry.WorkSpace, cmdflags.WorkspaceFlag, ".waben", "workspace directory for logs, config and outputs")
	flags.StringVar(&registry.LogOut, cmdflags.LogOutFlag, cmdflags.ConsoleBased, "where to write the log: console or file (in workspace log dir)")
	flags.StringVar(&registry.ReportURL, cmdflags.ReportUrlFlag, "", "unix socket URL to send progress events to")
	flags.IntVar(&registry.PPID, cmdflags.PpidFlag, os.Getppid(), "parent process id to watch during long runs")
}

func main() {
	for _, c := range registry.Commands {
		parent := rootCmd
		if c.Parent != nil {
			parent = c.Parent
		}
		parent.AddCommand(c.Command)
	}

	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err.Error())
		events.NotifyError(err)
		registry.SetExitCode(1)
	}
	registry.NotifyAndExit(registry.GetExitCode())
}
