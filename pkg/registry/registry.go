//  SPDX-FileCopyrightText: 2024-2024 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package registry

import (
	"fmt"
	"os"

	"waben/pkg/config"
	"waben/pkg/events"
	"waben/pkg/log"
	"waben/pkg/progress"
	"waben/pkg/system"
	"waben/pkg/version"
	"waben/pkg/workspace"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type CliCommand struct {
	Command *cobra.Command
	Parent  *cobra.Command
}

var (
	exitCode = 0
	// Commands All commands will be registered here
	Commands []CliCommand
)

// Root flag values, bound by cmd/waben.
var (
	WorkSpace string
	LogOut    string
	ReportURL string
	PPID      int
)

func SetExitCode(code int) {
	exitCode = code
}

func GetExitCode() int {
	return exitCode
}

func NotifyAndExit(code int) {
	events.NotifyExit()
	progress.Close()
	SetExitCode(code)
	os.Exit(GetExitCode())
}

func showLogHeader() {
	logrus.Infof("%s", system.Version())
	logrus.Info(fmt.Sprintf("CMDLINE: %q", os.Args))
	logrus.Infof("WABEN VERSION: %s", version.Version())
	logrus.Infof("WABEN RUN: %s", version.RunID())
	logrus.Infof("WABEN PID: %d, PPID: %d", os.Getpid(), PPID)
	logrus.Infof("WABEN WORKSPACE: %s", WorkSpace)
}

// PreRunE prepares the process for any subcommand: workspace layout, .env,
// log output, and the log header.
func PreRunE(cmd *cobra.Command, args []string) error {
	ws, err := workspace.Set(WorkSpace)
	if err != nil {
		return fmt.Errorf("set workspace error: %w", err)
	}

	config.LoadDotenv()
	log.Setup(LogOut, ws)
	showLogHeader()

	events.ReportURL = ReportURL
	return nil
}
