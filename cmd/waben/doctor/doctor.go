//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package doctor

import (
	"fmt"
	"os"
	"strings"

	cmdflags "waben/cmd/waben/flags"
	"waben/pkg/doctor"
	"waben/pkg/registry"
	"waben/pkg/workspace"

	"github.com/docker/go-units"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	doctorCmd = &cobra.Command{
		Use:   "doctor",
		Short: "Check the native build environment",
		Long:  "Verify the native libraries the postgres tooling links against are installed, and print the LDFLAGS/CPPFLAGS exports a build needs.",
		RunE:  runDoctor,
	}

	doctorOpts struct {
		strict   bool
		formulae []string
	}
)

func init() {
	registry.Commands = append(registry.Commands, registry.CliCommand{
		Command: doctorCmd,
	})

	flags := doctorCmd.Flags()
	flags.BoolVar(&doctorOpts.strict, cmdflags.StrictFlag, false, "exit non-zero when any library is missing")
	flags.StringSliceVar(&doctorOpts.formulae, cmdflags.FormulaFlag, nil, "homebrew formula to check instead of the defaults")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	libs := doctor.DefaultLibraries()
	if len(doctorOpts.formulae) > 0 {
		libs = libs[:0]
		for _, f := range doctorOpts.formulae {
			libs = append(libs, doctor.Library{Formula: f, PkgConfig: strings.TrimSuffix(f, "@3")})
		}
	}

	resolver := doctor.NewResolver()
	resolved, errs := resolver.ResolveAll(cmd.Context(), libs)

	for _, res := range resolved {
		logrus.Infof("%-12s prefix=%s", res.Library.Formula, res.Prefix)
	}

	exports := doctor.BuildExports(resolved)
	for _, line := range exports.ShellLines() {
		fmt.Fprintln(os.Stdout, line)
	}

	if report, err := doctor.CollectHostReport(workspace.Get()); err == nil {
		logrus.Infof("host: %s %s (%s), memory %s, free disk %s",
			report.Platform, report.PlatformVersion, report.KernelArch,
			units.BytesSize(float64(report.TotalMemory)), units.BytesSize(float64(report.FreeDisk)))
	} else {
		logrus.Warnf("host report failed: %v", err)
	}

	if len(errs) > 0 && doctorOpts.strict {
		return fmt.Errorf("%d of %d libraries missing", len(errs), len(libs))
	}
	return nil
}
