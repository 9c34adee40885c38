//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

// envprep is the non-interactive version of the manual library setup dance:
// check that openssl/libpq are installed, resolve their install prefixes,
// and export LDFLAGS/CPPFLAGS so a native-extension build can find them.
//
//	eval "$(envprep show)"
//	envprep write --output build.env
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"waben/pkg/doctor"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func main() {
	app := cli.Command{
		Name:  "envprep",
		Usage: "prepare the native build environment for the postgres toolchain",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "formula",
				Usage: "homebrew formula to resolve, repeatable; defaults to openssl@3 and libpq",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "fail when any library is missing",
			},
		},
		Commands: []*cli.Command{
			&showCmd,
			&writeCmd,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logrus.Error(err.Error())
		logrus.Exit(1)
	}
	logrus.Exit(0)
}

var showCmd = cli.Command{
	Name:   "show",
	Usage:  "print eval-able export lines on stdout",
	Action: show,
}

var writeCmd = cli.Command{
	Name:   "write",
	Usage:  "write the exports to a dotenv file",
	Action: write,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "output",
			Usage: "file to write",
			Value: "build.env",
		},
	},
}

func show(ctx context.Context, cmd *cli.Command) error {
	exports, err := resolve(ctx, cmd)
	if err != nil {
		return err
	}
	for _, line := range exports.ShellLines() {
		fmt.Fprintln(os.Stdout, line)
	}
	return nil
}

func write(ctx context.Context, cmd *cli.Command) error {
	exports, err := resolve(ctx, cmd)
	if err != nil {
		return err
	}
	output := cmd.String("output")
	if err := exports.WriteDotenv(output); err != nil {
		return fmt.Errorf("write %q failed: %w", output, err)
	}
	logrus.Infof("Wrote exports to %q", output)
	return nil
}

func resolve(ctx context.Context, cmd *cli.Command) (doctor.Exports, error) {
	libs := doctor.DefaultLibraries()
	if formulae := cmd.StringSlice("formula"); len(formulae) > 0 {
		libs = libs[:0]
		for _, f := range formulae {
			libs = append(libs, doctor.Library{Formula: f, PkgConfig: strings.TrimSuffix(f, "@3")})
		}
	}

	resolver := doctor.NewResolver()
	resolved, errs := resolver.ResolveAll(ctx, libs)
	if len(errs) > 0 && cmd.Bool("strict") {
		return doctor.Exports{}, fmt.Errorf("%d of %d libraries missing", len(errs), len(libs))
	}
	return doctor.BuildExports(resolved), nil
}
