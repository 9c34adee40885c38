//  SPDX-FileCopyrightText: 2024-2024 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package dataset

import (
	"waben/cmd/waben/validate"
	"waben/pkg/registry"

	"github.com/spf13/cobra"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Work on the national dataset",
	Long:  "Find duplicate hex rows in the national dataset, merge them, clean up generated files.",
	RunE:  validate.SubCommandExists,
}

func init() {
	registry.Commands = append(registry.Commands, registry.CliCommand{
		Command: datasetCmd,
	})
}
