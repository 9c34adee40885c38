//  SPDX-FileCopyrightText: 2024-2024 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package dataset

import (
	"fmt"

	"waben/pkg/registry"
	"waben/pkg/utils"
	"waben/pkg/workspace"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove generated files",
	Long:  "Remove every csv/geojson file a previous run left in the workspace out dir.",
	RunE:  cleanDataset,
}

func init() {
	registry.Commands = append(registry.Commands, registry.CliCommand{
		Command: cleanCmd,
		Parent:  datasetCmd,
	})
}

func cleanDataset(cmd *cobra.Command, args []string) error {
	outDir := workspace.OutDir()
	logrus.Infof("Removing %s", outDir)
	if err := utils.GuardedRemoveAll(outDir); err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}
	return nil
}
