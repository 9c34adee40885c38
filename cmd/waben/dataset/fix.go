//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package dataset

import (
	"fmt"

	"waben/pkg/config"
	"waben/pkg/dedupe"
	"waben/pkg/define"
	"waben/pkg/events"
	"waben/pkg/geometry"
	"waben/pkg/paths"
	"waben/pkg/registry"
	"waben/pkg/workspace"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Merge duplicate hex rows",
	Long:  "Group the duplicated rows found by `dataset find` by hex id and merge each group down to one row.",
	RunE:  fixDataset,
}

func init() {
	registry.Commands = append(registry.Commands, registry.CliCommand{
		Command: fixCmd,
		Parent:  datasetCmd,
	})
}

func fixDataset(cmd *cobra.Command, args []string) error {
	events.CurrentStage = events.Fix

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config failed: %w", err)
	}

	outDir := paths.New(workspace.OutDir())
	src, err := outDir.Append(define.DuplicatesFileName)
	if err != nil {
		return fmt.Errorf("bad duplicates path: %w", err)
	}
	if !src.Exist() {
		return fmt.Errorf("%q not found, run `dataset find` first", src.GetPath())
	}

	logrus.Infof("Reading %s...", define.DuplicatesFileName)
	events.NotifyFix(events.ReadDuplicates)
	features, err := geometry.ReadFeatures(src.GetPath())
	if err != nil {
		return fmt.Errorf("read duplicates failed: %w", err)
	}

	logrus.Info("Grouping by hex id and deduplicating...")
	events.NotifyFix(events.MergeGroups)
	merger := &dedupe.Merger{
		HexColumn:     cfg.Dataset.HexColumn,
		MeasureColumn: cfg.Dataset.MeasureColumn,
	}
	merged, err := merger.MergeAll(features)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	dst, err := outDir.Append(define.DeduplicatedFileName)
	if err != nil {
		return fmt.Errorf("bad output path: %w", err)
	}
	logrus.Infof("Writing %d rows to %s", len(merged), define.DeduplicatedFileName)
	events.NotifyFix(events.WriteDeduplicate)
	if err := geometry.WriteFeatures(dst.GetPath(), merged); err != nil {
		return fmt.Errorf("write deduplicated rows failed: %w", err)
	}
	return nil
}
