//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package dataset

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	cmdflags "waben/cmd/waben/flags"
	"waben/pkg/api/server"
	"waben/pkg/config"
	"waben/pkg/dataset"
	"waben/pkg/db"
	"waben/pkg/define"
	"waben/pkg/events"
	"waben/pkg/geometry"
	"waben/pkg/pairs"
	"waben/pkg/registry"
	"waben/pkg/system"
	"waben/pkg/workspace"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// The hex id count for the whole table lives in one map during a scan.
const minScanMemoryMiB = 2048

var (
	findCmd = &cobra.Command{
		Use:   "find",
		Short: "Find duplicate hex rows",
		Long:  "Stream every hex id out of the dataset, count duplicates, and dump the duplicated rows to geojson.",
		RunE:  findDataset,
	}

	findOpts struct {
		readCachedDuplicates bool
		apiSocket            string
	}
)

func init() {
	registry.Commands = append(registry.Commands, registry.CliCommand{
		Command: findCmd,
		Parent:  datasetCmd,
	})

	flags := findCmd.Flags()
	flags.BoolVar(&findOpts.readCachedDuplicates, cmdflags.CachedDuplicatesFlag, false,
		"reuse the duplicate id csv from a previous run instead of re-counting")
	flags.StringVar(&findOpts.apiSocket, cmdflags.APISocketFlag, "",
		"unix socket URL to serve the progress API on while the run is active")
}

func findDataset(cmd *cobra.Command, args []string) error {
	events.CurrentStage = events.Find

	if err := system.CheckMaxMemory(minScanMemoryMiB); err != nil {
		return fmt.Errorf("refusing to scan: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config failed: %w", err)
	}

	// Concurrent scans hammer the same table, warn if one is already running.
	if pids, err := system.FindPIDByCmdline("dataset find"); err == nil && len(pids) > 1 {
		logrus.Warnf("another dataset find appears to be running (pids %v)", pids)
	}

	g, gctx := errgroup.WithContext(cmd.Context())
	ctx, done := context.WithCancel(gctx)

	// WatchPPID
	g.Go(func() error {
		const tickerInterval = 300 * time.Millisecond
		ticker := time.NewTicker(tickerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				isRunning, err := system.IsProcessAlive(registry.PPID)
				if !isRunning {
					return fmt.Errorf("PPID %d exited, possible error: %w", registry.PPID, err)
				}
			}
		}
	})

	// Listen signal
	g.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(sigChan)
		select {
		case <-ctx.Done():
			return nil
		case s := <-sigChan:
			return fmt.Errorf("catch signal: %v", s.String())
		}
	})

	// Progress Rest API
	if findOpts.apiSocket != "" {
		apiurl, err := url.Parse(findOpts.apiSocket)
		if err != nil {
			done()
			return fmt.Errorf("invalid api socket url %q: %w", findOpts.apiSocket, err)
		}
		g.Go(func() error {
			logrus.Infof("Start progress api service at %q", findOpts.apiSocket)
			return server.RestService(ctx, apiurl)
		})
	}

	// The scan itself; once it finishes the other goroutines wind down.
	g.Go(func() error {
		defer done()
		return runFind(ctx, cfg)
	})

	return g.Wait() //nolint:wrapcheck
}

func runFind(ctx context.Context, cfg *config.Config) error {
	events.NotifyFind(events.ConnectDatabase)
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect failed: %w", err)
	}
	defer pool.Close()

	scanner := dataset.NewScanner(pool, cfg.Dataset)
	outDir := workspace.OutDir()

	var duplicates []pairs.Pair
	if findOpts.readCachedDuplicates {
		logrus.Info("Reading duplicate hex ids from csv file...")
		duplicates, err = pairs.ReadCSV(filepath.Join(outDir, define.DuplicateIDsFileName))
		if err != nil {
			return fmt.Errorf("read cached duplicates failed: %w", err)
		}
	} else {
		logrus.Info("Getting all hex ids and their counts from the database...")
		events.NotifyFind(events.CountHexIDs)
		counts, err := scanner.CountHexIDs(ctx)
		if err != nil {
			return fmt.Errorf("count hex ids failed: %w", err)
		}

		logrus.Infof("Writing all hex_ids along with their counts to %s", define.HexIDsFileName)
		events.NotifyFind(events.WriteSnapshot)
		snapshotFile := filepath.Join(outDir, define.HexIDsFileName)
		if err := pairs.WriteCSV(snapshotFile, dataset.AllPairs(counts)); err != nil {
			return fmt.Errorf("write id snapshot failed: %w", err)
		}
		if err := pairs.Compress(snapshotFile, filepath.Join(outDir, define.HexIDsSnapshotName)); err != nil {
			logrus.Warnf("failed to compress id snapshot: %v", err)
		}

		logrus.Info("Finding duplicate hex_ids...")
		duplicates = dataset.FindDuplicates(counts)

		logrus.Infof("Writing duplicate hex_ids to %s", define.DuplicateIDsFileName)
		if err := pairs.WriteCSV(filepath.Join(outDir, define.DuplicateIDsFileName), duplicates); err != nil {
			return fmt.Errorf("write duplicate ids failed: %w", err)
		}
	}

	if len(duplicates) == 0 {
		logrus.Info("No duplicate hex ids found")
		return nil
	}

	logrus.Info("Reading all duplicate hex rows from database...")
	events.NotifyFind(events.FetchRows)
	hexIDs := make([]string, 0, len(duplicates))
	for _, p := range duplicates {
		hexIDs = append(hexIDs, p.HexID)
	}
	rows, err := scanner.FetchRowsByHexID(ctx, hexIDs)
	if err != nil {
		return fmt.Errorf("fetch duplicate rows failed: %w", err)
	}

	logrus.Info("Converting geometries from WKB...")
	features, err := rowsToFeatures(rows, cfg.Dataset.GeomColumn)
	if err != nil {
		return err
	}

	logrus.Infof("Writing duplicates to %s", define.DuplicatesFileName)
	events.NotifyFind(events.WriteDuplicates)
	if err := geometry.WriteFeatures(filepath.Join(outDir, define.DuplicatesFileName), features); err != nil {
		return fmt.Errorf("write duplicates failed: %w", err)
	}
	return nil
}

// rowsToFeatures decodes the geometry column of every row and moves the
// remaining columns into feature properties, dropping the raw wkb.
func rowsToFeatures(rows *dataset.Rows, geomColumn string) ([]geometry.Feature, error) {
	geomIdx := -1
	for i, name := range rows.Columns {
		if name == geomColumn {
			geomIdx = i
			break
		}
	}
	if geomIdx < 0 {
		return nil, fmt.Errorf("dataset has no %q column", geomColumn)
	}

	features := make([]geometry.Feature, 0, len(rows.Values))
	for i, values := range rows.Values {
		geom, err := geometry.DecodeColumn(values[geomIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		props := make(map[string]any, len(rows.Columns)-1)
		for j, name := range rows.Columns {
			if j == geomIdx {
				continue
			}
			if b, ok := values[j].([]byte); ok {
				props[name] = hex.EncodeToString(b)
				continue
			}
			props[name] = values[j]
		}
		features = append(features, geometry.Feature{Geometry: geom, Properties: props})
	}
	return features, nil
}
