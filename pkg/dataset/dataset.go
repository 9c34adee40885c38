//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

// Package dataset streams the national dataset out of postgres: every hex id
// with its occurrence count, and the full rows behind the duplicated ids.
package dataset

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"waben/pkg/config"
	"waben/pkg/pairs"
	"waben/pkg/progress"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// fetchWorkers bounds the number of concurrent batch queries.
const fetchWorkers = 4

type Scanner struct {
	pool *pgxpool.Pool
	cfg  config.Dataset
}

func NewScanner(pool *pgxpool.Pool, cfg config.Dataset) *Scanner {
	return &Scanner{pool: pool, cfg: cfg}
}

// CountHexIDs streams every hex id in the table and returns each id with
// the number of rows carrying it.
func (s *Scanner) CountHexIDs(ctx context.Context) (map[string]int, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", s.cfg.HexColumn, s.cfg.Table)
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query hex ids: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	count := 0
	for rows.Next() {
		var hexID string
		if err := rows.Scan(&hexID); err != nil {
			return nil, fmt.Errorf("failed to scan hex id: %w", err)
		}
		counts[hexID]++

		count++
		if count%s.cfg.CountBatchSize == 0 {
			logrus.Infof("Got %d", count)
			progress.AddIDsScanned(int64(s.cfg.CountBatchSize))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while streaming hex ids: %w", err)
	}
	progress.AddIDsScanned(int64(count % s.cfg.CountBatchSize))

	return counts, nil
}

// FindDuplicates returns the (id, count) pairs with a count > 1, sorted by
// id so repeated runs produce identical files.
func FindDuplicates(counts map[string]int) []pairs.Pair {
	var duplicates []pairs.Pair
	for hexID, count := range counts {
		if count > 1 {
			duplicates = append(duplicates, pairs.Pair{HexID: hexID, Count: count})
		}
	}
	sort.Slice(duplicates, func(i, j int) bool {
		return duplicates[i].HexID < duplicates[j].HexID
	})
	progress.AddDuplicatesFound(int64(len(duplicates)))
	return duplicates
}

// AllPairs flattens a count map into sorted pairs for the snapshot file.
func AllPairs(counts map[string]int) []pairs.Pair {
	out := make([]pairs.Pair, 0, len(counts))
	for hexID, count := range counts {
		out = append(out, pairs.Pair{HexID: hexID, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].HexID < out[j].HexID
	})
	return out
}

// Rows is the result of a batched row fetch: the table's column names plus
// every matching row's raw values in column order.
type Rows struct {
	Columns []string
	Values  [][]any
}

// FetchRowsByHexID selects every row whose hex id is in hexIDs, batching the
// ids into `= ANY($1)` queries and running batches concurrently. The
// original tooling spliced an IN (...) literal together per batch; ANY with
// a bound array keeps the plan cached and the ids out of the SQL text.
func (s *Scanner) FetchRowsByHexID(ctx context.Context, hexIDs []string) (*Rows, error) {
	result := &Rows{}

	var (
		mu         sync.Mutex
		totalCount = len(hexIDs)
		fetched    int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchWorkers)

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = ANY($1)", s.cfg.Table, s.cfg.HexColumn)

	for start := 0; start < len(hexIDs); start += s.cfg.RowsBatchSize {
		end := start + s.cfg.RowsBatchSize
		if end > len(hexIDs) {
			end = len(hexIDs)
		}
		batch := hexIDs[start:end]

		g.Go(func() error {
			rows, err := s.pool.Query(ctx, query, batch)
			if err != nil {
				return fmt.Errorf("failed to query rows by hex id: %w", err)
			}
			defer rows.Close()

			var colNames []string
			for _, fd := range rows.FieldDescriptions() {
				colNames = append(colNames, fd.Name)
			}

			var batchValues [][]any
			for rows.Next() {
				values, err := rows.Values()
				if err != nil {
					return fmt.Errorf("failed to read row values: %w", err)
				}
				batchValues = append(batchValues, values)
			}
			if err := rows.Err(); err != nil {
				return fmt.Errorf("failed while streaming rows: %w", err)
			}

			mu.Lock()
			if result.Columns == nil {
				result.Columns = colNames
			}
			result.Values = append(result.Values, batchValues...)
			fetched += len(batchValues)
			logrus.Infof("Got %d/%d", fetched, totalCount)
			mu.Unlock()

			progress.AddRowsFetched(int64(len(batchValues)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
