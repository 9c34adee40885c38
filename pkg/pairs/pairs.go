//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

// Package pairs reads and writes the `<hex_id>,<count>` csv files the finder
// leaves in the workspace out dir.
package pairs

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

type Pair struct {
	HexID string
	Count int
}

// WriteCSV writes one `id,count` line per pair.
func WriteCSV(filename string, items []Pair) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", filename, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, p := range items {
		if _, err := fmt.Fprintf(w, "%s,%d\n", p.HexID, p.Count); err != nil {
			return fmt.Errorf("failed to write %q: %w", filename, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush %q: %w", filename, err)
	}
	return f.Close() //nolint:wrapcheck
}

// ReadCSV parses a pairs file written by WriteCSV.
func ReadCSV(filename string) ([]Pair, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", filename, err)
	}
	defer f.Close()

	var out []Pair
	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", filename, err)
	}
	for _, row := range records {
		if len(row) < 2 {
			return nil, fmt.Errorf("malformed row in %q: %v", filename, row)
		}
		count, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("bad count in %q: %w", filename, err)
		}
		out = append(out, Pair{HexID: row[0], Count: count})
	}
	return out, nil
}
