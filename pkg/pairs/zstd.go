//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package pairs

import (
	"fmt"
	"os"

	"github.com/DataDog/zstd"
)

// Compress writes a zstd-compressed copy of src to target. The full-dataset
// id snapshot is large and append-only, so it gets compressed alongside the
// plain csv.
func Compress(src, target string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read source file: %w", err)
	}

	compressed, err := zstd.Compress(nil, data)
	if err != nil {
		return fmt.Errorf("failed to compress file: %w", err)
	}

	if err = os.WriteFile(target, compressed, 0644); err != nil {
		return fmt.Errorf("failed to write compressed file: %w", err)
	}
	return nil
}

// Decompress restores a file written by Compress.
func Decompress(src, target string) error {
	file, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read compressed file: %w", err)
	}

	data, err := zstd.Decompress(nil, file)
	if err != nil {
		return fmt.Errorf("failed to decompress file: %w", err)
	}

	if err = os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("failed to write decompressed file: %w", err)
	}
	return nil
}
