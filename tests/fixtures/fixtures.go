//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

// Package fixtures locates the sample dataset files checked in under
// tests/fixtures no matter which package's test is running: it walks up
// from the test's working directory until it hits the module root.
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DuplicatesFixture is a tiny feature collection shaped like the
// duplicates file `dataset find` writes: two rows sharing a hex id plus
// one row with a null measure.
const DuplicatesFixture = "duplicates.geojson"

var dir string
var once sync.Once

// GetTestFixtures returns the absolute path of a named fixture file.
func GetTestFixtures(name string) string {
	once.Do(func() {
		cwd, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current working directory: %w", err))
		}
		dir = findFixtureDir(cwd)
	})

	return filepath.Join(dir, name)
}

func findFixtureDir(dir string) string {
	if dir == "/" || filepath.VolumeName(dir) == dir {
		panic(fmt.Errorf("could not find module root (no go.mod above the test dir)"))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		panic(fmt.Errorf("failed to read directory %q: %w", dir, err))
	}

	for _, entry := range entries {
		if entry.Name() == "go.mod" {
			return filepath.Join(dir, "tests", "fixtures")
		}
	}

	return findFixtureDir(filepath.Dir(dir))
}
