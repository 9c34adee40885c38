//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"waben/pkg/define"
	"waben/pkg/paths"
	"waben/pkg/workspace"

	"github.com/containers/storage/pkg/ioutils"
	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultFilePerm = 0o644

// Dataset describes the table the finder and fixer operate on.
type Dataset struct {
	// Table holding one row per H3 hexagon
	Table string `json:"table,omitempty"`
	// HexColumn is the H3 cell index column
	HexColumn string `json:"hexColumn,omitempty"`
	// GeomColumn holds WKB geometry in EPSG:27700
	GeomColumn string `json:"geomColumn,omitempty"`
	// MeasureColumn must be non-null for a row to win deduplication
	MeasureColumn string `json:"measureColumn,omitempty"`

	CountBatchSize int `json:"countBatchSize,omitempty"`
	RowsBatchSize  int `json:"rowsBatchSize,omitempty"`
}

type Config struct {
	DatabaseURL string  `json:"databaseURL,omitempty"`
	Dataset     Dataset `json:"dataset"`
}

func Default() *Config {
	return &Config{
		Dataset: Dataset{
			Table:          define.DefaultTable,
			HexColumn:      define.DefaultHexColumn,
			GeomColumn:     define.DefaultGeomColumn,
			MeasureColumn:  define.DefaultMeasureColumn,
			CountBatchSize: define.DefaultCountBatchSize,
			RowsBatchSize:  define.DefaultRowsBatchSize,
		},
	}
}

// Load reads the workspace config file if present, otherwise returns the
// defaults. DATABASE_URL from the environment (or a .env file loaded via
// LoadDotenv) always wins over the file value.
func Load() (*Config, error) {
	c := Default()

	file := paths.New(filepath.Join(workspace.ConfigDir(), define.ConfigFileName))
	if file.Exist() {
		b, err := file.Read()
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err = json.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("invalid JSON in %q: %w", file.GetPath(), err)
		}
	}

	if url := os.Getenv(define.DatabaseURLEnv); url != "" {
		c.DatabaseURL = url
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Write persists the configuration atomically into the workspace config dir.
func (c *Config) Write() error {
	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	target := filepath.Join(workspace.ConfigDir(), define.ConfigFileName)
	return ioutils.AtomicWriteFile(target, b, defaultFilePerm) //nolint:wrapcheck
}

func (c *Config) validate() error {
	if c.Dataset.Table == "" || c.Dataset.HexColumn == "" || c.Dataset.GeomColumn == "" {
		return fmt.Errorf("dataset table/hexColumn/geomColumn must not be empty")
	}
	if c.Dataset.CountBatchSize <= 0 {
		c.Dataset.CountBatchSize = define.DefaultCountBatchSize
	}
	if c.Dataset.RowsBatchSize <= 0 {
		c.Dataset.RowsBatchSize = define.DefaultRowsBatchSize
	}
	return nil
}

// LoadDotenv pulls a .env file from the current directory into the process
// environment, matching how the original operator scripts were driven.
// A missing file is not an error.
func LoadDotenv() {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	}
}
