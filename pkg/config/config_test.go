//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package config_test

import (
	"testing"

	"waben/pkg/config"
	"waben/pkg/define"
	"waben/pkg/workspace"

	"github.com/go-playground/assert/v2"
	"github.com/stretchr/testify/require"
)

func setupWorkspace(t *testing.T) {
	t.Helper()
	_, err := workspace.Set(t.TempDir())
	require.NoError(t, err)
}

func TestLoadDefaults(t *testing.T) {
	setupWorkspace(t)
	t.Setenv(define.DatabaseURLEnv, "")

	c, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, define.DefaultTable, c.Dataset.Table)
	assert.Equal(t, define.DefaultHexColumn, c.Dataset.HexColumn)
	assert.Equal(t, define.DefaultCountBatchSize, c.Dataset.CountBatchSize)
}

func TestWriteThenLoad(t *testing.T) {
	setupWorkspace(t)
	t.Setenv(define.DatabaseURLEnv, "")

	c := config.Default()
	c.Dataset.Table = "regional_dataset"
	c.Dataset.RowsBatchSize = 500
	require.NoError(t, c.Write())

	loaded, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "regional_dataset", loaded.Dataset.Table)
	assert.Equal(t, 500, loaded.Dataset.RowsBatchSize)
}

func TestEnvOverridesDatabaseURL(t *testing.T) {
	setupWorkspace(t)

	c := config.Default()
	c.DatabaseURL = "postgres://file/db"
	require.NoError(t, c.Write())

	t.Setenv(define.DatabaseURLEnv, "postgres://env/db")
	loaded, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://env/db", loaded.DatabaseURL)
}
