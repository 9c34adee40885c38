//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"waben/pkg/paths"
	"waben/pkg/workspace"

	"github.com/stretchr/testify/require"
)

func TestExistAndMakeBaseDir(t *testing.T) {
	tmp := t.TempDir()
	p := paths.New(filepath.Join(tmp, "a", "b", "file.txt"))

	require.False(t, p.Exist())
	require.NoError(t, p.MakeBaseDir())
	require.NoError(t, os.WriteFile(p.GetPath(), []byte("x"), 0o644))
	require.True(t, p.Exist())
}

func TestAppend(t *testing.T) {
	base := paths.New("/work/out")

	p, err := base.Append("duplicates.geojson")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/work/out", "duplicates.geojson"), p.GetPath())

	_, err = base.Append("")
	require.Error(t, err)
}

func TestDiscardBytesAtBeginSmallFileIsNoop(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "log.txt")
	require.NoError(t, os.WriteFile(file, []byte("short\n"), 0o644))

	require.NoError(t, paths.New(file).DiscardBytesAtBegin(5))

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Equal(t, "short\n", string(b))
}

func TestDeleteSafetyRefusesOutsideWorkspace(t *testing.T) {
	_, err := workspace.Set(t.TempDir())
	require.NoError(t, err)

	outside := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

	err = paths.New(outside).Delete(true)
	require.Error(t, err)
	require.FileExists(t, outside)
}

func TestDeleteInsideWorkspace(t *testing.T) {
	ws, err := workspace.Set(t.TempDir())
	require.NoError(t, err)

	inside := filepath.Join(ws, "out", "file.txt")
	require.NoError(t, os.WriteFile(inside, []byte("x"), 0o644))

	require.NoError(t, paths.New(inside).Delete(true))
	require.NoFileExists(t, inside)
}
