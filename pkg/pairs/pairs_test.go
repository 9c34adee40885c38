//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package pairs_test

import (
	"os"
	"path/filepath"
	"testing"

	"waben/pkg/pairs"

	"github.com/go-playground/assert/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundtrip(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "pairs.csv")

	in := []pairs.Pair{
		{HexID: "87283472bffffff", Count: 3},
		{HexID: "872834730ffffff", Count: 1},
	}
	err := pairs.WriteCSV(file, in)
	require.NoError(t, err)

	out, err := pairs.ReadCSV(file)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestReadMalformed(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "bad.csv")
	require.NoError(t, os.WriteFile(file, []byte("87283472bffffff,notanumber\n"), 0o644))

	_, err := pairs.ReadCSV(file)
	require.Error(t, err)
}

func TestZstdRoundtrip(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "pairs.csv")
	compressed := filepath.Join(tmp, "pairs.csv.zst")
	restored := filepath.Join(tmp, "restored.csv")

	err := pairs.WriteCSV(src, []pairs.Pair{{HexID: "87283472bffffff", Count: 2}})
	require.NoError(t, err)

	require.NoError(t, pairs.Compress(src, compressed))
	require.NoError(t, pairs.Decompress(compressed, restored))

	want, err := os.ReadFile(src)
	require.NoError(t, err)
	got, err := os.ReadFile(restored)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}
