//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package hexgrid_test

import (
	"testing"

	"waben/pkg/hexgrid"

	"github.com/stretchr/testify/require"
)

const validCell = "87283472bffffff"

func TestParseCell(t *testing.T) {
	_, err := hexgrid.ParseCell(validCell)
	require.NoError(t, err)

	_, err = hexgrid.ParseCell("not a hex id")
	require.Error(t, err)

	// right shape, not a real cell
	_, err = hexgrid.ParseCell("fffffffffffffff")
	require.Error(t, err)
}

func TestBoundaryPolygonClosed(t *testing.T) {
	poly, err := hexgrid.BoundaryPolygon(validCell)
	require.NoError(t, err)
	require.Len(t, poly, 1)

	ring := poly[0]
	// hexagon plus the closing vertex; pentagon cells have one fewer
	require.GreaterOrEqual(t, len(ring), 6)
	require.Equal(t, ring[0], ring[len(ring)-1])

	for _, pt := range ring {
		require.GreaterOrEqual(t, pt[0], -180.0)
		require.LessOrEqual(t, pt[0], 180.0)
		require.GreaterOrEqual(t, pt[1], -90.0)
		require.LessOrEqual(t, pt[1], 90.0)
	}
}

func TestResolution(t *testing.T) {
	res, err := hexgrid.Resolution(validCell)
	require.NoError(t, err)
	require.Equal(t, 7, res)
}
