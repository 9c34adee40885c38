//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package geometry_test

import (
	"encoding/hex"
	"path/filepath"
	"testing"

	"waben/pkg/geometry"

	"github.com/go-playground/assert/v2"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

var unitSquare = orb.Polygon{orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}

func TestWKBRoundtrip(t *testing.T) {
	data, err := geometry.EncodeWKB(unitSquare)
	require.NoError(t, err)

	g, err := geometry.DecodeWKB(data)
	require.NoError(t, err)
	assert.Equal(t, unitSquare, g)
}

func TestDecodeColumn(t *testing.T) {
	data, err := geometry.EncodeWKB(unitSquare)
	require.NoError(t, err)

	// bytea comes back as raw bytes
	g, err := geometry.DecodeColumn(data)
	require.NoError(t, err)
	assert.Equal(t, unitSquare, g)

	// postgis text protocol hands back hex
	g, err = geometry.DecodeColumn(hex.EncodeToString(data))
	require.NoError(t, err)
	assert.Equal(t, unitSquare, g)

	_, err = geometry.DecodeColumn(42)
	require.Error(t, err)
}

func TestKeepPolygonal(t *testing.T) {
	// polygons pass through
	g := geometry.KeepPolygonal(unitSquare)
	assert.Equal(t, unitSquare, g)

	// collections are flattened to a multipolygon, dropping points
	collection := orb.Collection{
		unitSquare,
		orb.Point{5, 5},
		orb.MultiPolygon{unitSquare},
	}
	g = geometry.KeepPolygonal(collection)
	mp, ok := g.(orb.MultiPolygon)
	require.True(t, ok)
	require.Len(t, mp, 2)

	// non-areal input becomes an empty polygon
	g = geometry.KeepPolygonal(orb.LineString{{0, 0}, {1, 1}})
	poly, ok := g.(orb.Polygon)
	require.True(t, ok)
	require.Len(t, poly, 0)
}

func TestArea(t *testing.T) {
	require.InDelta(t, 1.0, geometry.Area(unitSquare), 1e-9)
	require.Equal(t, 0.0, geometry.Area(orb.Polygon{}))
}

func TestFeatureFileRoundtrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "features.geojson")

	in := []geometry.Feature{
		{
			Geometry:   unitSquare,
			Properties: map[string]any{"hex_id": "87283472bffffff", "evi": 0.42},
		},
	}
	require.NoError(t, geometry.WriteFeatures(file, in))

	out, err := geometry.ReadFeatures(file)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "87283472bffffff", out[0].Properties["hex_id"])
	require.InDelta(t, 0.42, out[0].Properties["evi"].(float64), 1e-9)

	poly, ok := out[0].Geometry.(orb.Polygon)
	require.True(t, ok)
	assert.Equal(t, unitSquare, poly)
}
