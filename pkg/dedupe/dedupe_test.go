//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package dedupe_test

import (
	"testing"

	"waben/pkg/dedupe"
	"waben/pkg/geometry"
	"waben/tests/fixtures"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

const cell = "87283472bffffff"

func square(size float64) orb.Polygon {
	return orb.Polygon{orb.Ring{{0, 0}, {size, 0}, {size, size}, {0, size}, {0, 0}}}
}

func feature(size float64, evi any) geometry.Feature {
	return geometry.Feature{
		Geometry: square(size),
		Properties: map[string]any{
			"hex_id": cell,
			"evi":    evi,
		},
	}
}

func merger() *dedupe.Merger {
	return &dedupe.Merger{HexColumn: "hex_id", MeasureColumn: "evi"}
}

func TestMergeSingleRowPassesThrough(t *testing.T) {
	f := feature(1, 0.5)
	got, err := merger().Merge(cell, []geometry.Feature{f})
	require.NoError(t, err)
	require.Equal(t, f, got)
}

func TestMergeLargestAreaWins(t *testing.T) {
	small := feature(1, 0.1)
	big := feature(10, 0.9)

	got, err := merger().Merge(cell, []geometry.Feature{small, big})
	require.NoError(t, err)
	require.Equal(t, 0.9, got.Properties["evi"])

	// the winner carries the canonical cell boundary, not its own shape
	poly, ok := got.Geometry.(orb.Polygon)
	require.True(t, ok)
	require.GreaterOrEqual(t, len(poly[0]), 6)
	require.NotEqual(t, big.Geometry, got.Geometry)
}

func TestMergeZeroMeasureStaysEligible(t *testing.T) {
	zero := feature(10, 0.0)
	small := feature(1, 0.7)

	got, err := merger().Merge(cell, []geometry.Feature{small, zero})
	require.NoError(t, err)
	require.Equal(t, 0.0, got.Properties["evi"])
}

func TestMergeSkipsNullMeasure(t *testing.T) {
	winner := feature(1, 0.1)
	nullRow := feature(100, nil)

	got, err := merger().Merge(cell, []geometry.Feature{winner, nullRow})
	require.NoError(t, err)
	require.Equal(t, 0.1, got.Properties["evi"])
}

func TestMergeAll(t *testing.T) {
	other := feature(1, 0.3)
	other.Properties["hex_id"] = "872834730ffffff"

	features := []geometry.Feature{
		feature(1, 0.1),
		feature(2, 0.2),
		other,
	}

	merged, err := merger().MergeAll(features)
	require.NoError(t, err)
	require.Len(t, merged, 2)

	// output ids are sorted
	require.Equal(t, cell, merged[0].Properties["hex_id"])
	require.Equal(t, "872834730ffffff", merged[1].Properties["hex_id"])
}

func TestMergeAllFromFile(t *testing.T) {
	features, err := geometry.ReadFeatures(fixtures.GetTestFixtures(fixtures.DuplicatesFixture))
	require.NoError(t, err)
	require.Len(t, features, 3)

	merged, err := merger().MergeAll(features)
	require.NoError(t, err)
	require.Len(t, merged, 2)
	require.Equal(t, 0.58, merged[0].Properties["evi"])
}

func TestMergeAllMissingHexID(t *testing.T) {
	f := feature(1, 0.1)
	delete(f.Properties, "hex_id")

	_, err := merger().MergeAll([]geometry.Feature{f})
	require.Error(t, err)
}
