//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package geometry

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/paulmach/orb/planar"
)

// DecodeWKB parses the raw bytes of a postgis geometry column.
func DecodeWKB(data []byte) (orb.Geometry, error) {
	g, err := wkb.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode wkb geometry: %w", err)
	}
	return g, nil
}

// EncodeWKB is the inverse of DecodeWKB.
func EncodeWKB(g orb.Geometry) ([]byte, error) {
	data, err := wkb.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("failed to encode wkb geometry: %w", err)
	}
	return data, nil
}

func appendPolys(g orb.Geometry, list *[]orb.Polygon) {
	switch v := g.(type) {
	case orb.Polygon:
		if len(v) > 0 && len(v[0]) > 0 {
			*list = append(*list, v)
		}
	case orb.MultiPolygon:
		for _, p := range v {
			appendPolys(p, list)
		}
	case orb.Collection:
		for _, member := range v {
			appendPolys(member, list)
		}
	}
}

// KeepPolygonal processes a geometry and keeps only polygons, returning an
// empty polygon if the geometry has no area. GeometryCollections are
// flattened into a MultiPolygon, dropping non-polygonal members.
func KeepPolygonal(g orb.Geometry) orb.Geometry {
	switch g.(type) {
	case orb.Polygon, orb.MultiPolygon:
		return g
	case orb.Collection:
		var polys []orb.Polygon
		appendPolys(g, &polys)
		return orb.MultiPolygon(polys)
	default:
		return orb.Polygon{}
	}
}

// Area returns the planar area of a geometry. The dataset lives in a
// projected CRS (EPSG:27700, meters), so planar area is the right measure.
func Area(g orb.Geometry) float64 {
	return math.Abs(planar.Area(g))
}
