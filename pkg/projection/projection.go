//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

// Package projection transforms geodetic coordinates into the dataset CRS,
// British National Grid (EPSG:27700).
package projection

import (
	"fmt"

	"waben/pkg/define"

	"github.com/paulmach/orb"
	"github.com/wroge/wgs84"
)

// ToNationalGrid reprojects a lon/lat geometry into EPSG:27700 in place on
// a cloned geometry.
func ToNationalGrid(g orb.Geometry) (orb.Geometry, error) {
	to := wgs84.EPSG().Code(define.DatasetSRID)
	if to == nil {
		return nil, fmt.Errorf("EPSG:%d is not supported", define.DatasetSRID)
	}
	transform := wgs84.Transform(wgs84.LonLat(), to)

	// Points are value types, they cannot be projected in place.
	if p, ok := g.(orb.Point); ok {
		east, north, _ := transform(p[0], p[1], 0)
		return orb.Point{east, north}, nil
	}

	out := orb.Clone(g)
	project(out, transform)
	return out, nil
}

func project(g orb.Geometry, transform wgs84.Func) {
	switch v := g.(type) {
	case orb.MultiPoint:
		projectPoints(v, transform)
	case orb.LineString:
		projectPoints(v, transform)
	case orb.Ring:
		projectPoints(v, transform)
	case orb.Polygon:
		for _, ring := range v {
			projectPoints(ring, transform)
		}
	case orb.MultiPolygon:
		for _, poly := range v {
			for _, ring := range poly {
				projectPoints(ring, transform)
			}
		}
	case orb.MultiLineString:
		for _, ls := range v {
			projectPoints(ls, transform)
		}
	case orb.Collection:
		for _, member := range v {
			project(member, transform)
		}
	}
}

func projectPoints(pts []orb.Point, transform wgs84.Func) {
	for i := range pts {
		east, north, _ := transform(pts[i][0], pts[i][1], 0)
		pts[i][0], pts[i][1] = east, north
	}
}
