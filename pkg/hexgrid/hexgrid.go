//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

// Package hexgrid maps textual H3 cell ids onto geodetic boundary polygons.
package hexgrid

import (
	"fmt"

	"waben/pkg/define"

	"github.com/paulmach/orb"
	h3 "github.com/uber/h3-go/v4"
)

// ParseCell validates the textual hex id and converts it to an H3 cell.
func ParseCell(hexID string) (h3.Cell, error) {
	if !define.HexIDRegex.MatchString(hexID) {
		return 0, fmt.Errorf("%q: %w", hexID, define.ErrHexIDRegex)
	}
	cell := h3.Cell(h3.IndexFromString(hexID))
	if !cell.IsValid() {
		return 0, fmt.Errorf("%q is not a valid H3 cell: %w", hexID, define.ErrInvalidArg)
	}
	return cell, nil
}

// BoundaryPolygon returns the cell boundary as a closed lon/lat ring.
// H3 reports vertices lat-first; orb points are lon-first, so each
// coordinate pair is flipped.
func BoundaryPolygon(hexID string) (orb.Polygon, error) {
	cell, err := ParseCell(hexID)
	if err != nil {
		return nil, err
	}

	boundary := cell.Boundary()
	ring := make(orb.Ring, 0, len(boundary)+1)
	for _, v := range boundary {
		ring = append(ring, orb.Point{v.Lng, v.Lat})
	}
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return orb.Polygon{ring}, nil
}

// Resolution returns the H3 resolution of the given id.
func Resolution(hexID string) (int, error) {
	cell, err := ParseCell(hexID)
	if err != nil {
		return 0, err
	}
	return cell.Resolution(), nil
}
