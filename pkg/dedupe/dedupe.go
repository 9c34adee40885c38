//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

// Package dedupe merges the duplicated rows of a hex cell into the single
// row that should survive.
package dedupe

import (
	"fmt"
	"sort"

	"waben/pkg/geometry"
	"waben/pkg/hexgrid"
	"waben/pkg/projection"

	"github.com/sirupsen/logrus"
)

type Merger struct {
	HexColumn     string
	MeasureColumn string
}

// GroupByHexID buckets features on their hex id property. The returned ids
// are sorted so merge output is stable across runs.
func (m *Merger) GroupByHexID(features []geometry.Feature) (map[string][]geometry.Feature, []string, error) {
	groups := make(map[string][]geometry.Feature)
	for i, f := range features {
		id, ok := f.Properties[m.HexColumn].(string)
		if !ok || id == "" {
			return nil, nil, fmt.Errorf("feature %d has no %q property", i, m.HexColumn)
		}
		groups[id] = append(groups[id], f)
	}

	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return groups, ids, nil
}

// Merge collapses one hex cell's rows to a single feature: the row with the
// largest polygonal area wins, rows with a null measure never win, and the
// winner's geometry is replaced with the canonical cell boundary projected
// into the dataset CRS.
func (m *Merger) Merge(hexID string, group []geometry.Feature) (geometry.Feature, error) {
	if len(group) == 0 {
		return geometry.Feature{}, fmt.Errorf("empty group for hex id %q", hexID)
	}
	if len(group) == 1 {
		return group[0], nil
	}

	boundary, err := hexgrid.BoundaryPolygon(hexID)
	if err != nil {
		return geometry.Feature{}, fmt.Errorf("failed to build cell boundary: %w", err)
	}
	hexGeom, err := projection.ToNationalGrid(boundary)
	if err != nil {
		return geometry.Feature{}, fmt.Errorf("failed to project cell boundary: %w", err)
	}

	var (
		winner      *geometry.Feature
		largestArea float64
	)
	for idx := range group {
		other := &group[idx]
		// Only SQL nulls disqualify a row; a zero measure is a real reading
		// and stays eligible.
		if measure, ok := other.Properties[m.MeasureColumn]; !ok || measure == nil {
			logrus.Infof("Null value for %s with hex id %s, idx %d", m.MeasureColumn, hexID, idx)
			continue
		}

		otherArea := geometry.Area(geometry.KeepPolygonal(other.Geometry))
		if winner == nil || otherArea > largestArea {
			winner = other
			largestArea = otherArea
		}
	}
	if winner == nil {
		// every row carries a null measure, keep the first one
		logrus.Warnf("All rows for hex id %s have a null %s", hexID, m.MeasureColumn)
		winner = &group[0]
	}

	// Copy the winning row and swap in the canonical geometry.
	merged := geometry.Feature{
		Geometry:   hexGeom,
		Properties: make(map[string]any, len(winner.Properties)),
	}
	for k, v := range winner.Properties {
		merged.Properties[k] = v
	}
	return merged, nil
}

// MergeAll runs Merge over every group and returns one feature per hex id.
func (m *Merger) MergeAll(features []geometry.Feature) ([]geometry.Feature, error) {
	groups, ids, err := m.GroupByHexID(features)
	if err != nil {
		return nil, err
	}

	out := make([]geometry.Feature, 0, len(ids))
	for _, id := range ids {
		merged, err := m.Merge(id, groups[id])
		if err != nil {
			return nil, fmt.Errorf("failed to merge hex id %q: %w", id, err)
		}
		out = append(out, merged)
	}
	return out, nil
}
