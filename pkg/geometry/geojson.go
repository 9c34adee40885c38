//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package geometry

import (
	"fmt"
	"os"

	"github.com/containers/storage/pkg/ioutils"
	jsoniter "github.com/json-iterator/go"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func init() {
	c := jsoniter.ConfigCompatibleWithStandardLibrary
	geojson.CustomJSONMarshaler = c
	geojson.CustomJSONUnmarshaler = c
}

const geojsonFilePerm = 0o644

// Feature is one dataset row on its way between find and fix: the decoded
// geometry plus every non-geometry column as a property.
type Feature struct {
	Geometry   orb.Geometry
	Properties map[string]any
}

// WriteFeatures writes a GeoJSON feature collection atomically.
func WriteFeatures(filename string, features []Feature) error {
	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		gf := geojson.NewFeature(f.Geometry)
		gf.Properties = f.Properties
		fc.Append(gf)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal feature collection: %w", err)
	}
	return ioutils.AtomicWriteFile(filename, data, geojsonFilePerm) //nolint:wrapcheck
}

// ReadFeatures reads a file written by WriteFeatures.
func ReadFeatures(filename string) ([]Feature, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", filename, err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feature collection: %w", err)
	}

	out := make([]Feature, 0, len(fc.Features))
	for _, gf := range fc.Features {
		out = append(out, Feature{
			Geometry:   gf.Geometry,
			Properties: gf.Properties,
		})
	}
	return out, nil
}
