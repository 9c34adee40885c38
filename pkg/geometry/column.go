//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package geometry

import (
	"encoding/hex"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
)

// DecodeColumn turns a raw postgis geometry column value into a geometry.
// pgx hands unknown types back as hex text or raw bytes depending on the
// wire format; postgis itself emits EWKB with an embedded SRID.
func DecodeColumn(v any) (orb.Geometry, error) {
	var data []byte
	switch t := v.(type) {
	case []byte:
		data = t
	case string:
		decoded, err := hex.DecodeString(t)
		if err != nil {
			return nil, fmt.Errorf("geometry column is not hex encoded: %w", err)
		}
		data = decoded
	default:
		return nil, fmt.Errorf("unsupported geometry column type %T", v)
	}

	g, _, err := ewkb.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode geometry column: %w", err)
	}
	return g, nil
}
