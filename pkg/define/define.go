//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package define

// GitCommit is overridden at link time with -ldflags.
var GitCommit string

const APIVersion = "v1"

// Workspace layout
const (
	OutPrefixDir    = "out"
	LogPrefixDir    = "logs"
	ConfigPrefixDir = "config"
)

// Files written under the workspace
const (
	LogFileName          = "waben.log"
	ConfigFileName       = "waben.json"
	HexIDsFileName       = "hex_ids.csv"
	HexIDsSnapshotName   = "hex_ids.csv.zst"
	DuplicateIDsFileName = "duplicate_hex_ids.csv"
	DuplicatesFileName   = "duplicates.geojson"
	DeduplicatedFileName = "deduplicated.geojson"
)

// Log sinks accepted by --log-out
const (
	LogOutFile    = "file"
	LogOutConsole = "console"
)

// Environment variables
const (
	DatabaseURLEnv = "DATABASE_URL"
	LogLevelEnv    = "WABEN_LOG_LEVEL"
)

// Dataset defaults, overridable through the workspace config file
const (
	DefaultTable          = "national_dataset"
	DefaultHexColumn      = "hex_id"
	DefaultGeomColumn     = "geom"
	DefaultMeasureColumn  = "evi"
	DefaultCountBatchSize = 100000
	DefaultRowsBatchSize  = 10000
)

// SRIDs: rows are stored in the British national grid, H3 boundaries
// come back in WGS84.
const (
	DatasetSRID = 27700
	WGS84SRID   = 4326
)
