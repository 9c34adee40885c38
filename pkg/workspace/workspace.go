//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"waben/pkg/define"
)

var workspace string

// Set resolves p to an absolute path, creates the workspace layout
// (out/, logs/, config/) and records it process-wide.
func Set(p string) (string, error) {
	if p == "" {
		return "", fmt.Errorf("workspace path is empty")
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("failed to resolve workspace path %q: %w", p, err)
	}
	for _, sub := range []string{define.OutPrefixDir, define.LogPrefixDir, define.ConfigPrefixDir} {
		if err := os.MkdirAll(filepath.Join(abs, sub), 0o755); err != nil {
			return "", fmt.Errorf("failed to create workspace dir %q: %w", sub, err)
		}
	}
	workspace = abs
	return workspace, nil
}

func Get() string {
	return workspace
}

// OutDir returns the directory that holds all generated csv/geojson files.
func OutDir() string {
	return filepath.Join(workspace, define.OutPrefixDir)
}

func LogDir() string {
	return filepath.Join(workspace, define.LogPrefixDir)
}

func ConfigDir() string {
	return filepath.Join(workspace, define.ConfigPrefixDir)
}
