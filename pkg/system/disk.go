//  SPDX-FileCopyrightText: 2024-2024 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

//go:build darwin || linux

package system

import (
	"fmt"

	"github.com/containers/common/pkg/strongunits"
	"golang.org/x/sys/unix"
)

// FreeDiskSpace returns the bytes available to an unprivileged caller on the
// filesystem holding path.
func FreeDiskSpace(path string) (strongunits.B, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, fmt.Errorf("failed to statfs %q: %w", path, err)
	}
	return strongunits.B(stat.Bavail * uint64(stat.Bsize)), nil
}
