//  SPDX-FileCopyrightText: 2024-2024 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package system

import (
	"fmt"

	"github.com/containers/common/pkg/strongunits"
	"github.com/shirou/gopsutil/v3/mem"
)

// TotalMemory returns the total physical memory of the host.
func TotalMemory() (strongunits.B, error) {
	memStat, err := mem.VirtualMemory()
	if err != nil {
		return 0, fmt.Errorf("failed to read memory stats: %w", err)
	}
	return strongunits.B(memStat.Total), nil
}

// CheckMaxMemory compares the wanted working-set size against total system
// memory. The hex id count for the full dataset is held in one map, so a
// scan over a table larger than memory should be refused up front.
func CheckMaxMemory(want strongunits.MiB) error {
	total, err := TotalMemory()
	if err != nil {
		return err
	}
	if total < want.ToBytes() {
		return fmt.Errorf("requested amount of memory (%d MB) greater than total system memory (%d bytes)", want, total)
	}
	return nil
}
