//  SPDX-FileCopyrightText: 2024-2024 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package system

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// IsProcessAlive reports whether the pid exists and is not a zombie.
// Used by the watchdog: a find run must die with the process that spawned it.
func IsProcessAlive(pid int) (bool, error) {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return false, fmt.Errorf("failed to find process %d: %w", pid, err)
	}

	statuses, err := proc.Status()
	if err != nil {
		return false, fmt.Errorf("failed to get status of process %d: %w", pid, err)
	}
	for _, st := range statuses {
		if st == process.Zombie {
			return false, fmt.Errorf("process %d is a zombie", pid)
		}
	}
	return true, nil
}

func FindPIDByCmdline(targetArgs string) ([]int32, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to get processes: %w", err)
	}

	var matchingPIDs []int32
	for _, proc := range procs {
		cmdline, err := proc.Cmdline()
		if err != nil {
			continue
		}
		if strings.Contains(cmdline, targetArgs) {
			matchingPIDs = append(matchingPIDs, proc.Pid)
		}
	}
	return matchingPIDs, nil
}
