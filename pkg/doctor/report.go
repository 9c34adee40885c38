//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package doctor

import (
	"fmt"

	"waben/pkg/system"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/sirupsen/logrus"
)

// HostReport is the diagnostic block `waben doctor` prints so an operator
// can judge whether a full dataset scan will fit on this machine.
type HostReport struct {
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platformVersion"`
	KernelArch      string `json:"kernelArch"`
	TotalMemory     uint64 `json:"totalMemoryBytes"`
	FreeDisk        uint64 `json:"freeDiskBytes"`
}

// CollectHostReport gathers platform info and the free space under dir.
func CollectHostReport(dir string) (*HostReport, error) {
	info, err := host.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to read host info: %w", err)
	}

	report := &HostReport{
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelArch:      info.KernelArch,
	}

	if total, err := system.TotalMemory(); err == nil {
		report.TotalMemory = uint64(total)
	} else {
		logrus.Warnf("failed to read total memory: %v", err)
	}

	if free, err := system.FreeDiskSpace(dir); err == nil {
		report.FreeDisk = uint64(free)
	} else {
		logrus.Warnf("failed to read free disk space for %q: %v", dir, err)
	}

	return report, nil
}
