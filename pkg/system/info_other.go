//  SPDX-FileCopyrightText: 2024-2024 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

//go:build !darwin

package system

import (
	"github.com/shirou/gopsutil/v3/host"
	"github.com/sirupsen/logrus"
)

func Version() string {
	info, err := host.Info()
	if err != nil {
		logrus.Errorf("failed to get host info: %v", err)
		return "unknown"
	}
	return info.OS + " " + info.Platform + " " + info.PlatformVersion + " " + info.KernelArch
}
