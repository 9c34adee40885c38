//  SPDX-FileCopyrightText: 2024-2024 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package backend

import (
	"net/http"
	"runtime"

	"waben/pkg/api/utils"
	"waben/pkg/define"
	"waben/pkg/version"
)

type Version struct {
	APIVersion string
	Version    string
	RunID      string
	GoVersion  string
	OsArch     string
	Os         string
}

func getVersion() (Version, error) {
	return Version{
		APIVersion: define.APIVersion,
		Version:    version.Version(),
		RunID:      version.RunID(),
		GoVersion:  runtime.Version(),
		OsArch:     runtime.GOOS + "/" + runtime.GOARCH,
		Os:         runtime.GOOS,
	}, nil
}

func VersionHandler(w http.ResponseWriter, r *http.Request) {
	running, err := getVersion()
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err)
		return
	}
	utils.WriteResponse(w, http.StatusOK, running)
}
