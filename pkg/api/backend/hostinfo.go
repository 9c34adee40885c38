//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package backend

import (
	"errors"
	"net/http"

	"waben/pkg/api/utils"
	"waben/pkg/doctor"
	"waben/pkg/workspace"
)

var errNoDecoder = errors.New("no query decoder in request context")

// GetHostInfo serves the same diagnostics block `waben doctor` prints.
func GetHostInfo(w http.ResponseWriter, r *http.Request) {
	report, err := doctor.CollectHostReport(workspace.Get())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err)
		return
	}
	utils.WriteResponse(w, http.StatusOK, report)
}
