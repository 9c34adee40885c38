//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package backend

import (
	"net/http"

	"waben/pkg/api/types"
	"waben/pkg/api/utils"
	"waben/pkg/progress"

	"github.com/gorilla/schema"
)

type progressQuery struct {
	// History toggles the full stage-transition list in the response
	History bool `schema:"history"`
}

// GetProgress reports the current run snapshot. `?history=true` includes
// every stage transition seen so far.
func GetProgress(w http.ResponseWriter, r *http.Request) {
	decoder, ok := r.Context().Value(types.DecoderKey).(*schema.Decoder)
	if !ok {
		utils.Error(w, http.StatusInternalServerError, errNoDecoder)
		return
	}

	query := progressQuery{}
	if err := decoder.Decode(&query, r.URL.Query()); err != nil {
		utils.Error(w, http.StatusBadRequest, err)
		return
	}

	snapshot := progress.Get()
	if !query.History {
		snapshot.History = nil
	}
	utils.WriteResponse(w, http.StatusOK, snapshot)
}
