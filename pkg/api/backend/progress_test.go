//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package backend_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"waben/pkg/api/backend"
	"waben/pkg/api/types"
	"waben/pkg/progress"

	"github.com/gorilla/schema"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func requestWithDecoder(t *testing.T, target string) *http.Request {
	t.Helper()
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	r := httptest.NewRequest(http.MethodGet, target, nil)
	return r.WithContext(context.WithValue(r.Context(), types.DecoderKey, decoder))
}

func TestGetProgress(t *testing.T) {
	w := httptest.NewRecorder()
	backend.GetProgress(w, requestWithDecoder(t, "/progress"))

	require.Equal(t, http.StatusOK, w.Code)

	var s progress.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	require.Nil(t, s.History)
}

func TestGetProgressWithHistory(t *testing.T) {
	progress.Publish(progress.Update{Stage: "find", Name: "fetchRows", RunID: "r"})

	require.Eventually(t, func() bool {
		return len(progress.Get().History) >= 1
	}, 3*time.Second, 10*time.Millisecond)

	w := httptest.NewRecorder()
	backend.GetProgress(w, requestWithDecoder(t, "/progress?history=true"))

	require.Equal(t, http.StatusOK, w.Code)

	var s progress.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	require.NotEmpty(t, s.History)
}

func TestGetProgressMissingDecoder(t *testing.T) {
	w := httptest.NewRecorder()
	backend.GetProgress(w, httptest.NewRequest(http.MethodGet, "/progress", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestVersionHandler(t *testing.T) {
	w := httptest.NewRecorder()
	backend.VersionHandler(w, httptest.NewRequest(http.MethodGet, "/apiversion", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "APIVersion")
}
