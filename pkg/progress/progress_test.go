//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package progress_test

import (
	"testing"
	"time"

	"waben/pkg/progress"

	"github.com/stretchr/testify/require"
)

func TestPublishAndGet(t *testing.T) {
	progress.Publish(progress.Update{Stage: "find", Name: "connectDatabase", RunID: "r1"})
	progress.Publish(progress.Update{Stage: "find", Name: "countHexIDs", RunID: "r1"})

	require.Eventually(t, func() bool {
		s := progress.Get()
		return s.Current.Name == "countHexIDs" && len(s.History) >= 2
	}, 3*time.Second, 10*time.Millisecond)
}

func TestCounters(t *testing.T) {
	before := progress.Get()

	progress.AddIDsScanned(100)
	progress.AddIDsScanned(50)
	progress.AddDuplicatesFound(3)
	progress.AddRowsFetched(7)

	s := progress.Get()
	require.Equal(t, before.IDsScanned+150, s.IDsScanned)
	require.Equal(t, before.DuplicatesFound+3, s.DuplicatesFound)
	require.Equal(t, before.RowsFetched+7, s.RowsFetched)
}

func TestGetCopiesHistory(t *testing.T) {
	progress.Publish(progress.Update{Stage: "fix", Name: "mergeGroups", RunID: "r2"})

	require.Eventually(t, func() bool {
		return len(progress.Get().History) >= 1
	}, 3*time.Second, 10*time.Millisecond)

	s := progress.Get()
	s.History[0].Name = "mutated"
	require.NotEqual(t, "mutated", progress.Get().History[0].Name)
}
