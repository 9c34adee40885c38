//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package version

import (
	"sync"

	"waben/pkg/define"

	"github.com/google/uuid"
)

var runID = sync.OnceValue(func() string {
	return uuid.NewString()
})

// RunID identifies a single invocation; it is attached to every progress
// event and to the report API so an operator can correlate logs across the
// unix socket boundary.
func RunID() string {
	return runID()
}

func Version() string {
	if define.GitCommit == "" {
		return "unknown"
	}
	return define.GitCommit
}
