//  SPDX-FileCopyrightText: 2024-2024 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package cmdflags

const (
	WorkspaceFlag = "workspace"
	ReportUrlFlag = "report-url"
	PpidFlag      = "ppid"
	LogOutFlag    = "log-out"

	CachedDuplicatesFlag = "read-cached-duplicates"
	APISocketFlag        = "api-socket"
	TableFlag            = "table"
	StrictFlag           = "strict"
	FormulaFlag          = "formula"
)

const (
	DefaultLogLevel = "info"
	ConsoleBased    = "console"
	FileBased       = "file"
)
