//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package events

// CurrentStage is the stage of the run lifecycle
var CurrentStage string

// ReportURL is an optional unix-socket URL a supervising process listens on
var ReportURL string

const (
	Find string = "find"
	Fix  string = "fix"
)

type FindStageName string

const (
	ConnectDatabase FindStageName = "ConnectDatabase"
	CountHexIDs     FindStageName = "CountHexIDs"
	WriteSnapshot   FindStageName = "WriteSnapshot"
	FetchRows       FindStageName = "FetchRows"
	WriteDuplicates FindStageName = "WriteDuplicates"
	FindExit        FindStageName = "Exit"
)

type FixStageName string

const (
	ReadDuplicates   FixStageName = "ReadDuplicates"
	MergeGroups      FixStageName = "MergeGroups"
	WriteDeduplicate FixStageName = "WriteDeduplicated"
	FixExit          FixStageName = "Exit"
)

const (
	kError string = "error"
)

type Event struct {
	Stage string
	Name  string
	Value string
	RunID string
}

const (
	PlainTextContentType = "text/plain"
)
