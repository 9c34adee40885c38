//  SPDX-FileCopyrightText: 2024-2024 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package types

type APIContextKey int

const (
	DecoderKey APIContextKey = iota
)

// ErrorModel is the JSON envelope every failed request carries.
type ErrorModel struct {
	Because      string `json:"cause"`
	Message      string `json:"message"`
	ResponseCode int    `json:"response"`
}
