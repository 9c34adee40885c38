//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package define

import (
	"errors"
	"fmt"

	"github.com/containers/storage/pkg/regexp"
)

var (
	// HexIDRegex matches a textual H3 cell index as stored in the dataset
	HexIDRegex    = regexp.Delayed("^[0-9a-f]{15}$")
	ErrHexIDRegex = fmt.Errorf("hex ids must match [0-9a-f]{15}: %w", ErrInvalidArg)
	ErrInvalidArg = errors.New("invalid argument")
)
