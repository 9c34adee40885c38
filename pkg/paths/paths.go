//  SPDX-FileCopyrightText: 2024-2025 OOMOL, Inc. <https://www.oomol.com>
//  SPDX-License-Identifier: MPL-2.0

package paths

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"waben/pkg/workspace"

	"github.com/containers/common/pkg/strongunits"
	"github.com/sirupsen/logrus"
)

type PathWrapper struct {
	path string
}

func New(p string) *PathWrapper {
	return &PathWrapper{path: p}
}

func (m *PathWrapper) GetPath() string {
	return m.path
}

func (m *PathWrapper) Exist() bool {
	_, err := os.Stat(m.path)
	return err == nil
}

func (m *PathWrapper) Read() ([]byte, error) {
	return os.ReadFile(m.path) //nolint:wrapcheck
}

func (m *PathWrapper) MakeBaseDir() error {
	if err := os.MkdirAll(filepath.Dir(m.path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create base dir: %w", err)
	}
	return nil
}

// Delete removes a file from the filesystem.
// if safety is true, it will only remove files inside the workspace
func (m *PathWrapper) Delete(safety bool) error {
	if safety {
		ws := workspace.Get()
		if ws == "" {
			return fmt.Errorf("workspace is not set")
		}
		if !strings.HasPrefix(m.path, ws) {
			return fmt.Errorf("refusing to delete %q outside the workspace", m.path)
		}
	}
	logrus.Warnf("Delete file %s", m.path)
	if err := os.RemoveAll(m.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s : %w", m.path, err)
	}
	return nil
}

// DiscardBytesAtBegin discards the first n MiB of a file, keeping the tail.
// Used to stop the log file growing without bound across runs.
func (m *PathWrapper) DiscardBytesAtBegin(n strongunits.MiB) error {
	fileInfo, err := os.Stat(m.path)
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}
	offset := int64(n.ToBytes())
	if fileInfo.Size() <= offset {
		return nil
	}

	file, err := os.OpenFile(m.path, os.O_RDONLY, 0)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", m.path, err)
	}
	defer file.Close()

	if _, err = file.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek %s: %w", m.path, err)
	}

	tempFile, err := os.CreateTemp("", "trimmed-waben-log.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer tempFile.Close()

	if _, err = io.Copy(tempFile, file); err != nil {
		return fmt.Errorf("failed to copy tail: %w", err)
	}
	file.Close()
	tempFile.Close()

	if err = os.Rename(tempFile.Name(), m.path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Append joins an additional path onto the wrapped path and returns a new
// wrapper
func (m *PathWrapper) Append(additionalPath string) (*PathWrapper, error) {
	if additionalPath == "" {
		return nil, errors.New("invalid additional path")
	}
	return New(filepath.Join(m.path, additionalPath)), nil
}
